package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "proxy-config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unable to write config fixture: %v", err)
	}
	return path
}

const sampleConfig = `proxy1:
  host: 172.31.0.51
  port: 9051
  identity_file: ~/.ssh/private_key
proxy2:
  host: 172.31.0.52
  port: 9052
`

func TestLoad(t *testing.T) {
	proxies, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(proxies) != 2 {
		t.Fatalf("Load() returned %d proxies, want 2", len(proxies))
	}

	want := []Proxy{
		{Name: "proxy1", Host: "172.31.0.51", Port: "9051", IdentityFile: "~/.ssh/private_key"},
		{Name: "proxy2", Host: "172.31.0.52", Port: "9052", IdentityFile: ""},
	}
	for i, p := range proxies {
		if p != want[i] {
			t.Errorf("Load()[%d] = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestLoadPreservesFileOrder(t *testing.T) {
	content := `zulu:
  host: h1
alpha:
  host: h2
mike:
  host: h3
`
	proxies, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	wantOrder := []string{"zulu", "alpha", "mike"}
	for i, name := range wantOrder {
		if proxies[i].Name != name {
			t.Errorf("Load()[%d].Name = %q, want %q", i, proxies[i].Name, name)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Proxy
	}{
		{
			name:    "empty entry",
			content: "bare:\n",
			want:    Proxy{Name: "bare", Host: Sentinel, Port: Sentinel, IdentityFile: ""},
		},
		{
			name:    "host only",
			content: "partial:\n  host: 10.0.0.1\n",
			want:    Proxy{Name: "partial", Host: "10.0.0.1", Port: Sentinel, IdentityFile: ""},
		},
		{
			name:    "null port",
			content: "nullport:\n  host: 10.0.0.1\n  port:\n",
			want:    Proxy{Name: "nullport", Host: "10.0.0.1", Port: Sentinel, IdentityFile: ""},
		},
		{
			name:    "string port",
			content: "strport:\n  port: \"9051\"\n",
			want:    Proxy{Name: "strport", Host: Sentinel, Port: "9051", IdentityFile: ""},
		},
		{
			name:    "non-scalar port",
			content: "listport:\n  port: [9051, 9052]\n",
			want:    Proxy{Name: "listport", Host: Sentinel, Port: Sentinel, IdentityFile: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proxies, err := Load(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(proxies) != 1 {
				t.Fatalf("Load() returned %d proxies, want 1", len(proxies))
			}
			if proxies[0] != tt.want {
				t.Errorf("Load()[0] = %+v, want %+v", proxies[0], tt.want)
			}
		})
	}
}

func TestLoadDuplicateKeys(t *testing.T) {
	content := `dup:
  host: first
other:
  host: keep
dup:
  host: second
`
	proxies, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(proxies) != 2 {
		t.Fatalf("Load() returned %d proxies, want 2", len(proxies))
	}
	// Last write wins, at the first key's position.
	if proxies[0].Name != "dup" || proxies[0].Host != "second" {
		t.Errorf("Load()[0] = %+v, want dup/second", proxies[0])
	}
	if proxies[1].Name != "other" {
		t.Errorf("Load()[1].Name = %q, want other", proxies[1].Name)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	proxies, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(proxies) != 0 {
		t.Errorf("Load() returned %d proxies, want 0", len(proxies))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "proxy1:\n\thost: tabs are not allowed\n"))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
}

func TestLoadTopLevelNotMapping(t *testing.T) {
	_, err := Load(writeConfig(t, "- proxy1\n- proxy2\n"))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
}

func TestFind(t *testing.T) {
	proxies := []Proxy{
		{Name: "proxy1", Host: "h1"},
		{Name: "proxy2", Host: "h2"},
	}

	p, ok := Find(proxies, "proxy2")
	if !ok || p.Host != "h2" {
		t.Errorf("Find(proxy2) = %+v, %v; want h2, true", p, ok)
	}

	if _, ok := Find(proxies, "nonexistent"); ok {
		t.Error("Find(nonexistent) reported found")
	}

	if _, ok := Find(nil, "proxy1"); ok {
		t.Error("Find on empty list reported found")
	}
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv(EnvVar, "/etc/socksies/override.yml")
	if got := DefaultPath(); got != "/etc/socksies/override.yml" {
		t.Errorf("DefaultPath() = %q, want env override", got)
	}
}
