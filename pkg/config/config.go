// Package config loads the proxy definitions that drive every socksies
// command. The configuration file is a single YAML mapping of proxy name
// to an optional host/port/identity_file sub-mapping; it is re-read on
// every invocation and is the only state the tool owns.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// Sentinel is substituted for host and port values absent from the
	// configuration file.
	Sentinel = "--"

	// DefaultFileName is the configuration file looked up next to the
	// installed executable when no override is given.
	DefaultFileName = "proxy-config.yml"

	// EnvVar overrides the configuration file location.
	EnvVar = "SOCKSIES_CONFIG"
)

// ErrNotFound indicates the configuration file is missing or unreadable.
var ErrNotFound = errors.New("configuration file not found")

// ParseError indicates the configuration file exists but does not
// contain a valid proxy mapping.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Proxy is one named SSH SOCKS tunnel definition. A Proxy carries no
// runtime state; the OS process table is the only record of whether its
// tunnel is up.
type Proxy struct {
	// Name is the top-level key in the configuration file.
	Name string

	// Host is the jump host to tunnel through; Sentinel when absent.
	Host string

	// Port is the local SOCKS listen port. Integers in the file are
	// rendered as decimal text; Sentinel when absent or not a scalar.
	Port string

	// IdentityFile is the SSH private key path, possibly ~-prefixed.
	// Empty when absent; expansion happens at point of use.
	IdentityFile string
}

// Endpoint returns the host:port pair used in display output.
func (p Proxy) Endpoint() string {
	return p.Host + ":" + p.Port
}

// DefaultPath resolves the configuration file location: the EnvVar
// override if set, otherwise DefaultFileName next to the executable
// (symlinks followed, so a symlinked install still finds its config).
func DefaultPath() string {
	if path := os.Getenv(EnvVar); path != "" {
		return path
	}
	exe, err := os.Executable()
	if err != nil {
		return DefaultFileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultFileName)
}

// Load reads the YAML mapping at path and returns one Proxy per
// top-level key, preserving file order. Missing host/port default to
// Sentinel and a missing identity_file to the empty string. Duplicate
// keys resolve last-write-wins at the first key's position.
func Load(path string) ([]Proxy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if len(doc.Content) == 0 {
		// Empty file: nothing configured.
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &ParseError{Path: path, Err: errors.New("top level must be a mapping of proxy names")}
	}

	proxies := make([]Proxy, 0, len(root.Content)/2)
	seen := make(map[string]int, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		var entry struct {
			Host         *string    `yaml:"host"`
			Port         yaml.Node  `yaml:"port"`
			IdentityFile *string    `yaml:"identity_file"`
		}
		if err := value.Decode(&entry); err != nil {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("proxy %q: %w", key.Value, err)}
		}

		p := Proxy{
			Name: key.Value,
			Host: stringOr(entry.Host, Sentinel),
			Port: portValue(entry.Port),
		}
		if entry.IdentityFile != nil {
			p.IdentityFile = *entry.IdentityFile
		}

		if at, ok := seen[p.Name]; ok {
			proxies[at] = p
			continue
		}
		seen[p.Name] = len(proxies)
		proxies = append(proxies, p)
	}

	return proxies, nil
}

// Find returns the proxy with the given name from a loaded list, using
// an exact match. The second return value reports whether it was found.
func Find(proxies []Proxy, name string) (Proxy, bool) {
	for _, p := range proxies {
		if p.Name == name {
			return p, true
		}
	}
	return Proxy{}, false
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// portValue renders the port field as text. Anything that is not a
// non-null scalar (absent, null, a list, a nested mapping) degrades to
// the sentinel; connect rejects it later, list/info display it as-is.
func portValue(node yaml.Node) string {
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return Sentinel
	}
	return node.Value
}
