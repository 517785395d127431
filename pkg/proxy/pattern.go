package proxy

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/socksies/socksies/pkg/config"
)

// Args returns the argument vector handed to the ssh binary to
// establish the tunnel:
//
//	ssh -D <port> -i <identity> -q -C -f -N <host>
//
// The identity path has ~-expansion applied. Arguments are passed to
// exec as a discrete vector; nothing here goes through a shell.
func Args(p config.Proxy) []string {
	return []string{
		"-D", p.Port,
		"-i", ExpandUser(p.IdentityFile),
		"-q",
		"-C",
		"-f",
		"-N",
		p.Host,
	}
}

// Pattern returns the command-line substring used to recognize the
// proxy's tunnel process. It is derived from the same argument vector
// as Args and is the single pattern handed to both pgrep and pkill, so
// a tunnel launched by Connect is always visible to status and
// killable by disconnect.
func Pattern(p config.Proxy) string {
	return "ssh " + strings.Join(Args(p), " ")
}

// Validate checks that host, port, and identity file are all present
// and non-sentinel. The loader accepts incomplete entries; they are
// only rejected here, at connect time.
func Validate(p config.Proxy) error {
	if p.Host == "" || p.Host == config.Sentinel ||
		p.Port == "" || p.Port == config.Sentinel ||
		p.IdentityFile == "" {
		return &IncompleteConfigError{Name: p.Name}
	}
	return nil
}

// ExpandUser replaces a leading ~ in path with the current user's home
// directory. Paths without the prefix, and paths for which the home
// directory cannot be determined, are returned unchanged.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
