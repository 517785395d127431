// Package proxy dispatches tunnel operations for proxies defined in a
// socksies configuration file. Tunnels are plain `ssh -D` child
// processes; the manager recognizes them by matching their command line
// in the host process table (pgrep/pkill -f), never by tracking PIDs
// across invocations.
package proxy

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/socksies/socksies/pkg/config"
)

// diagnosticScript is the raw pipeline behind `status --verbose`: the
// process table filtered to SOCKS-style ssh invocations, plus ssh's
// listening-socket state.
const diagnosticScript = `ps aux | head -n 1 ; ps aux | grep -P "ssh.-D.\d.*" ; echo "---" ; ss -tlnp | head -n 1 ; ss -tlnp | grep ssh`

// Status describes one configured proxy's runtime state.
type Status struct {
	Proxy   config.Proxy
	Running bool

	// Uptime is how long the matching tunnel process has been alive.
	// Zero when the proxy is not running or the age could not be read.
	Uptime time.Duration
}

// Manager dispatches tunnel operations for the proxies defined in a
// single configuration file. It holds no state between calls: the
// config is re-read on every operation and the OS process table is the
// only record of running tunnels. All operations are synchronous; every
// child process is waited on before the call returns.
type Manager struct {
	configPath string
	runner     Runner
	logger     *logrus.Logger
}

// NewManager creates a manager for the configuration at configPath,
// dispatching external commands through runner.
func NewManager(configPath string, runner Runner, logger *logrus.Logger) *Manager {
	return &Manager{
		configPath: configPath,
		runner:     runner,
		logger:     logger,
	}
}

// ConfigPath returns the configuration file the manager operates on.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// Proxies loads the configuration fresh from disk.
func (m *Manager) Proxies() ([]config.Proxy, error) {
	return config.Load(m.configPath)
}

// Find loads the configuration and looks up one proxy by name.
func (m *Manager) Find(name string) (config.Proxy, error) {
	proxies, err := m.Proxies()
	if err != nil {
		return config.Proxy{}, err
	}
	p, ok := config.Find(proxies, name)
	if !ok {
		return config.Proxy{}, &NotFoundError{Name: name, ConfigPath: m.configPath}
	}
	return p, nil
}

// IsRunning reports whether a tunnel process for the proxy exists.
// pgrep exiting non-zero means not running; a missing or failing pgrep
// counts the same way.
func (m *Manager) IsRunning(p config.Proxy) bool {
	_, ok := m.probe(p)
	return ok
}

// Connect establishes the SSH SOCKS tunnel for the proxy. The ssh
// binary backgrounds itself after authentication (-f); this call blocks
// only until that detach completes or ssh exits. The backgrounded
// tunnel process is intentionally not tracked.
func (m *Manager) Connect(p config.Proxy) error {
	if err := Validate(p); err != nil {
		return err
	}

	args := Args(p)
	m.logger.Debugf("spawning tunnel: ssh %s", strings.Join(args, " "))
	out, err := m.runner.Run("ssh", args...)
	if err != nil {
		return &ConnectError{Name: p.Name, Output: strings.TrimSpace(string(out)), Err: err}
	}
	return nil
}

// Disconnect kills any tunnel process matching the proxy's pattern. It
// reports whether something was found and terminated; finding nothing
// is not an error.
func (m *Manager) Disconnect(p config.Proxy) bool {
	pattern := Pattern(p)
	m.logger.Debugf("killing tunnel: pkill -f %q", pattern)
	_, err := m.runner.Run("pkill", "-f", pattern)
	return err == nil
}

// DisconnectAll loads every configured proxy and disconnects each in
// turn, sequentially. It returns the proxies that were actually torn
// down.
func (m *Manager) DisconnectAll() ([]config.Proxy, error) {
	proxies, err := m.Proxies()
	if err != nil {
		return nil, err
	}

	var killed []config.Proxy
	for _, p := range proxies {
		if m.Disconnect(p) {
			killed = append(killed, p)
		}
	}
	return killed, nil
}

// Running returns the status of every configured proxy, in config
// order, including uptime for the ones with a live tunnel process.
func (m *Manager) Running() ([]Status, error) {
	proxies, err := m.Proxies()
	if err != nil {
		return nil, err
	}

	statuses := make([]Status, 0, len(proxies))
	for _, p := range proxies {
		st := Status{Proxy: p}
		if pid, ok := m.probe(p); ok {
			st.Running = true
			st.Uptime = m.uptime(pid)
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

// Diagnostics dumps raw process and listening-socket state for ssh,
// bypassing per-proxy matching entirely. Output goes straight to the
// terminal.
func (m *Manager) Diagnostics() error {
	m.logger.Debug("running verbose diagnostic pipeline")
	return m.runner.RunShell(diagnosticScript)
}

// probe searches the process table for the proxy's tunnel and returns
// the first matching PID. pgrep -af prints "pid cmdline" per match and
// exits zero only when something matched.
func (m *Manager) probe(p config.Proxy) (string, bool) {
	pattern := Pattern(p)
	m.logger.Debugf("searching process table: pgrep -af %q", pattern)
	out, err := m.runner.Run("pgrep", "-af", pattern)
	if err != nil {
		return "", false
	}
	fields := strings.Fields(string(out))
	if len(fields) == 0 {
		return "", true
	}
	return fields[0], true
}

// uptime reads the elapsed running time of pid via ps. Any failure
// degrades to zero; a tunnel whose age cannot be read is still running.
func (m *Manager) uptime(pid string) time.Duration {
	if pid == "" {
		return 0
	}
	out, err := m.runner.Run("ps", "-o", "etimes=", "-p", pid)
	if err != nil {
		return 0
	}
	secs, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
