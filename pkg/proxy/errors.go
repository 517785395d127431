package proxy

import "fmt"

// NotFoundError reports a proxy name absent from the configuration
// file. The message names the config path so the operator knows which
// file was consulted.
type NotFoundError struct {
	Name       string
	ConfigPath string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("proxy '%s' not found in %s", e.Name, e.ConfigPath)
}

// IncompleteConfigError reports a proxy whose host, port, or identity
// file is missing, caught before any ssh process is spawned.
type IncompleteConfigError struct {
	Name string
}

func (e *IncompleteConfigError) Error() string {
	return fmt.Sprintf("incomplete config for '%s': check host, port, and identity_file", e.Name)
}

// ConnectError reports a non-zero exit from the ssh binary, carrying
// whatever diagnostics ssh wrote.
type ConnectError struct {
	Name   string
	Output string
	Err    error
}

func (e *ConnectError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("failed to connect to '%s': %v: %s", e.Name, e.Err, e.Output)
	}
	return fmt.Sprintf("failed to connect to '%s': %v", e.Name, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }
