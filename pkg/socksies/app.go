// Package socksies provides the cobra subcommands of the socksies CLI.
package socksies

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/socksies/socksies/pkg/config"
	"github.com/socksies/socksies/pkg/proxy"
)

// App carries the pieces shared by every subcommand: the resolved
// configuration path, the root logger, and the process runner. main
// fills it in once flags are parsed; tests populate the fields directly
// with a fake runner.
type App struct {
	ConfigPath string
	Logger     *logrus.Logger
	Runner     proxy.Runner
}

// NewApp creates an empty App to be populated by Configure.
func NewApp() *App {
	return &App{}
}

// Configure resolves the configuration path (flag value, then the
// SOCKSIES_CONFIG environment variable, then the file next to the
// executable) and sets up the logger. Called from the root command's
// PersistentPreRun so every subcommand sees the same resolution.
func (a *App) Configure(configPath, logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		fmt.Printf("WARNING: invalid log level specified: %s, default log level 'info' will be used\n", logLevel)
		level = logrus.InfoLevel
	}
	a.Logger = logrus.New()
	a.Logger.SetLevel(level)

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	a.ConfigPath = configPath

	if a.Runner == nil {
		a.Runner = proxy.ExecRunner{}
	}
}

func (a *App) manager() *proxy.Manager {
	return proxy.NewManager(a.ConfigPath, a.Runner, a.Logger)
}
