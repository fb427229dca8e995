package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/adrg/xdg"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "tabview"
	DefaultConfigName = "tabview"
	DefaultDBName     = "tabview.db"
	DefaultLogName    = "tabview.log"
	EnvPrefix         = "tabview"
)

type Config struct {
	// InitialTab is the route key activated on startup when no remembered
	// tab is available.
	InitialTab string `mapstructure:"initial_tab"`
	// RememberTab restores the last active route from the store on startup.
	RememberTab bool `mapstructure:"remember_tab"`
	// ReduceMotion disables the spring animation and snaps between panes.
	ReduceMotion bool `mapstructure:"reduce_motion"`
	// FollowPath is the log file followed by the logs pane.
	FollowPath      string  `mapstructure:"follow_path"`
	FPS             int     `mapstructure:"fps"`
	SpringFrequency float64 `mapstructure:"spring_frequency"`
	SpringDamping   float64 `mapstructure:"spring_damping"`
	Debug           bool    `mapstructure:"debug"`
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
