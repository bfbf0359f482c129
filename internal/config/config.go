package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigWrite   = errors.New("failed to write config file")
	errConfigRead    = errors.New("failed to read config file")
	errConfigInvalid = errors.New("invalid config value")
	errLoggerInit    = errors.New("failed to initialize logger")
)

const (
	ConfigDirName        = "mfe-tui"
	DefaultConfigName    = "mfe-tui"
	DefaultConfigType    = "yaml"
	DefaultLogName       = "mfe-tui.log"
	EnvPrefix            = "mfetui"
	DefaultFPS           = 60
	DefaultStatusTimeout = 5 * time.Second
	DefaultAccent        = "#f4722b"
	DefaultIndent        = 2
)

type Config struct {
	Debug bool `mapstructure:"debug"`
	// NoColor forces the ascii colour profile, useful when recording sessions.
	NoColor       bool          `mapstructure:"no_color"`
	FPS           int           `mapstructure:"fps"`
	Accent        string        `mapstructure:"accent"`
	StatusTimeout time.Duration `mapstructure:"status_timeout"`
	Tree          Tree          `mapstructure:"tree"`
}

type Tree struct {
	// Collapsed starts the session with every folder closed instead of open.
	Collapsed bool `mapstructure:"collapsed"`
	// Indent is the number of columns each depth level is shifted by.
	Indent int `mapstructure:"indent"`
}

// Default returns the built-in settings, ignoring any config file or environment overrides.
func Default() Config {
	return Config{
		FPS:           DefaultFPS,
		Accent:        DefaultAccent,
		StatusTimeout: DefaultStatusTimeout,
		Tree:          Tree{Indent: DefaultIndent},
	}
}

func (c Config) Validate() error {
	if c.FPS < 1 || c.FPS > 120 {
		return fmt.Errorf("%w: fps must be within 1-120, got %d", errConfigInvalid, c.FPS)
	}

	if c.Tree.Indent < 1 || c.Tree.Indent > 8 {
		return fmt.Errorf("%w: tree.indent must be within 1-8, got %d", errConfigInvalid, c.Tree.Indent)
	}

	if c.StatusTimeout <= 0 {
		return fmt.Errorf("%w: status_timeout must be positive", errConfigInvalid)
	}

	return nil
}

// LogLevel maps the debug flag to the level used by the file logger.
func (c Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}

	return slog.LevelInfo
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
	logFile, errLogFile := os.Create(Path(logPath))
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
