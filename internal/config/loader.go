package config

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
	ctx     context.Context
}

// NewLoader creates a loader searching the XDG config dir and then the working directory. Extra
// paths, when given, take precedence over both.
func NewLoader(changes chan<- Config, paths ...string) *Loader {
	defaults := Default()
	loader := Loader{changes: changes, Viper: viper.New(), ctx: context.Background()}
	loader.SetDefault("debug", defaults.Debug)
	loader.SetDefault("no_color", defaults.NoColor)
	loader.SetDefault("fps", defaults.FPS)
	loader.SetDefault("accent", defaults.Accent)
	loader.SetDefault("status_timeout", defaults.StatusTimeout)
	loader.SetDefault("tree.collapsed", defaults.Tree.Collapsed)
	loader.SetDefault("tree.indent", defaults.Tree.Indent)
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType(DefaultConfigType)
	loader.SetEnvPrefix(EnvPrefix)
	for _, configPath := range paths {
		loader.AddConfigPath(configPath)
	}
	loader.AddConfigPath(Path(""))
	loader.AddConfigPath(".")
	loader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	loader.AutomaticEnv()

	return &loader
}

// Watch starts watching the config file in use. Changes are read and sent on the changes channel
// until ctx is done, after which they are dropped.
func (cl *Loader) Watch(ctx context.Context) {
	if cl.changes == nil || cl.ConfigFileUsed() == "" {
		return
	}

	cl.ctx = ctx

	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) {
		return
	}

	slog.Debug("External config reload triggered", slog.String("file", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	cl.publish(config)
}

// publish hands config to the listener. It reports false when the listener has gone away.
func (cl *Loader) publish(config Config) bool {
	select {
	case cl.changes <- config:
		return true
	case <-cl.ctx.Done():
		slog.Debug("Dropped config reload, no listener")

		return false
	}
}

// Write stores config at filePath, or at the file currently in use when filePath is empty.
func (cl *Loader) Write(config Config, filePath string) error {
	cl.Set("debug", config.Debug)
	cl.Set("no_color", config.NoColor)
	cl.Set("fps", config.FPS)
	cl.Set("accent", config.Accent)
	cl.Set("status_timeout", config.StatusTimeout.String())
	cl.Set("tree.collapsed", config.Tree.Collapsed)
	cl.Set("tree.indent", config.Tree.Indent)

	var err error
	if filePath == "" {
		err = cl.WriteConfig()
	} else {
		err = cl.WriteConfigAs(filePath)
	}

	if err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

// Read loads the config file if one exists. A missing file is not an error, the defaults are used.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if err := config.Validate(); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
