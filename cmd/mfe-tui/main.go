package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/mfe-tui/internal/catalog"
	"github.com/leighmacdonald/mfe-tui/internal/config"
	"github.com/leighmacdonald/mfe-tui/internal/state"
	"github.com/leighmacdonald/mfe-tui/internal/ui"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	noColor        bool
)

var errApp = errors.New("application error")

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mfe-tui",
		Short: "Microfrontend architecture illustration",
		Long: `mfe-tui - An interactive terminal illustration of a microfrontend architecture.
Browse the file tree on the left and watch the mock browser assemble the application on the right.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
		},
		RunE: run,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file path, defaults to "+config.Path(config.DefaultConfigName+"."+config.DefaultConfigType))
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colour output")
	rootCmd.AddCommand(
		&cobra.Command{
			Use:               "version",
			Short:             "Print version information",
			Long:              "Print detailed version information about mfe-tui",
			Args:              cobra.NoArgs,
			ValidArgsFunction: cobra.NoFileCompletions,
			Run: func(cmd *cobra.Command, _ []string) {
				version(cmd.OutOrStdout())
			},
		},
		newCatalogCmd(),
		newTreeCmd(),
		newSnapshotCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

func version(out io.Writer) {
	_, _ = fmt.Fprintf(out, "mfe-tui - Microfrontend Terminal UI\n\n")
	_, _ = fmt.Fprintf(out, "  Version: %s\n", BuildVersion)
	_, _ = fmt.Fprintf(out, "  Commit:  %s\n", BuildCommit)
	_, _ = fmt.Fprintf(out, "  Built:   %s\n", BuildDate)
	_, _ = fmt.Fprintf(out, "  Runtime: %s\n\n", BuildGoVersion)
}

func buildInfo() ui.BuildInfo {
	return ui.BuildInfo{Version: BuildVersion, Date: BuildDate, Commit: BuildCommit}
}

// newLoader honours the --config flag, falling back to the default search paths.
func newLoader(changes chan<- config.Config) *config.Loader {
	loader := config.NewLoader(changes)
	if cfgFile != "" {
		loader.SetConfigFile(cfgFile)
	}

	return loader
}

// newStore builds the session state from the built-in catalog.
func newStore(userConfig config.Config) (*state.Store, error) {
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	return state.New(cat, !userConfig.Tree.Collapsed), nil
}

// run is the main entry point of mfe-tui.
func run(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Make sure our config home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)

	loader := newLoader(configUpdates)
	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return errors.Join(errConfig, errApp)
	}

	if userConfig.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, userConfig.LogLevel())
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting mfe-tui", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	store, errStore := newStore(userConfig)
	if errStore != nil {
		return errors.Join(errStore, errApp)
	}

	loader.Watch(ctx)

	program := ui.New(ctx, userConfig, store, buildInfo(), loader.Path(), config.Path(config.DefaultLogName))
	tasks, taskCtx := errgroup.WithContext(ctx)

	tasks.Go(func() error {
		defer cancel()

		return program.Run()
	})

	// Forward config reloads into the ui until it exits.
	tasks.Go(func() error {
		for {
			select {
			case <-taskCtx.Done():
				return nil
			case updated := <-configUpdates:
				slog.Info("Config reloaded", slog.String("path", loader.Path()))
				program.Send(updated)
			}
		}
	})

	if err := tasks.Wait(); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}
