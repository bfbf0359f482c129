package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leighmacdonald/mfe-tui/internal/catalog"
	"github.com/leighmacdonald/mfe-tui/internal/config"
	"github.com/leighmacdonald/mfe-tui/internal/state"
	"github.com/leighmacdonald/mfe-tui/internal/tree"
	"github.com/leighmacdonald/mfe-tui/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errUnknownFormat = errors.New("unknown output format")

func newCatalogCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:               "catalog",
		Short:             "Print the component catalog",
		Long:              "Print every shared and application component, along with the related components highlighted together",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderCatalog(cmd.OutOrStdout(), catalog.Default(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json or yaml")

	return cmd
}

func renderCatalog(out io.Writer, cat catalog.Catalog, format string) error {
	switch format {
	case "json":
		body, err := json.MarshalIndent(cat, "", "  ")
		if err != nil {
			return errors.Join(err, errApp)
		}

		_, err = fmt.Fprintln(out, string(body))

		return err
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(cat); err != nil {
			return errors.Join(err, errApp)
		}

		return encoder.Close()
	case "table", "":
		renderCatalogTable(out, cat)

		return nil
	default:
		return fmt.Errorf("%w: %s", errUnknownFormat, format)
	}
}

func renderCatalogTable(out io.Writer, cat catalog.Catalog) {
	writer := table.NewWriter()
	writer.SetOutputMirror(out)
	writer.SetStyle(table.StyleLight)
	writer.AppendHeader(table.Row{"ID", "Name", "Owner", "Route", "Kind", "Style", "Highlights"})

	appendEntry := func(owner string, route string, entry catalog.Entry) {
		writer.AppendRow(table.Row{
			entry.ID, entry.Name, owner, route, string(entry.Kind), entry.Style,
			strings.Join(cat.HighlightGroup(entry.ID), " "),
		})
	}

	for _, entry := range cat.Shared {
		appendEntry("shared", "", entry)
	}

	writer.AppendSeparator()

	for _, app := range cat.Apps {
		for _, entry := range app.Entries {
			appendEntry(app.Name, app.Route, entry)
		}
	}

	writer.Render()
}

func newTreeCmd() *cobra.Command {
	var collapsed bool

	cmd := &cobra.Command{
		Use:               "tree",
		Short:             "Print the microfrontend file tree",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := catalog.Default()
			if err := cat.Validate(); err != nil {
				return errors.Join(err, errApp)
			}

			renderTree(cmd.OutOrStdout(), tree.Build(cat, !collapsed))

			return nil
		},
	}

	cmd.Flags().BoolVar(&collapsed, "collapsed", false, "Only print the top level folders")

	return cmd
}

// renderTree prints the rows a user would see in the navigator.
func renderTree(out io.Writer, nodes []tree.Node) {
	writer := list.NewWriter()
	writer.SetOutputMirror(out)
	writer.SetStyle(list.StyleConnectedLight)

	depth := 0
	for _, row := range tree.Visible(nodes) {
		for ; depth < row.Depth; depth++ {
			writer.Indent()
		}

		for ; depth > row.Depth; depth-- {
			writer.UnIndent()
		}

		label := row.Node.Name
		if row.Node.IsFolder() {
			label += "/"
		}

		writer.AppendItem(label)
	}

	writer.Render()
}

func newSnapshotCmd() *cobra.Command {
	var (
		width  int
		height int
		app    string
		page   string
		hover  string
	)

	cmd := &cobra.Command{
		Use:               "snapshot",
		Short:             "Render a single frame of the ui to stdout",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userConfig, errConfig := newLoader(nil).Read()
			if errConfig != nil {
				return errors.Join(errConfig, errApp)
			}

			store, errStore := newStore(userConfig)
			if errStore != nil {
				return errors.Join(errStore, errApp)
			}

			if err := applySnapshot(store, app, page, hover); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), ui.Render(userConfig, store, buildInfo(), width, height))

			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 120, "Frame width in columns")
	cmd.Flags().IntVar(&height, "height", 40, "Frame height in rows")
	cmd.Flags().StringVar(&app, "app", "", "Application to assemble")
	cmd.Flags().StringVar(&page, "page", "", "Page to show: Home, Products, About or Contact")
	cmd.Flags().StringVar(&hover, "hover", "", "Catalog or folder id to hover")

	return cmd
}

var (
	errUnknownApp   = errors.New("unknown application")
	errUnknownNode  = errors.New("unknown tree node")
	errConfigExists = errors.New("config file exists")
)

// applySnapshot drives the store the same way the navigator would before rendering a frame.
func applySnapshot(store *state.Store, app string, page string, hover string) error {
	if app != "" && !store.SelectApp(app) {
		return fmt.Errorf("%w: %s", errUnknownApp, app)
	}

	if page != "" {
		parsed, err := state.ParsePage(page)
		if err != nil {
			return err
		}

		store.SelectPage(parsed)
	}

	if hover != "" {
		node, found := tree.Find(store.Tree(), hover)
		if !found {
			return fmt.Errorf("%w: %s", errUnknownNode, hover)
		}

		store.SelectHover(&node)
	}

	return nil
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	var force bool

	initCmd := &cobra.Command{
		Use:               "init",
		Short:             "Write a config file populated with the defaults",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := cfgFile
			if target == "" {
				target = config.Path(config.DefaultConfigName + "." + config.DefaultConfigType)
			}

			return initConfig(cmd.OutOrStdout(), target, force)
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(initCmd)

	return configCmd
}

// initConfig writes the built-in defaults to target. The existing file and environment are never read.
func initConfig(out io.Writer, target string, force bool) error {
	if _, err := os.Stat(target); err == nil && !force {
		return fmt.Errorf("%w: %s already exists, use --force to overwrite", errConfigExists, target)
	}

	if err := config.NewLoader(nil).Write(config.Default(), target); err != nil {
		return errors.Join(err, errApp)
	}

	_, err := fmt.Fprintf(out, "Wrote %s\n", target)

	return err
}
