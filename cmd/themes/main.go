package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"walkintheforest/config"
	"walkintheforest/logging"
	"walkintheforest/theme"
)

var appVersion = "0.1.0"

// app holds the flag values shared by the subcommands.
type app struct {
	configDir string
	logLevel  string
	format    string

	cfg      config.Config
	logger   *log.Logger
	registry *theme.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	wd, _ := os.Getwd()

	rootCmd := &cobra.Command{
		Use:           "themes",
		Short:         "themes – chart theme registry tool",
		Long:          "Inspect, validate and watch the chart themes available to the walkintheforest registry.",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&a.configDir, "config-dir", wd, "Directory holding "+config.FileName+" (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error (default: from config)")

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List registered themes",
		Args:    cobra.NoArgs,
		PreRunE: a.setup,
		RunE:    a.runList,
	}

	showCmd := &cobra.Command{
		Use:     "show [name]",
		Short:   "Print a theme",
		Long:    "Print a registered theme as plotly template JSON or YAML. Without a name the configured default is shown.",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: a.setup,
		RunE:    a.runShow,
	}
	showCmd.Flags().StringVarP(&a.format, "format", "f", theme.FormatJSON, "Output format: json or yaml")

	validateCmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate theme files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runValidate,
	}

	watchCmd := &cobra.Command{
		Use:     "watch",
		Short:   "Reload themes from the template directory as they change",
		Args:    cobra.NoArgs,
		PreRunE: a.setup,
		RunE:    a.runWatch,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "Manage the themes configuration file.",
	}

	configGenerateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a default configuration file",
		Long:  "Generate a default " + config.FileName + " in the config directory (or current directory if not specified).",
		Args:  cobra.NoArgs,
		RunE:  a.runConfigGenerate,
	}

	configCmd.AddCommand(configGenerateCmd)
	rootCmd.AddCommand(listCmd, showCmd, validateCmd, watchCmd, configCmd)
	return rootCmd
}

// setup loads the config and builds the registry the subcommands read.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	a.cfg = cfg

	a.logger, err = logging.New(cmd.ErrOrStderr(), "themes", cfg.LogLevel)
	if err != nil {
		return err
	}

	a.registry = theme.NewRegistry(cfg.DefaultTemplate, a.logger)
	if err := theme.RegisterWalkInTheForest(a.registry); err != nil {
		return fmt.Errorf("register %s: %w", theme.WalkInTheForestDarkName, err)
	}

	if cfg.TemplateDir != "" {
		if _, err := a.registry.LoadDir(cfg.TemplateDir); err != nil {
			a.logger.Warn("some templates could not be loaded", "dir", cfg.TemplateDir, "err", err)
		}
	}
	return nil
}

func (a *app) runList(cmd *cobra.Command, _ []string) error {
	return theme.WriteList(cmd.OutOrStdout(), a.registry, a.cfg.DefaultTemplate)
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	name := a.cfg.DefaultTemplate
	if len(args) == 1 {
		name = args[0]
	}
	t, err := a.registry.Lookup(name)
	if err != nil {
		return fmt.Errorf("show %s: %w", name, err)
	}
	return theme.WriteTemplate(cmd.OutOrStdout(), t, a.format)
}

func (a *app) runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		t, err := theme.ParseFile(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s (%s)\n", path, t.Name)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d theme files invalid", failed, len(args))
	}
	return nil
}

func (a *app) runWatch(cmd *cobra.Command, _ []string) error {
	if a.cfg.TemplateDir == "" {
		return fmt.Errorf("template_dir is not set in %s", a.cfg.Path())
	}

	w, err := theme.NewWatcher(a.cfg.TemplateDir)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx)
	}()

	a.logger.Info("watching templates", "dir", w.Dir())
	for range w.Updates() {
		loaded, err := a.registry.LoadDir(w.Dir())
		if err != nil {
			a.logger.Error("reload failed", "err", err)
		}
		a.logger.Info("reloaded templates", "loaded", loaded, "registered", a.registry.Len())
	}

	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.logger.Info("stopped watching")
	return nil
}

func (a *app) runConfigGenerate(cmd *cobra.Command, _ []string) error {
	dirAbs, err := filepath.Abs(a.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg := config.Default()
	cfg.Dir = dirAbs

	if _, err := os.Stat(cfg.Path()); err == nil {
		return fmt.Errorf("config file already exists: %s", cfg.Path())
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated default config file: %s\n", cfg.Path())
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
