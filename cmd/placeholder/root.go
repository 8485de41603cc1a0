package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dshills/placeholder/internal/config"
	"github.com/dshills/placeholder/internal/engine"
	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/placeholder"
	"github.com/dshills/placeholder/internal/rawdoc"
	"github.com/dshills/placeholder/internal/render"
	"github.com/dshills/placeholder/internal/script"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	scriptPath string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "placeholder",
		Short:         "Substitute named placeholders in rich-text documents",
		Long:          "placeholder reads documents in raw block form (YAML or JSON), keeps every\nplaceholder annotation in sync with a list of name/value pairs and writes\nthe result as text, YAML or JSON.",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to configuration file (TOML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.scriptPath, "script", "", "Lua script that computes placeholder values")

	root.AddCommand(
		newRenderCmd(a),
		newDiscoverCmd(a),
		newReconcileCmd(a),
		newRemoveCmd(a),
		newApplyCmd(a),
		newFingerprintCmd(a),
		newWatchCmd(a),
	)
	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger = cfg.Logging.NewLogger(cmd.ErrOrStderr())
	a.logger.Debug("configuration loaded", "path", a.configPath, "render_format", cfg.Render.Format)
	return nil
}

// renderFlags are the output flags shared by document-producing commands.
type renderFlags struct {
	format string
	open   string
	close  string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format (text, yaml, json); default from config")
	cmd.Flags().StringVar(&f.open, "open", "", "Marker written before each placeholder in text output")
	cmd.Flags().StringVar(&f.close, "close", "", "Marker written after each placeholder in text output")
}

// renderer merges flags over the configured render settings.
func (a *app) renderer(cmd *cobra.Command, f *renderFlags) (render.Renderer, error) {
	opts := render.Options{
		Format: render.Format(a.cfg.Render.Format),
		Open:   a.cfg.Render.Open,
		Close:  a.cfg.Render.Close,
	}
	if f.format != "" {
		opts.Format = render.Format(f.format)
	}
	if cmd.Flags().Changed("open") {
		opts.Open = f.open
	}
	if cmd.Flags().Changed("close") {
		opts.Close = f.close
	}
	return render.New(opts)
}

// loadInputs reads the document and the optional values file.
func loadInputs(docPath, valuesPath string) (*document.Document, placeholder.List, error) {
	doc, err := rawdoc.ReadFile(docPath)
	if err != nil {
		return nil, placeholder.List{}, err
	}
	if valuesPath == "" {
		return doc, placeholder.List{}, nil
	}
	list, err := rawdoc.ReadValues(valuesPath)
	if err != nil {
		return nil, placeholder.List{}, err
	}
	return doc, list, nil
}

// loadEngine reads the inputs, runs the values script if one is set and
// loads the result into a fresh engine, which reconciles the list with the
// document and substitutes every value.
func (a *app) loadEngine(ctx context.Context, docPath, valuesPath string) (*engine.Engine, error) {
	doc, list, err := loadInputs(docPath, valuesPath)
	if err != nil {
		return nil, err
	}
	if a.scriptPath != "" {
		s, err := script.Load(a.scriptPath)
		if err != nil {
			return nil, err
		}
		if list, err = s.Apply(ctx, list); err != nil {
			return nil, err
		}
		a.logger.Debug("values script applied", "script", a.scriptPath, "placeholders", list.Len())
	}
	e := engine.New(engine.WithLogger(a.logger))
	if err := e.Load(doc, list.Items()); err != nil {
		return nil, err
	}
	return e, nil
}

func writeOutput(cmd *cobra.Command, out string) error {
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out += "\n"
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
