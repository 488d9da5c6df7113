package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/querydsl/internal/config"
	logpkg "github.com/kailas-cloud/querydsl/internal/logger"
	"github.com/kailas-cloud/querydsl/internal/metrics"
	"github.com/kailas-cloud/querydsl/internal/version"
)

func main() {
	os.Exit(execute(context.Background(), newRootCmd()))
}

// execute runs cmd and reports any failure on its stderr. Returns the exit code.
func execute(ctx context.Context, cmd *cobra.Command) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "querydsl:", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		opts       renderOptions
	)

	root := &cobra.Command{
		Use:   "querydsl",
		Short: "Render search query DSL clauses from templates",
		Long: `Render boosting query templates (YAML or JSON) into the JSON body
expected by the search engine query API.

Environment variables:
  ENV=local|dev|prod          selects config/<env>.yaml
  QUERYDSL_LOG_LEVEL=info
  QUERYDSL_METRICS_TEXTFILE=`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default config/<ENV>.yaml)")

	render := &cobra.Command{
		Use:   "render FILE...",
		Short: "Render templates to JSON, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := config.GetEnv()
			cfg, err := loadConfig(env, configPath)
			if err != nil {
				return err
			}

			logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			logger.Info("Starting querydsl render",
				zap.String("version", version.Version),
				zap.String("commit", version.Commit),
				zap.String("env", env),
				zap.Int("templates", len(args)),
			)

			// flags win over config
			if !cmd.Flags().Changed("pretty") {
				opts.Pretty = cfg.Render.Pretty
			}
			if !cmd.Flags().Changed("strict") {
				opts.Strict = cfg.Render.StrictNegativeBoost
			}
			opts.Indent = cfg.IndentString()

			metrics.RegisterRenderMetrics()

			ctx := logpkg.ContextWithLogger(cmd.Context(), logger)
			renderErr := renderFiles(ctx, cmd.OutOrStdout(), args, opts)

			if cfg.Metrics.Textfile != "" {
				if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
					logger.Error("Failed to write metrics", zap.Error(err))
				}
			}
			return renderErr
		},
	}
	render.Flags().BoolVar(&opts.Pretty, "pretty", false, "indent JSON output")
	render.Flags().BoolVar(&opts.Strict, "strict", false, "reject negative_boost outside (0, 1)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "querydsl", version.String())
		},
	}

	root.AddCommand(render, versionCmd)
	return root
}

// loadConfig reads an explicit config file, or config/<env>.yaml when path
// is empty. A missing default file falls back to built-in defaults.
func loadConfig(env, path string) (config.Config, error) {
	if path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.Load(env)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
