package commands

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2023/internal/app"
	"aoc2023/internal/config"
	"aoc2023/internal/domain"
	"aoc2023/internal/logging"
)

var (
	home       string
	configPath string
	passphrase string
	verbose    bool

	appCtx *app.App
	logger *zap.Logger
)

var newLogger = logging.New

func Execute() error {
	return run(newRootCmd())
}

// run executes root and flushes the logger whether or not a command failed.
func run(root *cobra.Command) error {
	logger = nil
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "aoc [day]",
		Short: "Advent of Code 2023 solutions",
		Long:  "Run one day's solution by name (day_N, dayN or N), or every day in order when no day is given.",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".aoc2023")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			if configPath == "" {
				configPath = filepath.Join(home, "config.yaml")
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err = newLogger(cfg.Log.Level, verbose)
			if err != nil {
				return err
			}
			timeout, err := cfg.TimeoutDuration()
			if err != nil {
				return err
			}

			w, err := app.NewWire(app.Config{
				Home:      home,
				Year:      cfg.Year,
				BaseURL:   cfg.BaseURL,
				UserAgent: cfg.UserAgent,
				EnvToken:  domain.SessionToken(cfg.Session),
				HTTP:      &http.Client{Timeout: timeout},
				Log:       logger,
			})
			if err != nil {
				return fmt.Errorf("wire: %w", err)
			}
			appCtx = app.New(w, cmd.OutOrStdout())
			logger.Debug("ready", zap.String("home", home), zap.String("config", configPath), zap.Int("year", cfg.Year))

			// Flags and args are valid; later failures are not usage errors.
			cmd.SilenceUsage = true
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return appCtx.Runner.RunAll(cmd.Context())
			}
			return appCtx.Runner.RunOne(cmd.Context(), args[0])
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.aoc2023)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the session token")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(listCmd(), fetchCmd(), sessionCmd())
	return root
}
