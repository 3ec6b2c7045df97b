package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	checkoutfields "github.com/goliatone/go-checkoutfields"
	"github.com/goliatone/go-checkoutfields/pkg/settings"
	"github.com/goliatone/go-checkoutfields/pkg/store"
)

var (
	dbPath       string
	settingsPath string
	verbose      bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "checkoutfields",
	Short: "Inspect and drive the checkout title/birthdate field pipeline",
	Long: `checkoutfields runs the checkout field pipeline against a local SQLite
database holding settings, customer metadata and order metadata.

Use it to preview the rendered billing fields, simulate submissions and
profile updates, and check the merge tags sent to the mailing list.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "checkoutfields.db", "SQLite database path")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "YAML/JSON settings file overriding stored flags")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := execute(ctx, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}

// execute runs rootCmd with args. Subcommands bind --customer and --order to
// shared variables, so flags left set by a previous run are reset first.
func execute(ctx context.Context, args []string) error {
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// env bundles the opened database and the plugin built on top of it.
type env struct {
	db       *store.SQLite
	settings settings.Store
	plugin   *checkoutfields.Plugin
}

func openEnv(ctx context.Context) (*env, error) {
	db, err := store.Open(ctx, dbPath)
	if err != nil {
		return nil, err
	}

	var flags settings.Store = db
	if settingsPath != "" {
		override, err := settings.LoadFile(settingsPath)
		if err != nil {
			db.Close()
			return nil, err
		}
		flags = settings.Layered{override, db}
	}

	plugin := checkoutfields.New(
		checkoutfields.WithSettingsStore(flags),
		checkoutfields.WithProfileStore(db),
		checkoutfields.WithLogger(logger),
	)
	logger.Debug("environment ready",
		zap.String("db", db.Path()),
		zap.String("settings", settingsPath),
		zap.Strings("stages", plugin.Stages()),
	)
	return &env{db: db, settings: flags, plugin: plugin}, nil
}

func (e *env) Close() {
	if e != nil && e.db != nil {
		if err := e.db.Close(); err != nil {
			logger.Warn("close database", zap.Error(err))
		}
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
