package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	logAdapter "github.com/bft-labs/stringsaver/internal/adapters/log"
	"github.com/bft-labs/stringsaver/internal/adapters/mongodb"
	"github.com/bft-labs/stringsaver/internal/app"
	"github.com/bft-labs/stringsaver/internal/cliconfig"
	"github.com/bft-labs/stringsaver/internal/ports"
)

// version is overridable with -ldflags "-X main.version=...".
var version = "0.0.0"

const programName = "String Saver"

var longHelp = strings.TrimSpace(`
String Saver keeps one string in MongoDB.

Each save prints the previously stored string, then stores the new one.
Connection settings come from flags, STRINGSAVER_* environment variables
(optionally loaded from a .env file) or $HOME/.stringsaver/config.toml.
`)

var exampleUsage = strings.TrimSpace(`
  stringsaver save hello
  stringsaver save "hello world" --uri mongodb://db.internal:27017 --database saver
`)

// gatewayFactory builds the storage gateway for a resolved configuration.
type gatewayFactory func(cfg cliconfig.Config, logger ports.Logger) ports.Gateway

func mongoGateway(cfg cliconfig.Config, logger ports.Logger) ports.Gateway {
	mc := cfg.Mongo()
	return mongodb.NewGateway(mongodb.NewClient(mc), mc, logger)
}

func newRootCmd(log zerolog.Logger, newGateway gatewayFactory) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath, envFile string

	root := &cobra.Command{
		Use:           "stringsaver",
		Short:         programName + ": save a string and report the previous one",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(programName + " {{.Version}}\n")

	save := &cobra.Command{
		Use:   "save <value>",
		Short: "Print the last saved string and save a new one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolveConfig(cmd, &cfg, cfgPath, envFile); err != nil {
				return err
			}

			logger := cliconfig.WithLevel(log, cfg.LogLevel)
			logger.Debug().Interface("config", cfg.Redacted()).Msg("configuration")
			adapter := logAdapter.NewZerologAdapterWithLogger(logger)

			saver := app.NewSaver(newGateway(cfg, adapter),
				app.WithOutput(cmd.OutOrStdout()),
				app.WithLogger(adapter),
				app.WithLatestFirst(cfg.LatestFirst),
			)
			return saver.Save(cmd.Context(), args[0])
		},
	}
	root.AddCommand(save)

	flags := root.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.stringsaver/config.toml)")
	flags.StringVar(&envFile, "env-file", cliconfig.DefaultEnvFile, "dotenv file to load STRINGSAVER_* variables from, if present")
	flags.StringVar(&cfg.URI, "uri", cfg.URI, "MongoDB connection string")
	flags.StringVar(&cfg.Database, "database", cfg.Database, "database name")
	flags.StringVar(&cfg.Collection, "collection", cfg.Collection, "collection name")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "connect and server selection timeout")
	flags.BoolVar(&cfg.LatestFirst, "latest-first", cfg.LatestFirst, "look up the newest entry by timestamp (false uses natural order)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")

	return root
}

// resolveConfig layers the config file, dotenv file and environment under the
// flags that were set explicitly, then validates the result.
func resolveConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath, envFile string) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.LoadEnvFile(envFile); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func main() {
	log := cliconfig.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(log, mongoGateway).ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("stringsaver")
		stop()
		os.Exit(1)
	}
}
