package main

import (
	"fmt"
	"log"

	"crossbeamseed/config"
	"crossbeamseed/db"
	"crossbeamseed/model"
	"crossbeamseed/plugins/supabase"
	"crossbeamseed/seed"

	"github.com/spf13/cobra"
)

type clientFactory func(cfg *config.Config) (seed.ProfileInserter, error)

func newSupabaseClient(cfg *config.Config) (seed.ProfileInserter, error) {
	return supabase.NewClient(cfg.SupabaseURL, cfg.ServiceRoleKey)
}

func newRootCmd(newClient clientFactory, profiles []model.ProfileRecord) *cobra.Command {
	var envFile string
	var auditDB string
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "seed_profiles",
		Short:         "Insert the built-in profile records into the profiles table",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := config.NewLogger(logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			client, err := newClient(cfg)
			if err != nil {
				return fmt.Errorf("create supabase client: %w", err)
			}

			seeder := &seed.ProfileSeeder{
				Client:   client,
				Profiles: profiles,
				Console:  &seed.Console{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()},
				Logger:   logger,
			}
			if auditDB != "" {
				store, err := db.OpenAuditStore(auditDB)
				if err != nil {
					return fmt.Errorf("open audit journal: %w", err)
				}
				defer func() { _ = store.Close() }()
				run, err := store.StartRun(model.ProfileSeeder)
				if err != nil {
					return err
				}
				seeder.Audit = store
				seeder.RunID = run.RunID
				logger.Infof("journaling run %s to %s", run.RunID, auditDB)
			}

			seeder.Run(cmd.Context())
			return nil
		},
	}

	rootCmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "Path to the environment file holding the Supabase credentials")
	rootCmd.Flags().StringVar(&auditDB, "audit-db", "", "Path to a SQLite audit journal; empty disables journaling")
	rootCmd.Flags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Diagnostic log level (debug, info, warn, error)")

	return rootCmd
}

func main() {
	if err := newRootCmd(newSupabaseClient, seed.DefaultProfiles).Execute(); err != nil {
		log.Fatalf("seed_profiles failed: %v", err)
	}
}
