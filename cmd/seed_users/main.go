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

const missingCredentialsMsg = "Missing " + config.URLEnvVar + " or " + config.ServiceRoleKeyEnvVar + " in .env"

type clientFactory func(cfg *config.Config) (seed.AccountCreator, error)

func newSupabaseClient(cfg *config.Config) (seed.AccountCreator, error) {
	return supabase.NewClient(cfg.SupabaseURL, cfg.ServiceRoleKey)
}

func newRootCmd(newClient clientFactory) *cobra.Command {
	var envFile string
	var dataPath string
	var auditDB string
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "seed_users",
		Short:         "Create confirmed auth accounts for every user in the seed file",
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
			if err := cfg.Validate(); err != nil {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), missingCredentialsMsg)
				return err
			}

			client, err := newClient(cfg)
			if err != nil {
				return fmt.Errorf("create supabase client: %w", err)
			}

			users, err := seed.LoadUsers(dataPath)
			if err != nil {
				return err
			}

			seeder := &seed.UserSeeder{
				Client:  client,
				Console: &seed.Console{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()},
				Logger:  logger,
			}
			if auditDB != "" {
				store, err := db.OpenAuditStore(auditDB)
				if err != nil {
					return fmt.Errorf("open audit journal: %w", err)
				}
				defer func() { _ = store.Close() }()
				run, err := store.StartRun(model.UserSeeder)
				if err != nil {
					return err
				}
				seeder.Audit = store
				seeder.RunID = run.RunID
				logger.Infof("journaling run %s to %s", run.RunID, auditDB)
			}

			seeder.Run(cmd.Context(), users)
			return nil
		},
	}

	rootCmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "Path to the environment file holding the Supabase credentials")
	rootCmd.Flags().StringVar(&dataPath, "data", seed.DefaultUsersFile, "Path to the JSON file of users to create")
	rootCmd.Flags().StringVar(&auditDB, "audit-db", "", "Path to a SQLite audit journal; empty disables journaling")
	rootCmd.Flags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Diagnostic log level (debug, info, warn, error)")

	return rootCmd
}

func main() {
	if err := newRootCmd(newSupabaseClient).Execute(); err != nil {
		log.Fatalf("seed_users failed: %v", err)
	}
}
