package main

import (
	"log"

	"crossbeamseed/remap"

	"github.com/spf13/cobra"
)

func main() {
	var userCount int

	rootCmd := &cobra.Command{
		Use:   "remap_user_refs [file...]",
		Short: "Wrap localUsers[N] and 'uN' references into the range of seeded users",
		Long: "Rewrites user references in place so every localUsers index and 'uN' id points at one of " +
			"the --users seeded accounts. Without arguments the default client data files are processed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := remap.New(userCount)
			if err != nil {
				return err
			}
			files := args
			if len(files) == 0 {
				files = remap.DefaultFiles
			}
			return r.RewriteFiles(files, cmd.OutOrStdout())
		},
	}

	rootCmd.Flags().IntVar(&userCount, "users", remap.DefaultUserCount, "Number of users currently seeded")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}
