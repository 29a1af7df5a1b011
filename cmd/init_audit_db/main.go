package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"crossbeamseed/db"

	"github.com/spf13/cobra"
)

const (
	defaultDBPath     = "seed_audit.db"
	defaultMaxBackups = 5
	backupFileExt     = ".bak"
)

func main() {
	var dbPath string
	var doBackup bool
	var maxBackups int

	rootCmd := &cobra.Command{
		Use:   "init_audit_db",
		Short: "Create the schema of the seeding audit journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if doBackup {
				if err := backupExisting(dbPath, maxBackups); err != nil {
					return err
				}
			}
			store, err := db.OpenAuditStore(dbPath)
			if err != nil {
				return fmt.Errorf("failed to initialize audit journal: %w", err)
			}
			if err := store.Ping(cmd.Context()); err != nil {
				return err
			}
			log.Printf("audit journal initialized at %s", dbPath)
			return store.Close()
		},
	}

	rootCmd.Flags().StringVar(&dbPath, "db", defaultDBPath, "Path to SQLite audit journal")
	rootCmd.Flags().BoolVar(&doBackup, "backup", true, "Whether to create a backup of the journal if it exists")
	rootCmd.Flags().IntVar(&maxBackups, "max-backups", defaultMaxBackups, "Maximum number of backups to retain")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

// backupExisting copies dbPath aside with a timestamp suffix and prunes old copies.
func backupExisting(dbPath string, maxBackups int) error {
	info, err := os.Stat(dbPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("existing journal file size: %d bytes", info.Size())

	backupPath := fmt.Sprintf("%s.%s%s", dbPath, time.Now().Format("20060102-150405"), backupFileExt)
	if err := copyFile(dbPath, backupPath); err != nil {
		return fmt.Errorf("failed to create journal backup: %w", err)
	}
	log.Printf("existing journal backed up to %s", backupPath)
	pruneOldBackups(dbPath, maxBackups)
	return nil
}

func copyFile(src, dst string) error {
	sourceFileStat, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !sourceFileStat.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}

	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func(source *os.File) {
		if err := source.Close(); err != nil {
			log.Printf("warning: failed to close file %s: %v", src, err)
		}
	}(source)

	destination, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func(destination *os.File) {
		if err := destination.Close(); err != nil {
			log.Printf("warning: failed to close file %s: %v", dst, err)
		}
	}(destination)

	_, err = destination.ReadFrom(source)
	return err
}

func pruneOldBackups(dbPath string, max int) {
	dir := filepath.Dir(dbPath)
	prefix := filepath.Base(dbPath) + "."
	files, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("warning: failed to read backup directory: %v", err)
		return
	}

	var backups []string
	for _, f := range files {
		if strings.HasPrefix(f.Name(), prefix) && strings.HasSuffix(f.Name(), backupFileExt) {
			backups = append(backups, filepath.Join(dir, f.Name()))
		}
	}
	if len(backups) <= max {
		return
	}

	sort.Strings(backups)
	for _, file := range backups[:len(backups)-max] {
		if err := os.Remove(file); err != nil {
			log.Printf("warning: failed to remove old backup %s: %v", file, err)
		} else {
			log.Printf("removed old backup: %s", file)
		}
	}
}
