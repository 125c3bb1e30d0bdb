/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SvenDH/go-card-table/record"
)

var (
	dbPath   string
	logLevel string
	logger   = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cardtable",
	})
)

var rootCmd = &cobra.Command{
	Use:   "cardtable",
	Short: "Play card games on a simple windowed table",
	Long: `cardtable runs card games on top of a small application shell.

A settings file describes the window and the GUI widgets; the game itself is
picked by name from the registered games (see "cardtable list").`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		log.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "~/.cardtable/sessions.db", "session journal database, empty to disable")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// openJournal opens the session store, or returns nil when it is disabled.
func openJournal() (*record.Store, error) {
	if dbPath == "" {
		return nil, nil
	}
	return record.Open(dbPath)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
