/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SvenDH/go-card-table/games"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the games that can be played",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, g := range games.List() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", g.ID, g.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
