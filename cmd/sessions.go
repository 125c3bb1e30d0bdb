/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/spf13/cobra"
)

var sessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recently played sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		journal, err := openJournal()
		if err != nil {
			return err
		}
		if journal == nil {
			return errors.New("session journal is disabled")
		}
		defer journal.Close()

		list, err := journal.Recent(cmd.Context(), sessionsLimit)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tGAME\tSTARTED\tLENGTH\tTICKS\tFRAMES\tCLICKS\tEND")
		for _, s := range list {
			length, end := "running", "-"
			if !s.Open() {
				length = durafmt.Parse(s.Duration()).LimitFirstN(2).String()
				end = s.EndReason
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				s.ID, s.Game, humanize.Time(s.StartedAt), length,
				humanize.Comma(s.Stats.Ticks), humanize.Comma(s.Stats.Frames),
				humanize.Comma(s.Stats.MouseEvents), end)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "n", 10, "number of sessions to show")
}
