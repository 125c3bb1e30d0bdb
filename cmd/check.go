/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SvenDH/go-card-table/settings"
)

var checkCmd = &cobra.Command{
	Use:   "check <settings>",
	Short: "Validate a settings file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "window      %q %dx%d %s\n", s.Window.Title, s.Window.Size.X, s.Window.Size.Y, settings.FormatColor(s.Window.Background))
		fmt.Fprintf(out, "label       at %v timeout %v\n", s.GUI.NotificationLabel.Position, s.GUI.NotificationLabel.Timeout)
		fmt.Fprintf(out, "button      at %v size %v\n", s.GUI.DoneButton.Position, s.GUI.DoneButton.Size)
		fmt.Fprintf(out, "loop        logic %d Hz, render %d Hz\n", s.Loop.LogicRate, s.Loop.RenderRate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
