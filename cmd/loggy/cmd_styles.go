package main

import (
	"fmt"
	"strings"

	loggy "github.com/SamuelDBines/pyloggy"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List builtin presets and loaded custom styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, err := loadSheet()
		if err != nil {
			return err
		}

		names := append(sheet.Names(), loggy.StyleNames()...)
		tableData := [][]string{{"NAME", "LOG", "OK", "INFO", "WARN", "ERR"}}
		for _, name := range names {
			style := sheet.Get(name)
			row := []string{name}
			for _, kind := range loggy.Kinds {
				row = append(row, strings.TrimSpace(style.Icon(kind)+" "+style.Label(kind)))
			}
			tableData = append(tableData, row)
		}

		rendered, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}
