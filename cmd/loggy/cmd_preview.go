package main

import (
	loggy "github.com/SamuelDBines/pyloggy"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var previewAll bool

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render sample lines in a style",
	Long: `Preview prints one sample line per message kind in the selected style,
with debug forced on so the gated kinds show up too. With --all every
builtin preset and loaded custom style is rendered in turn.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, err := loadSheet()
		if err != nil {
			return err
		}

		names := []string{flagStyle}
		if previewAll {
			names = append(sheet.Names(), loggy.StyleNames()...)
		}

		out := cmd.OutOrStdout()
		for _, name := range names {
			if previewAll {
				pterm.DefaultSection.WithWriter(out).Println(displayName(name))
			}
			style := sheet.Get(name)
			logger := loggy.New(loggy.Options{
				Debug:        true,
				DisableColor: flagNoColor,
				DisableIcons: flagNoIcons,
				Style:        &style,
				Out:          out,
				Err:          out,
			})
			logger.Log("resolving build graph")
			logger.Ok("build complete in 2.3s")
			logger.Info("42 packages cached")
			logger.Warn("disk usage at 91%")
			logger.Err("upload failed: connection reset")
		}
		return nil
	},
}

func displayName(name string) string {
	if name == "" {
		return loggy.StyleDefault
	}
	return name
}

func init() {
	previewCmd.Flags().BoolVar(&previewAll, "all", false, "preview every style")
	rootCmd.AddCommand(previewCmd)
}
