package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/k1LoW/banner"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "check that docs/header.png is up to date",
	Long:  `check renders the banner in memory and compares it with docs/header.png.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRenderer()
		if err != nil {
			return err
		}
		defer r.Close()
		p, err := filepath.Abs(banner.OutputPath)
		if err != nil {
			return err
		}
		ok, err := r.Check(p)
		if err != nil {
			return err
		}
		if !ok {
			saved, err := banner.LoadPNG(p)
			if err != nil {
				return err
			}
			d, err := banner.Distance(r.Render(), saved)
			if err != nil {
				return err
			}
			return fmt.Errorf("%s is out of date (perceptual distance %d), run %s to regenerate it", p, d, rootCmd.Name())
		}
		cmd.Println(color.GreenString("%s is up to date", p))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
