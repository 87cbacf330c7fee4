package cmd

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/fatih/color"
	"github.com/k1LoW/banner"
	"github.com/k1LoW/banner/config"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check fonts and output location",
	Long:  `Check that the monospace font loads and that docs/header.png can be written.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)
		yellow := color.New(color.FgYellow)
		bold := color.New(color.Bold)

		allOK := true

		// 1. Check configuration file (optional)
		cmd.Print("🔧 Checking configuration file ... ")
		cfg, err := config.Load()
		switch {
		case err != nil:
			red.Println("✗ CONFIG ERROR")
			cmd.Printf("   Error loading config: %v\n", err)
			allOK = false
			cfg = &config.Config{}
		case cfg.Path() == "":
			green.Println("✓ OK")
			cmd.Println("   No configuration file, using defaults")
		default:
			green.Println("✓ OK")
			cmd.Printf("   Configuration file: %s\n", cfg.Path())
		}

		// 2. Check font
		cmd.Print("🔤 Checking font ... ")
		face, p, err := banner.LoadFace(fontCandidates(cfg), banner.DefaultFontSize)
		if err != nil {
			yellow.Println("⚠️ FALLBACK")
			cmd.Printf("   %v\n", err)
			cmd.Println("   The built-in bitmap font will be used")
		} else {
			_ = face.Close()
			green.Println("✓ OK")
			cmd.Printf("   Font: %s\n", p)
		}

		// 3. Check output directory
		cmd.Print("📁 Checking output directory ... ")
		out, err := filepath.Abs(banner.OutputPath)
		if err != nil {
			return err
		}
		if err := checkWritable(filepath.Dir(out)); err != nil {
			red.Println("✗ NOT WRITABLE")
			cmd.Printf("   %v\n", err)
			allOK = false
		} else {
			green.Println("✓ OK")
			cmd.Printf("   Output: %s\n", out)
		}

		cmd.Println()
		if allOK {
			bold.Printf("🎉 ")
			green.Println("All checks passed!")
		} else {
			red.Println("⚠️  Some checks failed.")
		}
		return nil
	},
}

// fontCandidates lists the configured fonts followed by the default font.
func fontCandidates(cfg *config.Config) []string {
	return slices.Concat(cfg.Fonts, []string{banner.DefaultFontPath})
}

// checkWritable reports whether a file can be created in dir, or in its
// nearest existing ancestor when dir does not exist yet.
func checkWritable(dir string) error {
	for {
		fi, err := os.Stat(dir)
		if err == nil {
			if !fi.IsDir() {
				return &os.PathError{Op: "check", Path: dir, Err: os.ErrExist}
			}
			break
		}
		if !os.IsNotExist(err) {
			return err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return err
		}
		dir = parent
	}
	f, err := os.CreateTemp(dir, ".banner-doctor-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
