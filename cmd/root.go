/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/k1LoW/banner"
	"github.com/k1LoW/banner/config"
	"github.com/k1LoW/banner/handler/status"
	"github.com/k1LoW/banner/version"
	"github.com/k1LoW/errors"
	"github.com/k1LoW/tail"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

// tb keeps the latest log records of this run for error.json.
var tb = tail.New(1000)

var rootCmd = &cobra.Command{
	Use:          version.Name,
	Short:        "banner renders the project banner into docs/header.png",
	Long:         `banner renders the project banner into a transparent PNG at docs/header.png.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Version:      fmt.Sprintf("%s (rev:%s)", version.Version, version.Revision),
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
		return r.Save(p)
	},
}

type errorData struct {
	LatestLogs  []any     `json:"latest_logs"`
	StackTraces any       `json:"stack_traces"`
	CreatedAt   time.Time `json:"created_at"`
	Version     string    `json:"version"`
	Revision    string    `json:"revision"`
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		dumpPath := filepath.Join(config.StateHomePath(), "error.json")
		if err := writeErrorDump(dumpPath, err); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}
}

// writeErrorDump writes the stack traces of err and the latest logs to dumpPath.
func writeErrorDump(dumpPath string, err error) error {
	var latestLogs []any
	for _, line := range tb.Lines() {
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			latestLogs = append(latestLogs, line)
		} else {
			latestLogs = append(latestLogs, m)
		}
	}
	d := &errorData{
		LatestLogs:  latestLogs,
		StackTraces: errors.StackTraces(err),
		CreatedAt:   time.Now(),
		Version:     version.Version,
		Revision:    version.Revision,
	}
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dumpPath), 0o700); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(dumpPath), err)
	}
	if err := os.WriteFile(dumpPath, b, 0o600); err != nil {
		return fmt.Errorf("failed to write error.json to %s: %w", dumpPath, err)
	}
	return nil
}

func newLogger() *slog.Logger {
	return slog.New(slogmulti.Fanout(
		status.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})),
		slog.NewJSONHandler(tb, &slog.HandlerOptions{Level: slog.LevelDebug}),
	))
}

// newRenderer builds a renderer with the fonts listed in the config file tried first.
func newRenderer() (*banner.Renderer, error) {
	logger := newLogger()
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	opts := []banner.Option{
		banner.WithLogger(logger),
	}
	if len(cfg.Fonts) > 0 {
		opts = append(opts, banner.WithFontPaths(cfg.Fonts...))
	}
	return banner.New(opts...)
}
