package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"specc/internal/driver"
	"specc/internal/version"
)

const versionTagline = "specs in, components out"

// buildInfo is what `specc version` reports. Fingerprint is the part of
// every disk-cache key that names this build.
type buildInfo struct {
	Tool        string `json:"tool"`
	Version     string `json:"version"`
	Tagline     string `json:"tagline"`
	Fingerprint string `json:"fingerprint"`
	GitCommit   string `json:"git_commit,omitempty"`
	GitMessage  string `json:"git_message,omitempty"`
	BuildDate   string `json:"build_date,omitempty"`
}

func currentBuild(full bool) buildInfo {
	info := buildInfo{
		Tool:        "specc",
		Version:     orDefault(version.Version, "dev"),
		Tagline:     versionTagline,
		Fingerprint: driver.Fingerprint(),
	}
	if full {
		info.GitCommit = orDefault(version.GitCommit, "unknown")
		info.GitMessage = orDefault(version.GitMessage, "unknown")
		info.BuildDate = orDefault(version.BuildDate, "unknown")
	}
	return info
}

func newVersionCmd() *cobra.Command {
	var (
		format string
		full   bool
	)
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the specc build and its cache fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := currentBuild(full)
			switch strings.ToLower(strings.TrimSpace(format)) {
			case "", "pretty":
				writeBuildPretty(cmd.OutOrStdout(), info)
				return nil
			case "json":
				return writeBuildJSON(cmd.OutOrStdout(), info)
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	cmd.Flags().BoolVar(&full, "full", false, "add commit, commit message and build date")
	return cmd
}

func writeBuildPretty(out io.Writer, info buildInfo) {
	fmt.Fprintf(out, "specc %s: %s\n", version.Colored(info.Version), info.Tagline)
	fmt.Fprintf(out, "cache fingerprint: %s\n", info.Fingerprint)
	for _, row := range [][2]string{
		{"commit", info.GitCommit},
		{"message", info.GitMessage},
		{"built", info.BuildDate},
	} {
		if row[1] != "" {
			fmt.Fprintf(out, "%-8s %s\n", row[0]+":", row[1])
		}
	}
}

func writeBuildJSON(out io.Writer, info buildInfo) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}
