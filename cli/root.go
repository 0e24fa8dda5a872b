// Package cli implements the idverify command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X .../cli.Version=..."
var Version = "dev"

type rootOptions struct {
	configPath string
	noColor    bool
	logLevel   string
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "idverify",
		Short: "Verify Aadhaar and PAN numbers from typed input or card images",
		Long: "idverify checks Aadhaar numbers (Verhoeff checksum) and PANs (structure and holder type),\n" +
			"either typed in or read from card photos and PDFs through OCR.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable coloured output")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level")

	cmd.AddCommand(
		newServeCmd(opts),
		newVerifyCmd(opts, aadhaarKind),
		newVerifyCmd(opts, panKind),
		newHolderTypeCmd(opts),
		newMCPCmd(opts),
	)
	return cmd
}

// Execute runs the CLI and exits non-zero on error
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
