package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Aashish23092/id-verification/mcpserver"
)

func newMCPCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve verify_aadhaar, verify_pan and pan_holder_type as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, root)
			if err != nil {
				return err
			}
			defer a.Close()

			a.logger.Info("serving MCP tools on stdio")
			return mcpserver.RunStdio(ctx, &mcpserver.Tools{Aadhaar: a.aadhaar, PAN: a.pan}, Version)
		},
	}
}
