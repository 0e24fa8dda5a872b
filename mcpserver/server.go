package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// New registers every tool on a fresh MCP server
func New(tools *Tools, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "idverify", Version: version}, nil)

	mcp.AddTool(server, MetadataVerifyAadhaar, tools.VerifyAadhaar)
	mcp.AddTool(server, MetadataVerifyPAN, tools.VerifyPAN)
	mcp.AddTool(server, MetadataPANHolderType, tools.PANHolderType)

	return server
}

// RunStdio serves the tools over stdin/stdout until ctx is done or the
// client disconnects
func RunStdio(ctx context.Context, tools *Tools, version string) error {
	return New(tools, version).Run(ctx, &mcp.StdioTransport{})
}
