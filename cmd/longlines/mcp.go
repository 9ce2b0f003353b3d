package main

import (
	versionconfig "github.com/rwx-cloud/longlines/cmd/longlines/config"
	"github.com/rwx-cloud/longlines/internal/mcp"
	"github.com/spf13/cobra"
)

var (
	mcpCmd = &cobra.Command{
		GroupID: "commands",
		Use:     "mcp",
		Short:   "MCP (Model Context Protocol) related commands",
	}

	mcpServeCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start an MCP server exposing the wrap_text tool",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := mcp.ServeConfig{
				Version: versionconfig.Version,
				Logger:  logger,
			}
			return mcp.Serve(cmd.Context(), config)
		},
	}
)

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
