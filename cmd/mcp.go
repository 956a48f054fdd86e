package cmd

import (
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"rgbctl/internal/mcptools"
	"rgbctl/pkg/logging"
)

// mcpCmd serves the picker to MCP clients
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the color tools over MCP on stdio",
	Long: `Run an MCP server on stdin/stdout so AI assistants can convert colors and
read or change the remembered color.

Tools:
  color_convert   - convert a color between notations
  color_contrast  - luminance and preview text color of a color
  picker_get      - the remembered color and theme
  picker_set      - set the remembered color
  picker_random   - set a random color
  picker_reset    - reset to black
  picker_theme    - set or toggle the theme

Example client configuration:
  {"command": "rgbctl", "args": ["mcp"]}`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	application, err := newApplication(true)
	if err != nil {
		return err
	}

	tools := mcptools.NewColorTools(application.Services().Controller)
	s := mcptools.NewServer(rootCmd.Version, tools)

	logging.Info("MCP", "Serving %d tools on stdio", len(tools.Tools()))
	return server.NewStdioServer(s).Listen(commandContext(cmd), os.Stdin, os.Stdout)
}
