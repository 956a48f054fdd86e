package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"rgbctl/internal/cli"
	"rgbctl/internal/colormodel"
	"rgbctl/internal/picker"
	"rgbctl/pkg/logging"
)

const subsystem = "MCP"

// ColorTools exposes the color model and a picker controller as MCP tools.
type ColorTools struct {
	controller *picker.Controller
}

// NewColorTools creates the tool set. The controller must already be initialized.
func NewColorTools(controller *picker.Controller) *ColorTools {
	return &ColorTools{controller: controller}
}

// NewServer creates an MCP server with every color tool registered.
func NewServer(version string, tools *ColorTools) *server.MCPServer {
	s := server.NewMCPServer(
		"rgbctl",
		version,
		server.WithToolCapabilities(true),
	)
	s.AddTools(tools.ServerTools()...)
	return s
}

// ServerTools pairs every tool definition with its handler.
func (ct *ColorTools) ServerTools() []server.ServerTool {
	handlers := map[string]server.ToolHandlerFunc{
		"color_convert":  ct.HandleColorConvert,
		"color_contrast": ct.HandleColorContrast,
		"picker_get":     ct.HandlePickerGet,
		"picker_set":     ct.HandlePickerSet,
		"picker_random":  ct.HandlePickerRandom,
		"picker_reset":   ct.HandlePickerReset,
		"picker_theme":   ct.HandlePickerTheme,
	}

	var out []server.ServerTool
	for _, tool := range ct.Tools() {
		out = append(out, server.ServerTool{Tool: tool, Handler: handlers[tool.Name]})
	}
	return out
}

// Tools returns all tool definitions.
func (ct *ColorTools) Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("color_convert",
			mcp.WithDescription("Convert a color between hex, rgb() and packed decimal notations"),
			mcp.WithString("value",
				mcp.Required(),
				mcp.Description("Color such as #FF8000, rgb(255, 128, 0) or 16744448"),
			),
			withFormat(),
		),
		mcp.NewTool("color_contrast",
			mcp.WithDescription("Get luminance and readable text and border colors for a background"),
			mcp.WithString("value",
				mcp.Required(),
				mcp.Description("Background color"),
			),
			withFormat(),
		),
		mcp.NewTool("picker_get",
			mcp.WithDescription("Get the picker's current color and theme"),
		),
		mcp.NewTool("picker_set",
			mcp.WithDescription("Set the picker's current color"),
			mcp.WithString("value",
				mcp.Required(),
				mcp.Description("New color"),
			),
			withFormat(),
		),
		mcp.NewTool("picker_random",
			mcp.WithDescription("Set the picker to a random color"),
		),
		mcp.NewTool("picker_reset",
			mcp.WithDescription("Reset the picker to black"),
		),
		mcp.NewTool("picker_theme",
			mcp.WithDescription("Set or toggle the picker's display theme"),
			mcp.WithString("theme",
				mcp.Description("light, dark or toggle (default toggle)"),
				mcp.Enum("light", "dark", "toggle"),
			),
		),
	}
}

func withFormat() mcp.ToolOption {
	return mcp.WithString("from",
		mcp.Description("Input notation: auto, hex, rgb or decimal (default auto)"),
		mcp.Enum("auto", "hex", "rgb", "decimal"),
	)
}

func (ct *ColorTools) HandleColorConvert(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, errResult := parseColorArg(req)
	if errResult != nil {
		return errResult, nil
	}
	return reportResult(cli.NewColorReport(picker.Project(c), ""))
}

func (ct *ColorTools) HandleColorContrast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, errResult := parseColorArg(req)
	if errResult != nil {
		return errResult, nil
	}
	p := picker.Project(c)
	result := map[string]interface{}{
		"background": p.DisplayHex,
		"luminance":  p.Luminance,
		"light":      p.Contrast.Light,
		"text":       p.Contrast.Text,
		"border":     p.Contrast.Border,
	}
	return jsonResult(result)
}

func (ct *ColorTools) HandlePickerGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return reportResult(cli.NewColorReport(ct.controller.Snapshot(), ct.controller.Theme()))
}

func (ct *ColorTools) HandlePickerSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, errResult := parseColorArg(req)
	if errResult != nil {
		return errResult, nil
	}
	p := ct.controller.ApplyRGB(c)
	logging.Info(subsystem, "Picker set to %s", p.DisplayHex)
	return reportResult(cli.NewColorReport(p, ct.controller.Theme()))
}

func (ct *ColorTools) HandlePickerRandom(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := ct.controller.Randomize()
	logging.Info(subsystem, "Picker randomized to %s", p.DisplayHex)
	return reportResult(cli.NewColorReport(p, ct.controller.Theme()))
}

func (ct *ColorTools) HandlePickerReset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := ct.controller.Reset()
	return reportResult(cli.NewColorReport(p, ct.controller.Theme()))
}

func (ct *ColorTools) HandlePickerTheme(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arg := req.GetString("theme", "toggle")
	var theme picker.Theme
	if arg == "toggle" {
		theme = ct.controller.ToggleTheme()
	} else {
		t, ok := picker.ParseTheme(arg)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("theme must be light, dark or toggle, got %q", arg)), nil
		}
		theme = ct.controller.SetTheme(t)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Theme is now '%s'", theme)), nil
}

// parseColorArg reads the "value" and "from" arguments. A non-nil result is
// the error to hand back to the caller.
func parseColorArg(req mcp.CallToolRequest) (colormodel.RGB, *mcp.CallToolResult) {
	value, err := req.RequireString("value")
	if err != nil {
		return colormodel.RGB{}, mcp.NewToolResultError("value is required")
	}
	format, err := colormodel.ParseFormat(req.GetString("from", string(colormodel.FormatAuto)))
	if err != nil {
		return colormodel.RGB{}, mcp.NewToolResultError(err.Error())
	}
	c, err := colormodel.Parse(value, format)
	if err != nil {
		return colormodel.RGB{}, mcp.NewToolResultError(fmt.Sprintf("Failed to parse color: %v", err))
	}
	return c, nil
}

func reportResult(r cli.ColorReport) (*mcp.CallToolResult, error) {
	return jsonResult(r)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	resultJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}
