package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rgbctl/internal/cli"
	"rgbctl/internal/colormodel"
	"rgbctl/internal/picker"
)

var (
	colorOutputFormat string
	colorInputFormat  string
)

// showCmd prints the remembered color
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current color",
	Long: `Show the remembered color in every notation together with its
luminance, the preview text color and the current theme.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

// setCmd replaces the remembered color
var setCmd = &cobra.Command{
	Use:   "set <color>",
	Short: "Set the current color",
	Long: `Set the remembered color. The color may be written as hex ("#FF8000",
"ff8000", "f80"), as an rgb triple ("rgb(255, 128, 0)", "255,128,0") or as
a packed decimal ("16744448"). Use --from to force one notation.`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

// randomCmd picks a random color
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Set a random color",
	Args:  cobra.NoArgs,
	RunE:  runRandom,
}

// resetCmd goes back to black
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the current color to black",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

// convertCmd converts without touching the remembered color
var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color between notations",
	Long: `Convert a color between hex, rgb and decimal notation and show its
luminance and preview text color. The remembered color is not changed.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

// themeCmd shows or changes the theme
var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|toggle]",
	Short:     "Show or change the picker theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	RunE:      runTheme,
}

// copyCmd puts the current hex value on the clipboard
var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the current color as hex to the clipboard",
	Long: `Copy the remembered color as #RRGGBB to the system clipboard. When no
clipboard utility is available the value is sent to the terminal as an
OSC52 sequence, unless clipboard.osc52Fallback is false.`,
	Args: cobra.NoArgs,
	RunE: runCopy,
}

func init() {
	for _, c := range []*cobra.Command{showCmd, setCmd, randomCmd, resetCmd, convertCmd} {
		rootCmd.AddCommand(c)
		c.Flags().StringVarP(&colorOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	}
	for _, c := range []*cobra.Command{setCmd, convertCmd} {
		c.Flags().StringVar(&colorInputFormat, "from", "auto", "Input notation (auto, hex, rgb, decimal)")
	}
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(copyCmd)
}

func printReport(cmd *cobra.Command, p picker.Projection, theme picker.Theme) error {
	format, err := cli.ParseOutputFormat(colorOutputFormat)
	if err != nil {
		return err
	}
	return cli.NewPrinter(cmd.OutOrStdout(), format).Print(cli.NewColorReport(p, theme))
}

func parseColorArg(text string) (colormodel.RGB, error) {
	format, err := colormodel.ParseFormat(colorInputFormat)
	if err != nil {
		return colormodel.RGB{}, err
	}
	return colormodel.Parse(text, format)
}

func runShow(cmd *cobra.Command, args []string) error {
	application, err := newApplication(true)
	if err != nil {
		return err
	}
	ctrl := application.Services().Controller
	return printReport(cmd, ctrl.Snapshot(), ctrl.Theme())
}

func runSet(cmd *cobra.Command, args []string) error {
	col, err := parseColorArg(args[0])
	if err != nil {
		return err
	}
	application, err := newApplication(true)
	if err != nil {
		return err
	}
	ctrl := application.Services().Controller
	return printReport(cmd, ctrl.ApplyRGB(col), ctrl.Theme())
}

func runRandom(cmd *cobra.Command, args []string) error {
	application, err := newApplication(true)
	if err != nil {
		return err
	}
	ctrl := application.Services().Controller
	return printReport(cmd, ctrl.Randomize(), ctrl.Theme())
}

func runReset(cmd *cobra.Command, args []string) error {
	application, err := newApplication(true)
	if err != nil {
		return err
	}
	ctrl := application.Services().Controller
	return printReport(cmd, ctrl.Reset(), ctrl.Theme())
}

func runConvert(cmd *cobra.Command, args []string) error {
	col, err := parseColorArg(args[0])
	if err != nil {
		return err
	}
	return printReport(cmd, picker.Project(col), "")
}

func runTheme(cmd *cobra.Command, args []string) error {
	application, err := newApplication(true)
	if err != nil {
		return err
	}
	ctrl := application.Services().Controller

	theme := ctrl.Theme()
	if len(args) == 1 {
		switch arg := strings.ToLower(args[0]); arg {
		case "toggle":
			theme = ctrl.ToggleTheme()
		default:
			t, ok := picker.ParseTheme(arg)
			if !ok {
				return fmt.Errorf("unknown theme %q, expected light, dark or toggle", args[0])
			}
			theme = ctrl.SetTheme(t)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), theme)
	return nil
}

func runCopy(cmd *cobra.Command, args []string) error {
	application, err := newApplication(true)
	if err != nil {
		return err
	}
	services := application.Services()
	hex := services.Controller.Snapshot().DisplayHex
	method, err := services.Copier.Copy(hex)
	if err != nil {
		return fmt.Errorf("failed to copy %s: %w", hex, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Copied %s (%s)\n", hex, method)
	return nil
}
