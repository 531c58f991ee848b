package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/layoutsmith/layoutsmith/pkg/pipeline"
	"github.com/layoutsmith/layoutsmith/pkg/render"
)

// Inspect output formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// inspectCommand creates the inspect command for visualizing the layout tree.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		exampleText string
		file        string
		output      string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "inspect [example]",
		Short: "Visualize the synthesized layout tree",
		Long: `Visualize the synthesized layout tree.

Instead of emitting SwiftUI code, inspect renders the intermediate layout
tree as a Graphviz diagram. DOT output goes to stdout by default; svg and
png require --output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readExample(exampleText, file, args)
			if err != nil {
				return err
			}
			format = strings.ToLower(format)
			switch format {
			case formatDOT, formatSVG, formatPNG:
			default:
				return fmt.Errorf("unsupported format %q (must be dot, svg, or png)", format)
			}
			if format != formatDOT && output == "" {
				return fmt.Errorf("format %q requires --output", format)
			}
			return c.runInspect(cmd.Context(), input, output, format)
		},
	}

	cmd.Flags().StringVarP(&exampleText, "example", "e", "", "example text (alternative to positional argument)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the example from a file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to stdout for dot)")
	cmd.Flags().StringVar(&format, "format", formatDOT, "output format: dot (default), svg, png")

	return cmd
}

// runInspect synthesizes the layout tree and renders it in the chosen format.
func (c *CLI) runInspect(ctx context.Context, input, output, format string) error {
	runner := c.newRunner()

	examples, err := runner.Parse(ctx, pipeline.Options{Input: input})
	if err != nil {
		return err
	}
	tree, err := runner.Synthesize(ctx, examples, pipeline.Options{Input: input})
	if err != nil {
		return err
	}

	dot := render.ToDOT(tree)

	if format == formatDOT {
		if output == "" {
			fmt.Print(dot)
			return nil
		}
		if err := os.WriteFile(output, []byte(dot), 0644); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}
		printSuccess("Layout tree saved")
		printFile(output)
		return nil
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()

	var data []byte
	switch format {
	case formatSVG:
		data, err = render.RenderSVG(ctx, dot)
	case formatPNG:
		data, err = render.RenderPNG(ctx, dot)
	}
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render %s: %w", format, err)
	}
	spinner.Stop()

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Layout tree saved")
	printFile(output)

	return nil
}
