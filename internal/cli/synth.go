package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layoutsmith/layoutsmith/pkg/cache"
	"github.com/layoutsmith/layoutsmith/pkg/errors"
	"github.com/layoutsmith/layoutsmith/pkg/pipeline"
)

var errMissingExample = errors.New(errors.ErrCodeInvalidInput,
	"no example provided: pass one as an argument, or use --example or --file")

// synthCommand creates the synth command, the main entry point of the tool.
func (c *CLI) synthCommand() *cobra.Command {
	var (
		example string
		file    string
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "synth [example]",
		Short: "Synthesize SwiftUI code from a mockup example",
		Long: `Synthesize SwiftUI code from a mockup example.

The example pairs frame dimensions with labeled elements:

  layoutsmith synth '{(width:390,height:844):{title:"Hello",button:"Click"}}'

Horizontal layouts list quoted children after an HStack marker:

  layoutsmith synth '{(width:390,height:844):HStack:{"Left","Right"}}'

The generated SwiftUI source is printed to stdout, or written to a
file with --output. Results are cached locally for repeated inputs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readExample(example, file, args)
			if err != nil {
				return err
			}
			return c.runSynth(cmd.Context(), input, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&example, "example", "e", "", "example text (alternative to positional argument)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the example from a file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write generated code to a file instead of stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runSynth executes the full pipeline and emits the generated code.
func (c *CLI) runSynth(ctx context.Context, input, output string, noCache bool) error {
	store, err := newCache(noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	prog := newProgress(c.Logger)

	code, cached, stats, err := c.synthesize(ctx, store, input)
	if err != nil {
		return err
	}
	prog.done("Synthesized SwiftUI layout")

	fmt.Print(code)
	if len(code) > 0 && code[len(code)-1] != '\n' {
		fmt.Println()
	}
	if output == "" {
		return nil
	}

	if err := os.WriteFile(output, []byte(code), 0644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("SwiftUI code saved")
	printFile(output)
	printStats(stats.width, stats.height, stats.elements, cached)
	printNewline()
	printNextStep("Inspect the layout tree", "layoutsmith inspect -f <example-file>")

	return nil
}

type synthStats struct {
	width    int
	height   int
	elements int
}

// synthesize returns the generated code for input, consulting the cache first.
func (c *CLI) synthesize(ctx context.Context, store cache.Cache, input string) (string, bool, synthStats, error) {
	runner := c.newRunner()
	key := cache.CodeKey(input)

	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		examples, perr := runner.Parse(ctx, pipeline.Options{Input: input})
		if perr != nil {
			return "", false, synthStats{}, perr
		}
		stats := synthStats{
			width:    examples[0].Width(),
			height:   examples[0].Height(),
			elements: len(examples[0].Elements),
		}
		c.Logger.Debug("cache hit", "key", key)
		return string(data), true, stats, nil
	}

	result, err := runner.Execute(ctx, pipeline.Options{Input: input})
	if err != nil {
		return "", false, synthStats{}, err
	}

	if err := store.Set(ctx, key, []byte(result.Code), cache.TTLCode); err != nil {
		c.Logger.Warn("cache write failed", "error", err)
	}

	stats := synthStats{
		width:    result.Examples[0].Width(),
		height:   result.Examples[0].Height(),
		elements: len(result.Examples[0].Elements),
	}
	return result.Code, false, stats, nil
}
