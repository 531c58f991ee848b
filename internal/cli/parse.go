package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layoutsmith/layoutsmith/pkg/example"
	"github.com/layoutsmith/layoutsmith/pkg/pipeline"
)

// parseCommand creates the parse command for inspecting parsed examples.
func (c *CLI) parseCommand() *cobra.Command {
	var (
		exampleText string
		file        string
	)

	cmd := &cobra.Command{
		Use:   "parse [example]",
		Short: "Parse a mockup example and print its structure as JSON",
		Long: `Parse a mockup example and print its structure as JSON.

Useful for debugging example syntax without generating code. The output
shows the parsed dimensions and elements exactly as the synthesizer
will see them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readExample(exampleText, file, args)
			if err != nil {
				return err
			}
			return c.runParse(cmd, input)
		},
	}

	cmd.Flags().StringVarP(&exampleText, "example", "e", "", "example text (alternative to positional argument)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the example from a file")

	return cmd
}

// exampleView is the JSON shape printed by the parse command.
type exampleView struct {
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	HStack   []string      `json:"hstack,omitempty"`
	Elements []elementView `json:"elements,omitempty"`
}

type elementView struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (c *CLI) runParse(cmd *cobra.Command, input string) error {
	runner := c.newRunner()

	examples, err := runner.Parse(cmd.Context(), pipeline.Options{Input: input})
	if err != nil {
		return err
	}

	views := make([]exampleView, 0, len(examples))
	for _, ex := range examples {
		views = append(views, viewOf(ex))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(views); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// viewOf flattens a parsed example into the printable JSON shape.
func viewOf(ex example.Example) exampleView {
	view := exampleView{
		Width:  ex.Width(),
		Height: ex.Height(),
	}

	if v, ok := ex.Elements.Get(example.KeyHStack); ok {
		if children, ok := v.(example.Mapping); ok {
			for _, child := range children {
				if text, ok := child.Val.(example.Text); ok {
					view.HStack = append(view.HStack, string(text))
				}
			}
		}
		return view
	}

	for _, pair := range ex.Elements {
		if text, ok := pair.Val.(example.Text); ok {
			view.Elements = append(view.Elements, elementView{
				Key:   pair.Key,
				Value: string(text),
			})
		}
	}
	return view
}
