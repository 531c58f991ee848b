package cli

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/layoutsmith/layoutsmith/pkg/pipeline"
)

// playCommand creates the play command, an interactive example editor.
func (c *CLI) playCommand() *cobra.Command {
	var exampleText string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Interactively edit an example and watch the generated code",
		Long: `Interactively edit an example and watch the generated code.

Opens a small terminal UI with an editable example line. The generated
SwiftUI code (or the parse error) updates on every keystroke.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newPlayModel(cmd.Context(), c.newRunner(), exampleText)
			program := tea.NewProgram(model)
			_, err := program.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&exampleText, "example", "e", `{(width:390,height:844):{title:"Hello",button:"Click"}}`, "initial example text")

	return cmd
}

// =============================================================================
// playModel - Live example editor
// =============================================================================

var (
	playInputStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	playCursorStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	playPaneStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// playModel is the bubbletea model for the live editor.
type playModel struct {
	ctx    context.Context
	runner *pipeline.Runner

	input  []rune
	cursor int

	code     string
	parseErr error
}

func newPlayModel(ctx context.Context, runner *pipeline.Runner, initial string) playModel {
	m := playModel{
		ctx:    ctx,
		runner: runner,
		input:  []rune(initial),
		cursor: len([]rune(initial)),
	}
	m.refresh()
	return m
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyLeft:
			if m.cursor > 0 {
				m.cursor--
			}
		case tea.KeyRight:
			if m.cursor < len(m.input) {
				m.cursor++
			}
		case tea.KeyHome, tea.KeyCtrlA:
			m.cursor = 0
		case tea.KeyEnd, tea.KeyCtrlE:
			m.cursor = len(m.input)
		case tea.KeyBackspace:
			if m.cursor > 0 {
				m.input = append(m.input[:m.cursor-1], m.input[m.cursor:]...)
				m.cursor--
				m.refresh()
			}
		case tea.KeyDelete:
			if m.cursor < len(m.input) {
				m.input = append(m.input[:m.cursor], m.input[m.cursor+1:]...)
				m.refresh()
			}
		case tea.KeyCtrlU:
			m.input = m.input[:0]
			m.cursor = 0
			m.refresh()
		case tea.KeySpace:
			m.insert(' ')
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.insert(r)
			}
		}
	}
	return m, nil
}

// insert places r at the cursor and re-runs the pipeline.
func (m *playModel) insert(r rune) {
	m.input = append(m.input[:m.cursor], append([]rune{r}, m.input[m.cursor:]...)...)
	m.cursor++
	m.refresh()
}

// refresh re-runs the pipeline against the current input.
func (m *playModel) refresh() {
	result, err := m.runner.Execute(m.ctx, pipeline.Options{Input: string(m.input)})
	if err != nil {
		m.parseErr = err
		return
	}
	m.parseErr = nil
	m.code = result.Code
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layoutsmith Playground"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("type to edit  ←/→ move  ctrl+u clear  esc quit"))
	b.WriteString("\n\n")

	b.WriteString(m.inputLine())
	b.WriteString("\n\n")

	if m.parseErr != nil {
		b.WriteString(playPaneStyle.Render(StyleError.Render(m.parseErr.Error())))
	} else {
		b.WriteString(playPaneStyle.Render(strings.TrimRight(m.code, "\n")))
	}
	b.WriteString("\n")

	return b.String()
}

// inputLine renders the editable example with a block cursor.
func (m playModel) inputLine() string {
	before := string(m.input[:m.cursor])
	if m.cursor >= len(m.input) {
		return playInputStyle.Render(before) + playCursorStyle.Render("█")
	}
	at := string(m.input[m.cursor])
	after := string(m.input[m.cursor+1:])
	return playInputStyle.Render(before) + playCursorStyle.Render(at) + playInputStyle.Render(after)
}
