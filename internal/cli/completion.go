package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for layoutsmith and print it to stdout.

Pick the variant for your shell and either source it directly or install
it where your shell discovers completions:

Bash:
  $ source <(layoutsmith completion bash)
  # or install persistently (Linux):
  $ layoutsmith completion bash > /etc/bash_completion.d/layoutsmith

Zsh:
  $ layoutsmith completion zsh > "${fpath[1]}/_layoutsmith"
  # requires compinit; add "autoload -U compinit; compinit" to ~/.zshrc
  # if completion is not already enabled, then open a new shell.

Fish:
  $ layoutsmith completion fish | source
  # or install persistently:
  $ layoutsmith completion fish > ~/.config/fish/completions/layoutsmith.fish

PowerShell:
  PS> layoutsmith completion powershell | Out-String | Invoke-Expression
  # to persist, write the output to a .ps1 file sourced from your profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
