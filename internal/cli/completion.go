package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand generates shell completion scripts for the root command.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for your shell and write it to stdout.

Load it for the current session:

  $ source <(oscviz completion bash)
  $ oscviz completion fish | source
  PS> oscviz completion powershell | Out-String | Invoke-Expression

Or install it permanently, for example:

  $ oscviz completion bash > /etc/bash_completion.d/oscviz
  $ oscviz completion zsh > "${fpath[1]}/_oscviz"
  $ oscviz completion fish > ~/.config/fish/completions/oscviz.fish

Zsh needs compinit enabled (add "autoload -U compinit; compinit" to
~/.zshrc once) and a fresh shell after installing.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(os.Stdout)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
