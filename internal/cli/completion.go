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
		Long: `Generate shell completion scripts for blockdraw.

To load completions:

Bash:
  $ source <(blockdraw completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ blockdraw completion bash > /etc/bash_completion.d/blockdraw
  # macOS:
  $ blockdraw completion bash > $(brew --prefix)/etc/bash_completion.d/blockdraw

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ blockdraw completion zsh > "${fpath[1]}/_blockdraw"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ blockdraw completion fish | source

  # To load completions for each session, execute once:
  $ blockdraw completion fish > ~/.config/fish/completions/blockdraw.fish

PowerShell:
  PS> blockdraw completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> blockdraw completion powershell > blockdraw.ps1
  # and source this file from your PowerShell profile.
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
