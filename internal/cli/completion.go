package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// newCompletionCmd creates the completion command for generating shell completions.
func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for svg2pdf.

To load completions:

Bash:
  $ source <(svg2pdf completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ svg2pdf completion bash > /etc/bash_completion.d/svg2pdf
  # macOS:
  $ svg2pdf completion bash > $(brew --prefix)/etc/bash_completion.d/svg2pdf

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ svg2pdf completion zsh > "${fpath[1]}/_svg2pdf"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ svg2pdf completion fish | source

  # To load completions for each session, execute once:
  $ svg2pdf completion fish > ~/.config/fish/completions/svg2pdf.fish

PowerShell:
  PS> svg2pdf completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> svg2pdf completion powershell > svg2pdf.ps1
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
