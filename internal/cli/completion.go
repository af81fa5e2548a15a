package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/errors"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for chartgeom.

To load completions:

Bash:
  $ source <(chartgeom completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ chartgeom completion bash > /etc/bash_completion.d/chartgeom
  # macOS:
  $ chartgeom completion bash > $(brew --prefix)/etc/bash_completion.d/chartgeom

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ chartgeom completion zsh > "${fpath[1]}/_chartgeom"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ chartgeom completion fish | source

  # To load completions for each session, execute once:
  $ chartgeom completion fish > ~/.config/fish/completions/chartgeom.fish

PowerShell:
  PS> chartgeom completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> chartgeom completion powershell > chartgeom.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(c.output())
			case "zsh":
				return cmd.Root().GenZshCompletion(c.output())
			case "fish":
				return cmd.Root().GenFishCompletion(c.output(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(c.output())
			}
			return nil
		},
	}

	return cmd
}

// completeDocuments limits file completion to chart document extensions.
func completeDocuments(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	exts := make([]string, 0, len(errors.DocumentExtensions))
	for ext := range errors.DocumentExtensions {
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}
	return exts, cobra.ShellCompDirectiveFilterFileExt
}

// completeKinds offers the chart kind names.
func completeKinds(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	kinds := make([]string, len(chart.Kinds))
	for i, k := range chart.Kinds {
		kinds[i] = string(k)
	}
	return kinds, cobra.ShellCompDirectiveNoFileComp
}
