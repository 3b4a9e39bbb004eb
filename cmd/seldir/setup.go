package main

import (
	"github.com/Fabian1409/seldir/internal/shellsetup"
	"github.com/spf13/cobra"
)

var parentShellDetector = shellsetup.DetectParentShellName

// NewSetupCmd prints the shell function that changes into the picked
// directory.
func NewSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup [shell]",
		Short: "Print shell integration (bash, zsh, fish, pwsh, tcsh, cmd)",
		Long: `Print a 'seldir' shell function that runs the browser and changes into
the directory you pick. Add it to your shell startup file, for example:

    eval "$(seldir setup bash)"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) == 1 {
				shell = args[0]
			}
			return shellsetup.Print(cmd.OutOrStdout(), shell, shellsetup.Config{DetectParent: parentShellDetector})
		},
	}
}
