package cli

import (
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X github.com/Jumpaku/go-driveops/internal/cli.version=...".
var version = "dev"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("driveops version %s\n", version)
		},
	}
}
