package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/c9s/outliers/pkg/version"
)

func init() {
	RootCmd.AddCommand(VersionCmd)
}

var VersionCmd = &cobra.Command{
	Use:          "version",
	Short:        "show version name",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s/%s\n", version.Version, runtime.GOOS, runtime.GOARCH)
	},
}
