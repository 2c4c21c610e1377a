package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of copycode",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.out, "copycode %s\n", Version)
		},
	}
}
