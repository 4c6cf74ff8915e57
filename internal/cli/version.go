package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"host-insight/internal/api"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Println(api.Version)
		},
	}
}
