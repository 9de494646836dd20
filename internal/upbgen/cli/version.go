package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/upbgen/pkg/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.jsonOutput {
				return a.printJSON(version.GetBuildInfo())
			}
			_, err := fmt.Fprint(a.stdout, version.GetLongVersion())
			return err
		},
	}
}
