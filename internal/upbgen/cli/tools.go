package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/upbgen/pkg/toolchain"
)

func newToolsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Show the bundled protoc and plugin paths for this platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			host := a.platform.HostInfo()
			resolver := toolchain.NewResolver(a.platform, a.config.Tools.Dir)

			dir, supported := toolchain.PlatformDir(host)
			protoc, _ := resolver.ProtocPath()
			plugin, _ := resolver.MinitablePluginPath()

			if a.jsonOutput {
				return a.printJSON(map[string]interface{}{
					"host":             host.String(),
					"supported":        supported,
					"platform_dir":     dir,
					"root":             resolver.Root(),
					"protoc":           protoc,
					"minitable_plugin": plugin,
				})
			}

			fmt.Fprintf(a.stdout, "host:             %s\n", host)
			if !supported {
				fmt.Fprintf(a.stdout, "bundled tools:    unsupported (use --protoc and --minitable-plugin)\n")
				return nil
			}
			fmt.Fprintf(a.stdout, "platform dir:     %s\n", dir)
			fmt.Fprintf(a.stdout, "protoc:           %s\n", protoc)
			fmt.Fprintf(a.stdout, "minitable plugin: %s\n", plugin)
			return nil
		},
	}
}
