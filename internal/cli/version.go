package cli

import (
	"fmt"

	"github.com/MirrorChyan/macdl/internal/logic/resolver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newVersionCmd(o *options) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the latest BuildVersion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := resolver.NewVersionResolver(o.conf, zap.L())
			defer res.Close()

			outcome := res.Resolve(cmd.Context())
			if short {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), outcome.Version)
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", outcome.Version, outcome.Source)
			return err
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "print only the version")
	return cmd
}
