package cli

import (
	"context"
	"fmt"

	"github.com/MirrorChyan/macdl/internal/logic/dispense"
	"github.com/MirrorChyan/macdl/internal/logic/resolver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newURLCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "url [version]",
		Short: "Print the download URL of a build",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := resolver.NewVersionResolver(o.conf, zap.L())
			defer res.Close()

			url, err := dispense.NewURLBuilder(o.conf).Build(versionArg(cmd.Context(), res, args))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		},
	}
}

// versionArg returns the explicit version argument or resolves the latest one.
func versionArg(ctx context.Context, res *resolver.VersionResolver, args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return res.Resolve(ctx).Version
}
