package cli

import (
	"fmt"
	"io"

	"github.com/MirrorChyan/macdl/internal/logic/download"
	"github.com/MirrorChyan/macdl/internal/logic/resolver"
	"github.com/MirrorChyan/macdl/internal/wire"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var newOpener = func() download.Opener {
	return download.NewBrowserOpener()
}

func newDownloadCmd(o *options) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "download [version]",
		Short: "Open the download of a build in the system browser",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				ctx = cmd.Context()
				out = cmd.OutOrStdout()
				res = resolver.NewVersionResolver(o.conf, zap.L())
			)
			defer res.Close()

			opener := newOpener()
			if printOnly {
				opener = download.OpenerFunc(func(url string) error {
					_, err := fmt.Fprintln(out, url)
					return err
				})
			}

			initiator := wire.NewInitiator(o.conf, zap.L(), res, opener)
			defer initiator.Close()

			bar := newProgressBar(cmd.ErrOrStderr())
			initiator.OnChange(func(s download.Snapshot) {
				if s.Downloading {
					_ = bar.Set(int(s.Progress))
				}
			})

			var failure string
			initiator.OnError(func(msg string) {
				failure = msg
			})

			seq := initiator.Initiate(ctx, versionArg(ctx, res, args))
			if seq == nil {
				return errors.New("no version to download")
			}

			select {
			case <-seq.Done():
			case <-ctx.Done():
				return ctx.Err()
			}

			// the sink has fired whenever Err is set
			if seq.Err != nil {
				_ = bar.Clear()
				return errors.New(failure)
			}
			_ = bar.Finish()
			_, err := fmt.Fprintf(cmd.ErrOrStderr(), "Download started: %s\n", seq.URL)
			return err
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the URL instead of opening a browser")
	return cmd
}

func newProgressBar(w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(100,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Preparing download..."),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(w)
		}),
	)
}
