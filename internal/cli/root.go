package cli

import (
	"os"

	"github.com/MirrorChyan/macdl/internal/config"
	"github.com/MirrorChyan/macdl/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	configFile string
	logLevel   string

	conf *config.Config
}

func NewRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:           "macdl",
		Short:         "Resolve the latest macOS client build and download it",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.New(o.configFile)
			if err != nil {
				return err
			}
			if o.logLevel != "" {
				conf.Log.Level = o.logLevel
			}
			o.conf = conf

			// command output goes to stdout, so only serve logs there
			sink := os.Stderr
			if cmd.Name() == serveCmdName {
				sink = os.Stdout
			}
			zap.ReplaceGlobals(logger.NewWithSink(conf, sink))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&o.configFile, "config", "c", "", "config file (default: ./config.yaml or ./config/config.yaml)")
	flags.StringVar(&o.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newServeCmd(o),
		newVersionCmd(o),
		newURLCmd(o),
		newDownloadCmd(o),
	)
	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		return 1
	}
	return 0
}
