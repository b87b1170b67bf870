// Package cmd provides the root command and CLI setup for duplix.
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/bryanrm/duplix-duplicate-file-handler/internal/adapter"
	"github.com/bryanrm/duplix-duplicate-file-handler/internal/config"
	"github.com/bryanrm/duplix-duplicate-file-handler/internal/controller"
	"github.com/bryanrm/duplix-duplicate-file-handler/internal/domain"
	"github.com/bryanrm/duplix-duplicate-file-handler/internal/logging"
	m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// sourceFS is where the source and destination directories are validated.
var sourceFS = afero.NewOsFs()

// newWorkflow wires the production adapters for cfg.
var newWorkflow = func(cmd *cobra.Command, cfg m.Config) (domain.Workflow, error) {
	fsAdapter, err := adapter.NewLocalSourceFSAdapter(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(fsAdapter, adapter.NewReportStore(), ui, logging.GetLogger("workflow")), nil
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var configFlag string

	cmd := &cobra.Command{
		Use:   "duplix <source>",
		Short: "Find duplicate files by content",
		Long: `Duplix walks a directory tree, fingerprints every file with a SHA-256
digest and lists the files sharing the same content.

Duplicates can be reported (default), moved into a destination directory
or deleted, keeping the last copy found in each set. The report can also be
saved to a file:
  duplix ~/Pictures                 report duplicates
  duplix ~/Pictures -m --dest out   move every duplicate into ./out
  duplix ~/Pictures -d -s           delete duplicates and save the report`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(configFlag, cmd.Flags())
			if err != nil {
				return err
			}

			logging.Setup(cmd.ErrOrStderr(), settings.Verbose)

			cfg, err := config.Resolve(sourceFS, args[0], settings)
			if err != nil {
				return err
			}

			workflow, err := newWorkflow(cmd, cfg)
			if err != nil {
				return err
			}

			_, err = workflow.Scan(cmd.Context(), cfg)

			return err
		},
	}

	cmd.Flags().BoolP("move", "m", false, "move every duplicate into the destination directory")
	cmd.Flags().String("dest", "", "destination directory for --move (default ./"+config.DefaultDestDir+")")
	cmd.Flags().BoolP("delete", "d", false, "delete duplicates, keeping the last copy found in each set")
	cmd.Flags().BoolP("save", "s", false, "save the report to a file")
	cmd.Flags().StringP("export-file", "o", "", "report file for --save (default <source>/duplix-<timestamp>.txt)")
	cmd.Flags().BoolP("no-recursive", "r", false, "only scan the top level of the source directory")
	cmd.Flags().String("algorithm", string(m.AlgorithmSHA256), "digest algorithm: sha256 or sha512")
	cmd.Flags().CountP("verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")
	cmd.Flags().StringVar(&configFlag, "config", "", "config file (default ./duplix.yaml or $XDG_CONFIG_HOME/duplix/duplix.yaml)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
