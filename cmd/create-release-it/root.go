package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/conn-castle/create-release-it/internal/config"
	"github.com/conn-castle/create-release-it/internal/installer"
	"github.com/conn-castle/create-release-it/internal/logging"
	"github.com/conn-castle/create-release-it/internal/messages"
	"github.com/conn-castle/create-release-it/internal/pkgmanager"
	"github.com/conn-castle/create-release-it/internal/setup"
	"github.com/conn-castle/create-release-it/internal/terminal"
	"github.com/conn-castle/create-release-it/internal/wizard"
)

var (
	getwd         = os.Getwd
	lookupEnv     = os.LookupEnv
	isInteractive = terminal.IsInteractive
	runSetup      = setup.Run
	newFs         = afero.NewOsFs
	newUI         = func() wizard.UI { return wizard.NewHuhUI() }
	loadConfig    = func() (*config.Config, error) { return config.Load(config.RealSystem{}) }
)

func newRootCmd() *cobra.Command {
	var assumeYes bool
	var dryRun bool
	var verbose bool

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := getwd()
			if err != nil {
				return fmt.Errorf(messages.CLIGetwdFailedFmt, err)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := logging.New(logging.Options{
				Level:   cfg.Log.Level,
				Output:  cmd.ErrOrStderr(),
				Verbose: verbose,
			})
			userAgent, _ := lookupEnv(pkgmanager.UserAgentEnv)
			streams := installer.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}

			_, err = runSetup(cmd.Context(), setup.Options{
				Dir:         dir,
				Fs:          newFs(),
				Config:      cfg,
				UI:          newUI(),
				Interactive: isInteractive(),
				AssumeYes:   assumeYes,
				DryRun:      dryRun,
				UserAgent:   userAgent,
				Out:         cmd.OutOrStdout(),
				Err:         cmd.ErrOrStderr(),
				Logger:      log,
				Install: func(ctx context.Context, dir string, command pkgmanager.Command) error {
					return installer.Run(ctx, dir, command, streams)
				},
			})
			return err
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, messages.RootFlagYes)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.RootFlagDryRun)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, messages.RootFlagVerbose)

	return cmd
}
