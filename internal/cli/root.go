package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the femee CLI.
func NewRootCommand() *cobra.Command {
	var app *App

	cmd := &cobra.Command{
		Use:           "femee",
		Short:         "FEMEE Arena - cliente da federação de esports",
		Long:          "Terminal client for the FEMEE esports federation: news, teams, rankings, championships and registrations.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			app, err = NewApp()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				app.Close()
			}
		},
	}

	getApp := func() *App { return app }

	cmd.AddCommand(newLoginCommand(getApp))
	cmd.AddCommand(newRegistroCommand(getApp))
	cmd.AddCommand(newLogoutCommand(getApp))
	cmd.AddCommand(newPerfilCommand(getApp))
	cmd.AddCommand(newHomeCommand(getApp))
	cmd.AddCommand(newTimesCommand(getApp))
	cmd.AddCommand(newRankingCommand(getApp))
	cmd.AddCommand(newCampeonatosCommand(getApp))
	cmd.AddCommand(newNoticiasCommand(getApp))
	cmd.AddCommand(newInscreverCommand(getApp))
	cmd.AddCommand(newInscricoesCommand(getApp))
	cmd.AddCommand(newAdminCommand(getApp))

	return cmd
}
