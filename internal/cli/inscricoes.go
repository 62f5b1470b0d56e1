package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"femee-arena-client/internal/model"
	"femee-arena-client/pkg/apierror"
)

func newInscreverCommand(getApp func() *App) *cobra.Command {
	var observacoes string

	cmd := &cobra.Command{
		Use:   "inscrever <campeonato-id> <time-id>",
		Short: "Inscreve um time em um campeonato",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			campeonatoID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("campeonato-id inválido: %s", args[0])
			}
			timeID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("time-id inválido: %s", args[1])
			}

			if _, err := app.Visit("/campeonatos"); err != nil {
				return err
			}

			inscricao, err := app.Inscricoes.Create(cmd.Context(), model.CreateInscricaoCampeonatoRequest{
				CampeonatoID: campeonatoID,
				TimeID:       timeID,
				Observacoes:  observacoes,
			})
			if err != nil {
				return fmt.Errorf("falha na inscrição: %s", apierror.UserMessage(err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Inscrição #%d criada: %s em %s (%s)\n",
				inscricao.ID, inscricao.TimeNome, inscricao.CampeonatoTitulo, inscricao.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&observacoes, "obs", "", "observações da inscrição")
	return cmd
}

func newInscricoesCommand(getApp func() *App) *cobra.Command {
	var campeonatoID, timeID int64

	cmd := &cobra.Command{
		Use:   "inscricoes",
		Short: "Lista inscrições de um campeonato ou de um time",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if _, err := app.Visit("/campeonatos"); err != nil {
				return err
			}

			var (
				list []model.InscricaoCampeonatoResponse
				err  error
			)
			switch {
			case campeonatoID > 0:
				list, err = app.Inscricoes.ListByCampeonato(cmd.Context(), campeonatoID)
			case timeID > 0:
				list, err = app.Inscricoes.ListByTime(cmd.Context(), timeID)
			default:
				return fmt.Errorf("informe --campeonato ou --time")
			}
			if err != nil {
				return fmt.Errorf("falha ao listar inscrições: %s", apierror.UserMessage(err))
			}

			printInscricoes(cmd, list)
			return nil
		},
	}

	cmd.Flags().Int64Var(&campeonatoID, "campeonato", 0, "inscrições do campeonato")
	cmd.Flags().Int64Var(&timeID, "time", 0, "inscrições do time")
	return cmd
}

func newAdminCommand(getApp func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Painel administrativo: inscrições pendentes",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if _, err := app.Visit("/admin"); err != nil {
				return err
			}

			pendentes, err := app.Inscricoes.ListByStatus(cmd.Context(), model.InscricaoPendente)
			if err != nil {
				return fmt.Errorf("falha ao listar pendências: %s", apierror.UserMessage(err))
			}

			printInscricoes(cmd, pendentes)
			return nil
		},
	}

	cmd.AddCommand(newAdminReviewCommand(getApp, "aprovar", "Aprova uma inscrição pendente"))
	cmd.AddCommand(newAdminReviewCommand(getApp, "rejeitar", "Rejeita uma inscrição pendente"))
	return cmd
}

func newAdminReviewCommand(getApp func() *App, action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <inscricao-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("inscricao-id inválido: %s", args[0])
			}

			if _, err := app.Visit("/admin"); err != nil {
				return err
			}

			var inscricao model.InscricaoCampeonatoResponse
			if action == "aprovar" {
				inscricao, err = app.Inscricoes.Approve(cmd.Context(), id)
			} else {
				inscricao, err = app.Inscricoes.Reject(cmd.Context(), id)
			}
			if err != nil {
				return fmt.Errorf("falha ao %s inscrição: %s", action, apierror.UserMessage(err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Inscrição #%d: %s\n", inscricao.ID, inscricao.Status)
			return nil
		},
	}
}

func printInscricoes(cmd *cobra.Command, list []model.InscricaoCampeonatoResponse) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tCAMPEONATO\tSTATUS\tDATA")
	for _, i := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i.ID, i.TimeNome, i.CampeonatoTitulo, i.Status, i.DataInscricao.Format("02/01/2006"))
	}
	_ = w.Flush()
}
