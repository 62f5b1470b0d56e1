package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"femee-arena-client/internal/model"
	"femee-arena-client/pkg/apierror"
)

func newTimesCommand(getApp func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "times [slug]",
		Short: "Lista os times da federação, ou mostra um time pelo slug",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if len(args) == 1 {
				return showTimeDetail(cmd, app, args[0])
			}

			if _, err := app.Visit("/times"); err != nil {
				return err
			}

			times, err := app.Times.List(cmd.Context(), model.PaginationParams{})
			if err != nil {
				return fmt.Errorf("falha ao listar times: %s", apierror.UserMessage(err))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "POS\tTIME\tV\tD\tE\tPONTOS")
			for _, t := range times {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\n",
					t.PosicaoRanking, t.Nome, t.Vitorias, t.Derrotas, t.Empates, t.Pontos)
			}
			return w.Flush()
		},
	}
	return cmd
}

func showTimeDetail(cmd *cobra.Command, app *App, slug string) error {
	if _, err := app.Visit("/times/" + slug); err != nil {
		return err
	}

	t, err := app.Times.GetBySlug(cmd.Context(), slug)
	if err != nil {
		return fmt.Errorf("falha ao carregar time: %s", apierror.UserMessage(err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (#%d no ranking)\n", t.Nome, t.PosicaoRanking)
	if t.Descricao != "" {
		fmt.Fprintln(out, t.Descricao)
	}
	fmt.Fprintf(out, "Campanha: %dV %dD %dE, %d pontos\n", t.Vitorias, t.Derrotas, t.Empates, t.Pontos)
	for _, j := range t.Jogadores {
		fmt.Fprintf(out, "  %s (%s)\n", j.Nickname, j.Nome)
	}
	return nil
}

func newRankingCommand(getApp func() *App) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Mostra o ranking de times",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if _, err := app.Visit("/ranking"); err != nil {
				return err
			}

			times, err := app.Times.Ranking(cmd.Context(), top)
			if err != nil {
				return fmt.Errorf("falha ao carregar ranking: %s", apierror.UserMessage(err))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "POS\t\tTIME\tPONTOS")
			for _, t := range times {
				// The backend reports the previous rank equal to the
				// current one, so the trend indicator is always neutral.
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\n",
					t.PosicaoRanking, trendArrow(t.RankingTrend(t.PosicaoRanking)), t.Nome, t.Pontos)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "limita o ranking aos N primeiros")
	return cmd
}

func trendArrow(trend int) string {
	switch {
	case trend > 0:
		return "↑"
	case trend < 0:
		return "↓"
	default:
		return "→"
	}
}
