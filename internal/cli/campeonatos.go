package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"femee-arena-client/internal/model"
	"femee-arena-client/pkg/apierror"
)

func newCampeonatosCommand(getApp func() *App) *cobra.Command {
	var ativos bool

	cmd := &cobra.Command{
		Use:   "campeonatos",
		Short: "Lista os campeonatos da federação",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if _, err := app.Visit("/campeonatos"); err != nil {
				return err
			}

			var (
				list []model.CampeonatoResponse
				err  error
			)
			if ativos {
				list, err = app.Campeonatos.ListAtivos(cmd.Context())
			} else {
				list, err = app.Campeonatos.List(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("falha ao listar campeonatos: %s", apierror.UserMessage(err))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCAMPEONATO\tSTATUS\tVAGAS\tPREMIAÇÃO")
			for _, c := range list {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d/%d\tR$ %.0f\n",
					c.ID, c.Titulo, c.Status, c.NumeroInscritos, c.NumeroVagas, c.Premiacao)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&ativos, "ativos", false, "apenas campeonatos em andamento ou com inscrições abertas")
	return cmd
}

func newNoticiasCommand(getApp func() *App) *cobra.Command {
	var (
		page      int
		pageSize  int
		categoria string
	)

	cmd := &cobra.Command{
		Use:   "noticias",
		Short: "Lista as notícias da federação",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if _, err := app.Visit("/"); err != nil {
				return err
			}

			params := model.PaginationParams{Page: page, PageSize: pageSize}
			var (
				result model.PagedResult[model.NoticiaResponse]
				err    error
			)
			if categoria != "" {
				result, err = app.Noticias.ListByCategoria(cmd.Context(), categoria, params)
			} else {
				result, err = app.Noticias.List(cmd.Context(), params)
			}
			if err != nil {
				return fmt.Errorf("falha ao listar notícias: %s", apierror.UserMessage(err))
			}

			out := cmd.OutOrStdout()
			for _, n := range result.Items {
				fmt.Fprintf(out, "[%s] %s\n", n.Categoria, n.Titulo)
				fmt.Fprintf(out, "    %s | %s\n", n.DataPublicacao.Format("02/01/2006"), n.Resumo)
			}
			fmt.Fprintf(out, "página %d de %d (%d notícias)\n", result.Page, result.TotalPages, result.TotalCount)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "página")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "itens por página")
	cmd.Flags().StringVar(&categoria, "categoria", "", "filtra por categoria")
	return cmd
}

func newHomeCommand(getApp func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Mostra a página inicial: notícias recentes e ranking",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if _, err := app.Visit("/"); err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			noticias, err := app.Noticias.Recentes(cmd.Context(), 3)
			if err != nil {
				return fmt.Errorf("falha ao carregar notícias: %s", apierror.UserMessage(err))
			}
			fmt.Fprintln(out, "== Últimas notícias ==")
			for _, n := range noticias {
				fmt.Fprintf(out, "  %s\n", n.Titulo)
			}

			ranking, err := app.Times.Ranking(cmd.Context(), 5)
			if err != nil {
				return fmt.Errorf("falha ao carregar ranking: %s", apierror.UserMessage(err))
			}
			fmt.Fprintln(out, "== Top 5 ==")
			for _, t := range ranking {
				fmt.Fprintf(out, "  %d. %s (%d pts)\n", t.PosicaoRanking, t.Nome, t.Pontos)
			}
			return nil
		},
	}
}
