package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"femee-arena-client/internal/model"
	"femee-arena-client/pkg/apierror"
)

func newLoginCommand(getApp func() *App) *cobra.Command {
	var email, senha string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Autentica na plataforma",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if _, err := app.Visit("/login"); err != nil {
				return err
			}

			err := app.Manager.Login(cmd.Context(), model.LoginRequest{Email: email, Senha: senha})
			if err != nil {
				return fmt.Errorf("falha no login: %s", apierror.UserMessage(err))
			}

			target := app.Navigator.ConsumeRemembered()
			user := app.Manager.CurrentUser()
			fmt.Fprintf(cmd.OutOrStdout(), "Bem-vinda, %s (%s)\n", user.Nome, user.TipoUsuario)
			fmt.Fprintf(cmd.OutOrStdout(), "Navegando para %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email da conta")
	cmd.Flags().StringVar(&senha, "senha", "", "senha da conta")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("senha")

	return cmd
}

func newRegistroCommand(getApp func() *App) *cobra.Command {
	var req model.RegisterRequest
	var tipo int

	cmd := &cobra.Command{
		Use:   "registro",
		Short: "Cria uma conta na plataforma",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if _, err := app.Visit("/registro"); err != nil {
				return err
			}

			req.TipoUsuario = model.TipoUsuario(tipo)
			if err := app.Manager.Register(cmd.Context(), req); err != nil {
				return fmt.Errorf("falha no cadastro: %s", apierror.UserMessage(err))
			}

			target := app.Navigator.ConsumeRemembered()
			fmt.Fprintf(cmd.OutOrStdout(), "Conta criada para %s\n", req.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "Navegando para %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Nome, "nome", "", "nome completo")
	cmd.Flags().StringVar(&req.Email, "email", "", "email da conta")
	cmd.Flags().StringVar(&req.Senha, "senha", "", "senha")
	cmd.Flags().StringVar(&req.ConfirmacaoSenha, "confirmacao", "", "confirmação da senha")
	cmd.Flags().StringVar(&req.Telefone, "telefone", "", "telefone (opcional)")
	cmd.Flags().IntVar(&tipo, "tipo", 0, "tipo de usuário (2=capitã, 3=jogadora)")

	return cmd
}

func newLogoutCommand(getApp func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Encerra a sessão atual",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()
			app.Manager.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Sessão encerrada")
			return nil
		},
	}
}

func newPerfilCommand(getApp func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "perfil",
		Short: "Mostra o perfil da usuária autenticada",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if _, err := app.Visit("/perfil"); err != nil {
				return err
			}

			user, err := app.Me.Me(cmd.Context())
			if err != nil {
				return fmt.Errorf("falha ao carregar perfil: %s", apierror.UserMessage(err))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Nome:  %s\n", user.Nome)
			fmt.Fprintf(out, "Email: %s\n", user.Email)
			fmt.Fprintf(out, "Tipo:  %s\n", user.TipoUsuario)
			return nil
		},
	}
}
