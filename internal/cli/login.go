package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eventosia/client/internal/api"
)

func newLoginCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión en EventosIA",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			reader := bufio.NewReader(os.Stdin)

			prompt := "Email: "
			if last := a.session.State().LastEmail; last != "" {
				prompt = fmt.Sprintf("Email [%s]: ", last)
			}
			fmt.Print(prompt)
			email, _ := reader.ReadString('\n')
			email = strings.TrimSpace(email)
			if email == "" {
				email = a.session.State().LastEmail
			}

			fmt.Print("Contraseña: ")
			password, _ := reader.ReadString('\n')
			password = strings.TrimSpace(password)

			user, err := a.session.Login(cmd.Context(), a.client, email, password)
			if err != nil {
				return fmt.Errorf("no se pudo iniciar sesión: %s", api.ErrorMessage(err))
			}
			fmt.Printf("Hola, %s\n", user.Name)
			return nil
		},
	}
}
