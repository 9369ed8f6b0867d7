package cli

import (
	"errors"
	"os"

	"designfoli-web/internal/auth"
	"github.com/spf13/cobra"
)

func (a *app) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and cache the session",
		Long: `Sign in with your DesignFoli email and password.

The password may also come from DESIGNFOLI_PASSWORD.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.Identity == nil {
				return errors.New("sign-in is not configured: set SUPABASE_URL and SUPABASE_PUBLISHABLE_KEY")
			}
			if password == "" {
				password = os.Getenv("DESIGNFOLI_PASSWORD")
			}
			if email == "" || password == "" {
				return errors.New("--email and --password are required")
			}

			s := &auth.Session{}
			if err := s.SignIn(cmd.Context(), a.Identity, email, password); err != nil {
				return err
			}
			if err := a.Sessions.Save(s); err != nil {
				return err
			}
			a.printf("Signed in as %s\n", s.User().Email)
			a.notePendingSignup(cmd, s)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the cached session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Sessions.Clear(); err != nil {
				return err
			}
			a.printf("Signed out\n")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, stop, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			defer stop()
			u := s.User()
			a.printf("User:    %s\n", u.ID)
			a.printf("Email:   %s\n", u.Email)
			if exp := s.ExpiresAt(); !exp.IsZero() {
				a.printf("Expires: %s\n", exp.Local().Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}
