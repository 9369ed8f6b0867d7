package cli

import (
	"errors"
	"os"
	"strings"

	"designfoli-web/internal/auth"
	"designfoli-web/internal/errorz"
	"designfoli-web/internal/models"
	"github.com/spf13/cobra"
)

// notePendingSignup remembers a signed-in identity that has no DesignFoli
// profile yet, so register can finish the sign-up.
func (a *app) notePendingSignup(cmd *cobra.Command, s *auth.Session) {
	_, err := a.Client.GetProfile(cmd.Context(), s.Token())
	if err == nil || !errors.Is(err, errorz.ErrNotFound) {
		return
	}
	email := s.User().Email
	name, _, _ := strings.Cut(email, "@")
	if err := a.Sessions.SavePending(auth.PendingSignup{Email: email, DisplayName: name}); err != nil {
		return
	}
	a.printf("No portfolio yet. Finish sign-up with 'designfoli register --username <name>'\n")
}

func (a *app) signupCmd() *cobra.Command {
	var req models.EmailRegisterRequest
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				req.Password = os.Getenv("DESIGNFOLI_PASSWORD")
			}
			if req.Email == "" || req.Password == "" || req.Username == "" {
				return errors.New("--email, --password and --username are required")
			}
			if err := a.Client.EmailRegister(cmd.Context(), req); err != nil {
				return err
			}
			a.printf("Account created for %s\n", req.Email)
			if a.Identity == nil {
				return nil
			}
			s := &auth.Session{}
			if err := s.SignIn(cmd.Context(), a.Identity, req.Email, req.Password); err != nil {
				return err
			}
			return a.Sessions.Save(s)
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Full name")
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "Account password")
	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "Portfolio username")
	cmd.Flags().StringVar(&req.Title, "title", "", "Job title")
	cmd.Flags().StringVar(&req.CompanyName, "company", "", "Company")
	cmd.Flags().StringVar(&req.Introduction, "intro", "", "Short introduction")
	return cmd
}

func (a *app) registerCmd() *cobra.Command {
	var req models.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Finish sign-up for an identity that has no portfolio yet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Username == "" {
				return errors.New("--username is required")
			}
			s, stop, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			defer stop()
			if err := a.Client.Register(cmd.Context(), s.Token(), req); err != nil {
				return err
			}
			if err := a.Sessions.ClearPending(); err != nil {
				return err
			}
			a.printf("Registered %s\n", req.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "Portfolio username")
	cmd.Flags().StringVar(&req.Title, "title", "", "Job title")
	cmd.Flags().StringVar(&req.CompanyName, "company", "", "Company")
	cmd.Flags().StringVar(&req.Introduction, "intro", "", "Short introduction")
	return cmd
}

func (a *app) publishCmd() *cobra.Command {
	var username, fullname string
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Claim a username and make the portfolio public",
		Long: `Claim a username and make the portfolio public.

Without --username the first suggestion from DesignFoli is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, stop, err := a.session(ctx)
			if err != nil {
				return err
			}
			defer stop()
			if username == "" {
				suggestions, err := a.Client.SuggestUsername(ctx, s.Token())
				if err != nil {
					return err
				}
				if len(suggestions) == 0 {
					return errors.New("no username suggestions, pass --username")
				}
				username = suggestions[0]
			}
			ok, err := a.Client.CheckUsername(ctx, s.Token(), username)
			if err != nil {
				return err
			}
			if !ok {
				return errorz.Invalid("username", "%s is already taken", username)
			}
			if err := a.Client.SetUsernameAndPublish(ctx, s.Token(), username, fullname); err != nil {
				return err
			}
			a.printf("Published as %s\n", username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username to claim")
	cmd.Flags().StringVar(&fullname, "fullname", "", "Name shown on the portfolio")
	return cmd
}
