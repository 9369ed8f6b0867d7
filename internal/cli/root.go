// Package cli is the designfoli command line: sign in once, then create,
// update, inspect and delete case studies from YAML manifests without the
// browser.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"designfoli-web/internal/auth"
	"designfoli-web/internal/designfoli"
	"designfoli-web/internal/errorz"
	"github.com/spf13/cobra"
)

// refreshMargin is how close to expiry a cached token is refreshed before use.
const refreshMargin = time.Minute

// Options are the collaborators every command shares. RefreshInterval is how
// often a signed-in command refreshes its token while it runs; zero means
// auth.DefaultRefreshInterval.
type Options struct {
	Client          *designfoli.Client
	Identity        auth.Provider
	Sessions        auth.FileStore
	Out             io.Writer
	RefreshInterval time.Duration
}

type app struct {
	Options
}

// NewRootCmd builds the command tree.
func NewRootCmd(opts Options, version string) *cobra.Command {
	a := &app{Options: opts}

	root := &cobra.Command{
		Use:   "designfoli",
		Short: "DesignFoli - manage your portfolio case studies from the terminal",
		Long: `designfoli talks to the DesignFoli API with your own account.

Sign in with 'designfoli login', then describe a case study in a YAML
manifest and push it with 'designfoli casestudy create -f study.yaml'.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(opts.Out)

	root.AddCommand(a.loginCmd())
	root.AddCommand(a.logoutCmd())
	root.AddCommand(a.whoamiCmd())
	root.AddCommand(a.signupCmd())
	root.AddCommand(a.registerCmd())
	root.AddCommand(a.publishCmd())
	root.AddCommand(a.configCmd())
	root.AddCommand(a.caseStudyCmd())
	return root
}

// session loads the cached session, refreshes it when it is about to expire
// and keeps it fresh while the command runs. Callers defer stop, which ends
// the background refresh and waits for it.
func (a *app) session(ctx context.Context) (s *auth.Session, stop func(), err error) {
	s, err = a.Sessions.Load()
	if err != nil {
		return nil, nil, err
	}
	if s == nil || s.Token() == "" {
		return nil, nil, fmt.Errorf("not signed in, run 'designfoli login': %w", errorz.ErrUnauthorized)
	}
	if a.Identity == nil {
		return s, func() {}, nil
	}

	exp := s.ExpiresAt()
	if !exp.IsZero() && time.Until(exp) < refreshMargin {
		if err := s.Refresh(ctx, a.Identity); err != nil {
			return nil, nil, fmt.Errorf("session expired, run 'designfoli login': %w", err)
		}
		if err := a.Sessions.Save(s); err != nil {
			return nil, nil, err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.KeepFresh(ctx, a.Identity, a.RefreshInterval, func(s *auth.Session) {
			if err := a.Sessions.Save(s); err != nil {
				log.Printf("Failed to save refreshed session: %v", err)
			}
		})
	}()
	return s, func() { cancel(); <-done }, nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.Out, format, args...)
}
