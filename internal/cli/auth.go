package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/notrecocon/cocon/internal/clientstate"
	"github.com/notrecocon/cocon/internal/session"
)

func (a *app) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [code]",
		Short: "Log in with the editor or partner access code",
		Long:  "Log in with a shared access code. Without an argument the code is read from the terminal without echo.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := a.session(ctx)
			if err != nil {
				return err
			}
			if !s.State().CodesConfigured {
				return errors.New(`access codes are not set up yet; ask the editor to run "coconctl admin set-codes"`)
			}

			code := ""
			if len(args) == 1 {
				code = args[0]
			} else if code, err = a.readSecret("Access code: "); err != nil {
				return err
			}

			if !s.AttemptLoginWithCode(ctx, code) {
				return errors.New("incorrect code")
			}
			if err := a.sessionFile.Update(func(sess *clientstate.Session) { sess.Server = a.server }); err != nil {
				return err
			}
			a.printf("Logged in as %s.\n", s.State().Role)
			return nil
		},
	}
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored role and token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// No server round trip is needed to forget the session.
			s := session.NewStore(session.NewRemoteGateway(nil, a.server), a.sessionFile)
			if err := s.Logout(); err != nil {
				return err
			}
			a.printf("Logged out.\n")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current role and server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			st := s.State()
			role := st.Role.String()
			if role == "" {
				role = "not logged in"
			}
			a.printf("Server: %s\nRole:   %s\n", a.server, role)
			if !st.CodesConfigured {
				a.printf("Warning: access codes are not set up on this server.\n")
			}
			return nil
		},
	}
}
