package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notrecocon/cocon/internal/auth"
	"github.com/notrecocon/cocon/internal/storage/sqldb"
)

// adminCmd works on the server's database directly, so it needs the
// server's db configuration rather than a session.
func (a *app) adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Maintenance commands run next to the database",
	}

	var editor, partner string
	setCodes := &cobra.Command{
		Use:   "set-codes",
		Short: "Set the editor and partner access codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if editor == "" {
				if editor, err = a.readSecret("Editor code: "); err != nil {
					return err
				}
			}
			if partner == "" {
				if partner, err = a.readSecret("Partner code: "); err != nil {
					return err
				}
			}
			if err := auth.ValidateCodes(editor, partner); err != nil {
				return err
			}

			target := a.cfg.DB.Path
			if a.cfg.DB.Driver == "postgres" {
				target = a.cfg.DB.DSN
			}
			store, err := sqldb.Open(cmd.Context(), a.cfg.DB.Driver, target)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer store.Close()

			if err := auth.NewCodeAuthenticator(store).SetCodes(cmd.Context(), editor, partner); err != nil {
				return err
			}
			a.printf("Access codes updated.\n")
			return nil
		},
	}
	setCodes.Flags().StringVar(&editor, "editor", "", "editor access code (prompted when empty)")
	setCodes.Flags().StringVar(&partner, "partner", "", "partner access code (prompted when empty)")

	cmd.AddCommand(setCodes)
	return cmd
}
