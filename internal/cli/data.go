package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notrecocon/cocon/internal/export"
)

func (a *app) resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every event and log (editor only)",
		Long:  "Delete every dated event and every daily log, photos included. The bucket list and access codes are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loggedIn(cmd.Context())
			if err != nil {
				return err
			}
			if !yes {
				answer, err := a.readSecret(`Type "reset" to delete everything: `)
				if err != nil {
					return err
				}
				if strings.TrimSpace(answer) != "reset" {
					return errors.New("reset cancelled")
				}
			}
			if err := s.ResetAllAppData(cmd.Context()); err != nil {
				return err
			}
			a.printf("All events and logs deleted.\n")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if _, err := a.loggedIn(cmd.Context()); err != nil {
				return err
			}
			snap, err := export.Collect(cmd.Context(), a.gateway, a.now())
			if err != nil {
				return err
			}

			var w io.Writer = a.out
			if output != "" && output != "-" {
				var file *os.File
				if file, err = os.Create(output); err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer func() {
					if cerr := file.Close(); err == nil {
						err = cerr
					}
				}()
				w = file
			}
			return export.Write(w, snap, f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "yaml, markdown or html")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}
