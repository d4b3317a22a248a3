package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/session"
	"github.com/notrecocon/cocon/internal/timeline"
)

func (a *app) eventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List and manage events",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List events with their progress",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				s, err := a.loggedIn(cmd.Context())
				if err != nil {
					return err
				}
				a.printEvents(s.State().Events)
				return nil
			},
		},
		&cobra.Command{
			Use:   "add NAME START END",
			Short: "Add a dated event (editor only)",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := a.loggedIn(cmd.Context())
				if err != nil {
					return err
				}
				ev, err := s.AddEvent(cmd.Context(), models.EventInput{Name: args[0], StartDate: args[1], EndDate: args[2]})
				if err != nil {
					return err
				}
				a.printf("Added %q (%s).\n", ev.Name, ev.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "rename EVENT NAME",
			Short: "Rename an event (editor only)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.updateEvent(cmd, args[0], models.EventPatch{Name: &args[1]})
			},
		},
		&cobra.Command{
			Use:   "reschedule EVENT START END",
			Short: "Change an event's dates (editor only)",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.updateEvent(cmd, args[0], models.EventPatch{StartDate: &args[1], EndDate: &args[2]})
			},
		},
		&cobra.Command{
			Use:   "delete EVENT",
			Short: "Delete an event with all its logs (editor only)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := a.loggedIn(cmd.Context())
				if err != nil {
					return err
				}
				ev, err := resolveEvent(s.State(), args[0])
				if err != nil {
					return err
				}
				if err := s.DeleteEvent(cmd.Context(), ev.ID); err != nil {
					return err
				}
				a.printf("Deleted %q.\n", ev.Name)
				return nil
			},
		},
	)
	return cmd
}

func (a *app) updateEvent(cmd *cobra.Command, ref string, patch models.EventPatch) error {
	s, err := a.loggedIn(cmd.Context())
	if err != nil {
		return err
	}
	ev, err := resolveEvent(s.State(), ref)
	if err != nil {
		return err
	}
	updated, err := s.UpdateEvent(cmd.Context(), ev.ID, patch)
	if err != nil {
		return err
	}
	a.printf("Updated %q.\n", updated.Name)
	return nil
}

func (a *app) printEvents(events []*models.Event) {
	today := timeline.Today(a.now())
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDATES\tPROGRESS\tSTATUS")
	for _, ev := range events {
		dates, progress := "", ""
		if !ev.IsEvergreen {
			dates = ev.StartDate + " to " + ev.EndDate
		}
		if p, ok := timeline.Progress(ev, today); ok {
			progress = fmt.Sprintf("%.0f%%", p)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", ev.ID, ev.Name, dates, progress, timeline.StatusOf(ev, today).Label())
	}
	tw.Flush()
}

// resolveEvent finds an event by id or by case-insensitive name.
func resolveEvent(st session.State, ref string) (*models.Event, error) {
	if ev, ok := st.Event(ref); ok {
		return ev, nil
	}
	var found *models.Event
	for _, ev := range st.Events {
		if strings.EqualFold(ev.Name, ref) {
			if found != nil {
				return nil, fmt.Errorf("more than one event is named %q; use its id", ref)
			}
			found = ev
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %q", session.ErrUnknownEvent, ref)
	}
	return found, nil
}
