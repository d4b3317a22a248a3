package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notrecocon/cocon/internal/models"
)

func (a *app) bucketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bucket",
		Short: "The shared bucket list",
	}

	var undo bool
	toggle := &cobra.Command{
		Use:   "toggle ITEM",
		Short: "Mark an item done, or not done with --undo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loggedIn(cmd.Context())
			if err != nil {
				return err
			}
			if err := s.LoadBucketList(cmd.Context()); err != nil {
				return err
			}
			item, err := resolveBucketItem(s.State().BucketItems, args[0])
			if err != nil {
				return err
			}
			if _, err := s.ToggleBucketItem(cmd.Context(), item.ID, !undo); err != nil {
				return err
			}
			a.printf("Updated %q.\n", item.Text)
			return nil
		},
	}
	toggle.Flags().BoolVar(&undo, "undo", false, "mark the item as not done")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show the bucket list",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				s, err := a.loggedIn(cmd.Context())
				if err != nil {
					return err
				}
				if err := s.LoadBucketList(cmd.Context()); err != nil {
					return err
				}
				items := s.State().BucketItems
				if len(items) == 0 {
					a.printf("The bucket list is empty.\n")
					return nil
				}
				for i, it := range items {
					mark := " "
					if it.Completed {
						mark = "x"
					}
					a.printf("%2d. [%s] %s\n", i+1, mark, it.Text)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "add TEXT",
			Short: "Add an item",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := a.loggedIn(cmd.Context())
				if err != nil {
					return err
				}
				item, err := s.AddBucketItem(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				a.printf("Added %q.\n", item.Text)
				return nil
			},
		},
		toggle,
		&cobra.Command{
			Use:   "delete ITEM",
			Short: "Delete an item (editor only)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := a.loggedIn(cmd.Context())
				if err != nil {
					return err
				}
				if err := s.LoadBucketList(cmd.Context()); err != nil {
					return err
				}
				item, err := resolveBucketItem(s.State().BucketItems, args[0])
				if err != nil {
					return err
				}
				if err := s.DeleteBucketItem(cmd.Context(), item.ID); err != nil {
					return err
				}
				a.printf("Deleted %q.\n", item.Text)
				return nil
			},
		},
	)
	return cmd
}

// resolveBucketItem finds an item by its position in the list (1-based), its id or its text.
func resolveBucketItem(items []*models.BucketListItem, ref string) (*models.BucketListItem, error) {
	var n int
	if _, err := fmt.Sscanf(ref, "%d", &n); err == nil && fmt.Sprint(n) == ref {
		if n >= 1 && n <= len(items) {
			return items[n-1], nil
		}
	}
	for _, it := range items {
		if it.ID == ref || strings.EqualFold(it.Text, ref) {
			return it, nil
		}
	}
	return nil, fmt.Errorf("no bucket list item %q", ref)
}
