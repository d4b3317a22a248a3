package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest NOTE",
		Short: "Suggest short replies to a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loggedIn(cmd.Context())
			if err != nil {
				return err
			}
			replies, err := s.SuggestReplies(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, r := range replies {
				a.printf("- %s\n", r)
			}
			return nil
		},
	}
}

func (a *app) songCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "song LINK",
		Short: "Look up the title and artist of a song link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loggedIn(cmd.Context())
			if err != nil {
				return err
			}
			info, err := s.ExtractSong(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.printf("%s by %s\n", info.Title, info.Artist)
			return nil
		},
	}
}
