package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notrecocon/cocon/internal/assistant"
	"github.com/notrecocon/cocon/internal/auth"
	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/service"
	"github.com/notrecocon/cocon/internal/storage"
)

// failingAssistant fails every lookup with err.
type failingAssistant struct{ err error }

func (f failingAssistant) SongDetails(context.Context, string) (assistant.SongInfo, error) {
	return assistant.SongInfo{}, f.err
}

func (f failingAssistant) SuggestReplies(context.Context, string) ([]string, error) {
	return nil, f.err
}

func TestRemoteGateway_AssistantErrors(t *testing.T) {
	ctx := context.Background()
	sentinels := []error{
		assistant.ErrFetchFailed,
		assistant.ErrBadResponse,
		assistant.ErrMissingFields,
		assistant.ErrNotConfigured,
	}
	for _, want := range sentinels {
		t.Run(want.Error(), func(t *testing.T) {
			fail := failingAssistant{err: fmt.Errorf("%w: spotify said no", want)}
			url := newServerWith(t, true, service.Options{Songs: fail, Replies: fail})
			s := loggedIn(t, url, editorCode)

			_, err := s.ExtractSong(ctx, "https://open.spotify.com/track/1")
			require.ErrorIs(t, err, want)
			assert.Equal(t, connect.CodeUnavailable, connect.CodeOf(err))
			assert.Equal(t, want.Error()+": spotify said no", err.Error())
			for _, other := range sentinels {
				if other != want {
					assert.NotErrorIs(t, err, other)
				}
			}

			_, err = s.SuggestReplies(ctx, "I missed you today")
			assert.ErrorIs(t, err, want)
		})
	}
}

func TestRemoteGateway_ServerSentinels(t *testing.T) {
	ctx := context.Background()
	gw := NewRemoteGateway(nil, newServer(t, true))

	t.Run("incorrect code", func(t *testing.T) {
		_, _, err := gw.Login(ctx, "sunset")
		assert.ErrorIs(t, err, auth.ErrIncorrectCode)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := gw.ListEvents(ctx)
		assert.ErrorIs(t, err, auth.ErrMissingToken)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	role, token, err := gw.Login(ctx, editorCode)
	require.NoError(t, err)
	require.Equal(t, models.RoleEditor, role)
	gw.SetToken(token)

	t.Run("evergreen protected", func(t *testing.T) {
		err := gw.DeleteEvent(ctx, models.EvergreenEventID)
		assert.ErrorIs(t, err, models.ErrEvergreenProtected)
		assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))
	})

	t.Run("not found", func(t *testing.T) {
		err := gw.DeleteBucketItem(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
	})

	t.Run("invalid argument", func(t *testing.T) {
		_, err := gw.AddEvent(ctx, models.EventInput{Name: "Trip", StartDate: "2024-06-05", EndDate: "2024-06-01"})
		assert.ErrorIs(t, err, models.ErrInvalidDateRange)
		assert.NotErrorIs(t, err, models.ErrMissingDates)
	})

	t.Run("other role slot", func(t *testing.T) {
		mood := "happy"
		key := models.LogKey{EventID: models.EvergreenEventID, Date: "2024-06-02"}
		_, err := gw.UpsertLog(ctx, key, models.LogPatch{Moods: map[models.Role]*string{models.RolePartner: &mood}})
		assert.ErrorIs(t, err, models.ErrOtherRoleSlot)
		assert.ErrorIs(t, err, models.ErrPermissionDenied)
	})

	t.Run("plain errors pass through", func(t *testing.T) {
		err := errors.New("boom")
		assert.Same(t, err, fromConnect(err))
	})
}
