package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notrecocon/cocon/internal/models"
)

func event(id, name, start, end string) *models.Event {
	return &models.Event{ID: id, Name: name, StartDate: start, EndDate: end}
}

func TestReduce_Events(t *testing.T) {
	s := Reduce(State{}, Initialized{
		Role: models.RoleEditor,
		Events: []*models.Event{
			event("a", "Alps", "2024-01-01", "2024-01-05"),
			models.NewEvergreenEvent(),
		},
	})
	require.True(t, s.IsInitialized)
	assert.Equal(t, models.EvergreenEventID, s.Events[0].ID)

	t.Run("saved events are re-sorted", func(t *testing.T) {
		next := Reduce(s, EventSaved{Event: event("b", "Beach", "2024-06-01", "2024-06-05")})
		require.Len(t, next.Events, 3)
		assert.Equal(t, []string{models.EvergreenEventID, "b", "a"}, ids(next.Events))
		assert.Len(t, s.Events, 2, "input state must not change")
	})

	t.Run("saving an existing event replaces it", func(t *testing.T) {
		next := Reduce(s, EventSaved{Event: event("a", "Alps trip", "2024-01-01", "2024-01-05")})
		require.Len(t, next.Events, 2)
		assert.Equal(t, "Alps trip", next.Events[1].Name)
	})

	t.Run("removing the selected event clears selection", func(t *testing.T) {
		next := Reduce(Reduce(s, EventSelected{EventID: "a"}), EventRemoved{EventID: "a"})
		assert.Empty(t, next.SelectedEventID)
		assert.Len(t, next.Events, 1)
	})
}

func TestReduce_Logs(t *testing.T) {
	s := Reduce(State{}, Initialized{Events: []*models.Event{models.NewEvergreenEvent()}})
	s = Reduce(s, EventSelected{EventID: models.EvergreenEventID})

	log := models.NewDailyLog(models.LogKey{EventID: models.EvergreenEventID, Date: "2024-06-02"})
	next := Reduce(s, LogSaved{Log: log})
	assert.Same(t, log, next.Logs["2024-06-02"])
	assert.Empty(t, s.Logs, "input state must not change")

	t.Run("logs for another event are ignored", func(t *testing.T) {
		other := models.NewDailyLog(models.LogKey{EventID: "x", Date: "2024-06-03"})
		assert.NotContains(t, Reduce(next, LogSaved{Log: other}).Logs, "2024-06-03")
		assert.Len(t, Reduce(next, LogsLoaded{EventID: "x", Logs: []*models.DailyLog{other}}).Logs, 1)
	})

	t.Run("selecting drops loaded logs", func(t *testing.T) {
		assert.Empty(t, Reduce(next, EventSelected{EventID: ""}).Logs)
	})

	t.Run("removed", func(t *testing.T) {
		assert.Empty(t, Reduce(next, LogRemoved{Key: log.Key()}).Logs)
	})

	t.Run("reset clears selection", func(t *testing.T) {
		reset := Reduce(next, DataReset{Events: []*models.Event{models.NewEvergreenEvent()}})
		assert.Empty(t, reset.SelectedEventID)
		assert.Empty(t, reset.Logs)
	})
}

func TestReduce_Writes(t *testing.T) {
	boom := errors.New("boom")
	s := Reduce(State{}, WriteStarted{Key: "log:2024-06-02"})
	assert.Equal(t, WritePending, s.Writes["log:2024-06-02"].State)

	failed := Reduce(s, WriteErrored{Key: "log:2024-06-02", Err: boom})
	assert.Equal(t, WriteStatus{State: WriteFailed, Err: boom}, failed.Writes["log:2024-06-02"])
	assert.Equal(t, WritePending, s.Writes["log:2024-06-02"].State)

	done := Reduce(failed, WriteSucceeded{Key: "log:2024-06-02"})
	assert.NotContains(t, done.Writes, "log:2024-06-02")
}

func TestReduce_Logout(t *testing.T) {
	s := Reduce(State{}, Initialized{Role: models.RolePartner, Events: []*models.Event{models.NewEvergreenEvent()}})
	s = Reduce(s, EventSelected{EventID: models.EvergreenEventID})
	s = Reduce(s, RoleChanged{Role: ""})
	assert.Empty(t, s.Role)
	assert.Empty(t, s.Events)
	assert.Empty(t, s.SelectedEventID)
	assert.True(t, s.IsInitialized)
}

func TestReduce_Bucket(t *testing.T) {
	s := Reduce(State{}, BucketLoaded{Items: []*models.BucketListItem{{ID: "1", Text: "old"}}})
	s = Reduce(s, BucketItemSaved{Item: &models.BucketListItem{ID: "2", Text: "new"}})
	require.Len(t, s.BucketItems, 2)
	assert.Equal(t, "2", s.BucketItems[0].ID)

	s = Reduce(s, BucketItemSaved{Item: &models.BucketListItem{ID: "1", Text: "old", Completed: true}})
	assert.True(t, s.BucketItems[1].Completed)

	s = Reduce(s, BucketItemRemoved{ItemID: "2"})
	assert.Len(t, s.BucketItems, 1)
}

func ids(events []*models.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.ID
	}
	return out
}
