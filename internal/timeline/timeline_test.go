package timeline

import (
	"math"
	"testing"
	"time"

	"github.com/notrecocon/cocon/internal/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestProgress(t *testing.T) {
	june := &models.Event{ID: "e1", Name: "June", StartDate: "2024-06-01", EndDate: "2024-06-10"}
	single := &models.Event{ID: "e2", Name: "Gala", StartDate: "2024-06-05", EndDate: "2024-06-05"}

	tests := []struct {
		name   string
		event  *models.Event
		today  string
		want   float64
		wantOK bool
	}{
		{name: "midway", event: june, today: "2024-06-05", want: 44.44, wantOK: true},
		{name: "before start", event: june, today: "2024-05-20", want: 0, wantOK: true},
		{name: "after end", event: june, today: "2024-07-01", want: 100, wantOK: true},
		{name: "first day", event: june, today: "2024-06-01", want: 0, wantOK: true},
		{name: "single day before", event: single, today: "2024-06-04", want: 0, wantOK: true},
		{name: "single day on", event: single, today: "2024-06-05", want: 100, wantOK: true},
		{name: "evergreen", event: models.NewEvergreenEvent(), today: "2024-06-05", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Progress(tt.event, day(t, tt.today))
			if ok != tt.wantOK {
				t.Fatalf("Progress() ok = %v, want %v", ok, tt.wantOK)
			}
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Progress() = %.2f, want %.2f", got, tt.want)
			}
		})
	}
}

func TestProgressIsMonotonic(t *testing.T) {
	events := []*models.Event{
		{ID: "e1", Name: "June", StartDate: "2024-06-01", EndDate: "2024-06-10"},
		{ID: "e2", Name: "Weekend", StartDate: "2024-06-08", EndDate: "2024-06-09"},
		{ID: "e3", Name: "Gala", StartDate: "2024-06-05", EndDate: "2024-06-05"},
	}
	for _, ev := range events {
		t.Run(ev.Name, func(t *testing.T) {
			start, end := day(t, ev.StartDate), day(t, ev.EndDate)
			single := start.Equal(end)
			prev := -1.0
			for d := start.AddDate(0, 0, -2); !d.After(end.AddDate(0, 0, 2)); d = d.AddDate(0, 0, 1) {
				got, ok := Progress(ev, d)
				if !ok {
					t.Fatalf("Progress(%s) ok = false", FormatDate(d))
				}
				if got < prev {
					t.Errorf("Progress(%s) = %.2f, dropped from %.2f", FormatDate(d), got, prev)
				}
				prev = got

				switch {
				case d.Before(start) && got != 0:
					t.Errorf("Progress(%s) = %.2f before start, want 0", FormatDate(d), got)
				case d.Equal(start) && !single && got != 0:
					t.Errorf("Progress(%s) = %.2f on start, want 0", FormatDate(d), got)
				case d.Before(end) && got >= 100:
					t.Errorf("Progress(%s) = %.2f before end, want < 100", FormatDate(d), got)
				case !d.Before(end) && got != 100:
					t.Errorf("Progress(%s) = %.2f at or after end, want 100", FormatDate(d), got)
				}
			}
		})
	}
}

func TestDaysRemainingAndStatus(t *testing.T) {
	june := &models.Event{ID: "e1", Name: "June", StartDate: "2024-06-01", EndDate: "2024-06-10"}

	tests := []struct {
		today     string
		wantDays  int
		wantLabel string
	}{
		{today: "2024-06-05", wantDays: 5, wantLabel: "5 days remaining"},
		{today: "2024-06-09", wantDays: 1, wantLabel: "1 day remaining"},
		{today: "2024-06-10", wantDays: 0, wantLabel: "Happening today"},
		{today: "2024-06-11", wantDays: 0, wantLabel: "Ended"},
	}

	for _, tt := range tests {
		t.Run(tt.today, func(t *testing.T) {
			days, ok := DaysRemaining(june, day(t, tt.today))
			if !ok || days != tt.wantDays {
				t.Errorf("DaysRemaining() = %d, %v, want %d", days, ok, tt.wantDays)
			}
			if got := StatusOf(june, day(t, tt.today)).Label(); got != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", got, tt.wantLabel)
			}
		})
	}

	t.Run("evergreen", func(t *testing.T) {
		ev := models.NewEvergreenEvent()
		if _, ok := DaysRemaining(ev, day(t, "2024-06-05")); ok {
			t.Error("DaysRemaining() ok = true for evergreen")
		}
		if got := StatusOf(ev, day(t, "2024-06-05")); got.Kind != StatusOngoing {
			t.Errorf("StatusOf() = %v, want ongoing", got.Kind)
		}
	})
}

func TestContains(t *testing.T) {
	june := &models.Event{StartDate: "2024-06-01", EndDate: "2024-06-10"}

	cases := map[string]bool{
		"2024-05-31": false,
		"2024-06-01": true,
		"2024-06-10": true,
		"2024-06-11": false,
	}
	for date, want := range cases {
		if got := Contains(june, day(t, date)); got != want {
			t.Errorf("Contains(%s) = %v, want %v", date, got, want)
		}
	}
	if !Contains(models.NewEvergreenEvent(), day(t, "1999-01-01")) {
		t.Error("evergreen event should contain every date")
	}
}

func TestSortEvents(t *testing.T) {
	events := []*models.Event{
		{ID: "old", Name: "Old", StartDate: "2023-01-01", EndDate: "2023-01-02"},
		{ID: "b", Name: "Beta", StartDate: "2024-06-01", EndDate: "2024-06-10"},
		models.NewEvergreenEvent(),
		{ID: "a", Name: "Alpha", StartDate: "2024-06-01", EndDate: "2024-06-03"},
	}

	SortEvents(events)

	want := []string{models.EvergreenEventID, "a", "b", "old"}
	for i, id := range want {
		if events[i].ID != id {
			t.Errorf("events[%d] = %s, want %s", i, events[i].ID, id)
		}
	}
}

func TestDaysBetweenIgnoresClock(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*60*60)
	a := time.Date(2024, 3, 30, 23, 30, 0, 0, loc)
	b := day(t, "2024-04-02")
	if got := DaysBetween(a, b); got != 3 {
		t.Errorf("DaysBetween() = %d, want 3", got)
	}
	if FormatDate(a) != "2024-03-30" {
		t.Errorf("FormatDate() = %s, want 2024-03-30", FormatDate(a))
	}
}
