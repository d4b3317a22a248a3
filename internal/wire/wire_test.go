package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/pkg/api"
)

func TestLogKeepsRoleAttribution(t *testing.T) {
	mood := "🌧️"
	log := &models.DailyLog{
		EventID:      "e1",
		Date:         "2024-06-05",
		PartnerNotes: []models.Note{{ID: "n1", Author: models.RolePartner, Text: "rainy", CreatedAt: 5}},
		Moods:        models.RoleSlots[string]{Partner: &mood},
		Songs:        models.RoleSlots[models.Song]{Editor: &models.Song{Link: "l", Title: "t"}},
	}

	out := Log(log)
	assert.Equal(t, "e1_2024-06-05", out.ID)
	assert.NotNil(t, out.EditorNotes)
	assert.Empty(t, out.EditorNotes)
	assert.Nil(t, out.Moods.Editor)
	assert.Equal(t, mood, *out.Moods.Partner)

	back := ToLog(out)
	require.Len(t, back.PartnerNotes, 1)
	assert.Equal(t, models.RolePartner, back.PartnerNotes[0].Author)
	assert.Equal(t, "t", back.Songs.Editor.Title)
	assert.Nil(t, back.Photos.Partner)
}

func TestToLogPatch(t *testing.T) {
	t.Run("null values clear slots", func(t *testing.T) {
		p, err := ToLogPatch(api.LogPatch{
			Moods:  map[string]*string{"partner": nil},
			Photos: map[string]*api.Photo{"partner": {URL: "/photos/x", Hint: "h"}},
		})
		require.NoError(t, err)
		v, ok := p.Moods[models.RolePartner]
		assert.True(t, ok)
		assert.Nil(t, v)
		assert.Equal(t, "h", p.Photos[models.RolePartner].Hint)
		assert.Nil(t, p.Songs)
	})

	t.Run("unknown role key", func(t *testing.T) {
		_, err := ToLogPatch(api.LogPatch{Songs: map[string]*api.Song{"friend": nil}})
		assert.Error(t, err)
	})

	t.Run("round trip through the API form", func(t *testing.T) {
		notes := []string{"a", "b"}
		in := models.LogPatch{
			EditorNotes: &notes,
			Songs:       map[models.Role]*models.Song{models.RoleEditor: {Link: "x"}},
		}
		out, err := ToLogPatch(LogPatch(in))
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})
}
