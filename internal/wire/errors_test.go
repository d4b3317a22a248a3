package wire

import (
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notrecocon/cocon/internal/assistant"
	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/storage"
)

func TestToConnectError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  connect.Code
		sentinels []error
	}{
		{
			name:      "missing fields",
			err:       fmt.Errorf("%w: no author_name", assistant.ErrMissingFields),
			wantCode:  connect.CodeUnavailable,
			sentinels: []error{assistant.ErrMissingFields},
		},
		{
			name:      "not found",
			err:       fmt.Errorf("event e1: %w", storage.ErrNotFound),
			wantCode:  connect.CodeNotFound,
			sentinels: []error{storage.ErrNotFound},
		},
		{
			name:      "permission with cause",
			err:       fmt.Errorf("%w: %w", models.ErrPermissionDenied, models.ErrOtherRoleSlot),
			wantCode:  connect.CodePermissionDenied,
			sentinels: []error{models.ErrPermissionDenied, models.ErrOtherRoleSlot},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cerr, ok := ToConnectError(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, cerr.Code())
			assert.Equal(t, tt.err.Error(), cerr.Message())
			assert.Equal(t, tt.sentinels, Sentinels(cerr))
		})
	}

	t.Run("unknown error", func(t *testing.T) {
		_, ok := ToConnectError(errors.New("disk on fire"))
		assert.False(t, ok)
	})
}

func TestErrorReasonsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range errorTable {
		assert.False(t, seen[e.reason], "duplicate reason %s", e.reason)
		seen[e.reason] = true
		assert.Equal(t, e.err, sentinelFor(e.reason))
	}
}

func TestSentinelsIgnoresForeignDetails(t *testing.T) {
	cerr := connect.NewError(connect.CodeUnavailable, errors.New("upstream down"))
	assert.Empty(t, Sentinels(cerr))
}
