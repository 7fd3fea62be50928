package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		event   StatusEvent
		want    Status
		wantErr bool
	}{
		{"first activity on started", StatusStarted, EventFirstActivity, StatusOngoing, false},
		{"first activity on ongoing is a no-op", StatusOngoing, EventFirstActivity, StatusOngoing, false},
		{"complete from started", StatusStarted, EventComplete, StatusCompleted, false},
		{"complete from ongoing", StatusOngoing, EventComplete, StatusCompleted, false},
		{"no activity after completion", StatusCompleted, EventFirstActivity, StatusCompleted, true},
		{"no double completion", StatusCompleted, EventComplete, StatusCompleted, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdvanceStatus(tt.from, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				// Status never moves backward, even on error.
				assert.Equal(t, tt.from, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
