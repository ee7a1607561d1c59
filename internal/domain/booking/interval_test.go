package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hhmm string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04", "2026-09-01 "+hhmm)
	return t
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical intervals",
			a:    NewInterval(at("14:00"), 30),
			b:    NewInterval(at("14:00"), 30),
			want: true,
		},
		{
			name: "partial overlap",
			a:    NewInterval(at("14:00"), 30),
			b:    NewInterval(at("14:15"), 30),
			want: true,
		},
		{
			name: "containment",
			a:    NewInterval(at("14:00"), 90),
			b:    NewInterval(at("14:30"), 30),
			want: true,
		},
		{
			name: "touching at boundary does not overlap",
			a:    NewInterval(at("13:30"), 30),
			b:    NewInterval(at("14:00"), 30),
			want: false,
		},
		{
			name: "one minute overlap",
			a:    NewInterval(at("13:31"), 30),
			b:    NewInterval(at("14:00"), 30),
			want: true,
		},
		{
			name: "disjoint",
			a:    NewInterval(at("09:00"), 30),
			b:    NewInterval(at("14:00"), 30),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			// symmetric
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestInterval_End(t *testing.T) {
	i := NewInterval(at("14:00"), 45)
	assert.Equal(t, at("14:45"), i.End())
}

func TestBlocksSlot(t *testing.T) {
	assert.True(t, BlocksSlot(StatusPending))
	assert.True(t, BlocksSlot(StatusConfirmed))
	assert.True(t, BlocksSlot(StatusCompleted))
	assert.False(t, BlocksSlot(StatusCancelled))
}

func TestStatusTransitions(t *testing.T) {
	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.Error(t, CanCancel(StatusCompleted))
	assert.Error(t, CanCancel(StatusCancelled))

	assert.NoError(t, CanComplete(StatusConfirmed))
	assert.Error(t, CanComplete(StatusCancelled))
	assert.Error(t, CanComplete(StatusCompleted))
}
