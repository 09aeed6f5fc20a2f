package logstore

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodestone/internal/app/gamelog"
)

func makeLines(n, startID int) []gamelog.Line {
	lines := make([]gamelog.Line, n)
	for i := range lines {
		lines[i] = gamelog.Line{ID: startID + i, Raw: fmt.Sprintf("line %d", startID+i)}
	}

	return lines
}

func Test_NewStore(t *testing.T) {
	store := NewStore(5)
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Lines())
}

func Test_Store_AppendBelowCapacity(t *testing.T) {
	store := NewStore(10)
	store.Append(makeLines(3, 0)...)

	require.Equal(t, 3, store.Len())
	assert.Equal(t, 0, store.Lines()[0].ID)
	assert.Equal(t, 2, store.Lines()[2].ID)
}

func Test_Store_Eviction(t *testing.T) {
	tests := []struct {
		name       string
		capacity   int
		total      int
		expectedID int
	}{
		{name: "One over capacity", capacity: 5, total: 6, expectedID: 1},
		{name: "Many over capacity", capacity: 100, total: 350, expectedID: 250},
		{name: "Exactly at capacity", capacity: 8, total: 8, expectedID: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(tt.capacity)

			for _, line := range makeLines(tt.total, 0) {
				store.Append(line)
			}

			lines := store.Lines()
			require.Len(t, lines, min(tt.capacity, tt.total))
			assert.GreaterOrEqual(t, lines[0].ID, tt.total-tt.capacity)
			assert.Equal(t, tt.expectedID, lines[0].ID)
			assert.Equal(t, tt.total-1, lines[len(lines)-1].ID)
		})
	}
}

func Test_Store_OrderPreservedAcrossWraparound(t *testing.T) {
	store := NewStore(4)
	store.Append(makeLines(11, 0)...)

	lines := store.Lines()
	require.Len(t, lines, 4)

	for i := 1; i < len(lines); i++ {
		assert.Greater(t, lines[i].ID, lines[i-1].ID)
	}
}

func Test_Store_Clear(t *testing.T) {
	store := NewStore(4)
	store.Append(makeLines(6, 0)...)

	store.Clear()

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Lines())

	store.Append(makeLines(2, 100)...)
	require.Equal(t, 2, store.Len())
	assert.Equal(t, 100, store.Lines()[0].ID)
}

func Test_Store_Visible(t *testing.T) {
	store := NewStore(10)
	store.Append(
		gamelog.Line{ID: 0, Raw: "boom", Level: gamelog.LevelError},
		gamelog.Line{ID: 1, Raw: "fine", Level: gamelog.LevelInfo},
		gamelog.Line{ID: 2, Raw: "plain continuation"},
	)

	filter := NewFilter()
	filter.SetEnabled(gamelog.LevelError, false)

	visible := store.Visible(filter)
	require.Len(t, visible, 2)
	assert.Equal(t, 1, visible[0].ID)
	assert.Equal(t, 2, visible[1].ID, "lines without a level pass through")
}

func Test_JoinRaw(t *testing.T) {
	lines := []gamelog.Line{
		{Raw: "[10:00:00] [main/INFO]: a"},
		{Raw: "\tat something"},
		{Raw: ""},
	}

	assert.Equal(t, "[10:00:00] [main/INFO]: a\n\tat something\n", JoinRaw(lines))
	assert.Empty(t, JoinRaw(nil))
}
