package ticks

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle_RoundTrip(t *testing.T) {
	tr := NewTracker()

	assert.True(t, tr.Toggle("q1"))
	assert.True(t, tr.IsTicked("q1"))
	assert.False(t, tr.Toggle("q1"))
	assert.False(t, tr.IsTicked("q1"))

	// an unticked entry is still recorded
	assert.Equal(t, map[string]bool{"q1": false}, tr.Snapshot())
}

func TestToggle_EmptyKeyIsNoop(t *testing.T) {
	tr := NewTracker()
	tr.Toggle("q1")
	before := tr.Snapshot()

	assert.False(t, tr.Toggle(""))
	assert.Equal(t, before, tr.Snapshot())
	_, exists := tr.Snapshot()[""]
	assert.False(t, exists)
}

func TestSnapshot_IsCopy(t *testing.T) {
	tr := NewTracker()
	tr.Toggle("q1")

	snap := tr.Snapshot()
	snap["q1"] = false
	snap["q2"] = true

	assert.True(t, tr.IsTicked("q1"))
	assert.False(t, tr.IsTicked("q2"))
}

func TestToggle_Concurrent(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Toggle("q1")
		}()
	}
	wg.Wait()

	// an even number of flips lands back on false
	assert.False(t, tr.IsTicked("q1"))
}
