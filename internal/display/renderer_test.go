package display

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tactileworks/brailletutor/internal/actuator"
	"github.com/tactileworks/brailletutor/internal/braille"
)

type recordChannel struct {
	raised bool
	sets   int
	err    error
}

func (c *recordChannel) Set(raised bool) error {
	if c.err != nil {
		return c.err
	}
	c.raised = raised
	c.sets++
	return nil
}

func testRenderer(settle time.Duration) (*Renderer, *[braille.NumDots]*recordChannel, *[]time.Duration) {
	var recs [braille.NumDots]*recordChannel
	var chans [braille.NumDots]actuator.Channel
	for i := range recs {
		recs[i] = &recordChannel{}
		chans[i] = recs[i]
	}
	r := NewRenderer(chans, settle)
	slept := &[]time.Duration{}
	r.sleep = func(d time.Duration) { *slept = append(*slept, d) }
	return r, &recs, slept
}

func TestRenderDrivesAllSixChannels(t *testing.T) {
	r, recs, slept := testRenderer(500 * time.Millisecond)

	// R = dots 1,2,3,5
	require.NoError(t, r.Render(18))

	want := [braille.NumDots]bool{true, true, true, false, true, false}
	for i, rec := range recs {
		assert.Equal(t, 1, rec.sets, "dot %d must be written exactly once", i+1)
		assert.Equal(t, want[i], rec.raised, "dot %d", i+1)
	}
	require.Len(t, *slept, 1, "settle wait after the writes")
	assert.Equal(t, 500*time.Millisecond, (*slept)[0])
}

func TestClearLowersEverything(t *testing.T) {
	r, recs, _ := testRenderer(time.Millisecond)

	require.NoError(t, r.Render(17)) // Q raises five dots
	require.NoError(t, r.Clear())

	for i, rec := range recs {
		assert.False(t, rec.raised, "dot %d must end lowered", i+1)
	}
}

func TestRenderRejectsOutOfRange(t *testing.T) {
	r, _, slept := testRenderer(time.Millisecond)
	assert.Error(t, r.Render(0))
	assert.Error(t, r.Render(27))
	assert.Empty(t, *slept, "no settle wait for a rejected letter")
}

func TestRenderSurfacesChannelError(t *testing.T) {
	r, recs, _ := testRenderer(time.Millisecond)
	recs[3].err = errors.New("bus glitch")

	err := r.Render(3) // C = dots 1,4
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dot 4")
}
