package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/wanted/internal/ai"
	"github.com/udisondev/wanted/internal/model"
)

func TestIDGenerator_Unique(t *testing.T) {
	gen := NewIDGenerator()
	seen := make(map[uint32]bool)
	for range 1000 {
		id := gen.NextPursuerID()
		require.False(t, seen[id], "duplicate id %d", id)
		require.True(t, IsPursuerID(id))
		seen[id] = true
	}
	assert.False(t, IsPursuerID(1))
	assert.False(t, IsPursuerID(0))
}

func TestRoster_AddGetRemove(t *testing.T) {
	r := NewRoster()

	a := r.Add(mgl64.Vec3{1, 0, 0})
	b := r.Add(mgl64.Vec3{2, 0, 0})
	require.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, model.IntentionIdle, a.Intention)
	assert.False(t, a.LastHit.Valid())

	got, ok := r.Get(b.ID)
	require.True(t, ok)
	assert.Same(t, b, got)

	require.NoError(t, r.Remove(a.ID))
	_, ok = r.Get(a.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())

	err := r.Remove(a.ID)
	assert.ErrorIs(t, err, ErrUnknownPursuer)
}

func TestRoster_EachInInsertionOrder(t *testing.T) {
	r := NewRoster()
	var want []uint32
	for i := range 5 {
		want = append(want, r.Add(mgl64.Vec3{float64(i), 0, 0}).ID)
	}
	require.NoError(t, r.Remove(want[2]))
	want = append(want[:2], want[3:]...)

	var got []uint32
	r.Each(func(p *ai.Pursuer) bool {
		got = append(got, p.ID)
		return true
	})
	assert.Equal(t, want, got)

	var first []uint32
	r.Each(func(p *ai.Pursuer) bool {
		first = append(first, p.ID)
		return false
	})
	assert.Equal(t, want[:1], first)
}

func TestRoster_Positions(t *testing.T) {
	r := NewRoster()
	r.Add(mgl64.Vec3{1, 0, 1})
	r.Add(mgl64.Vec3{2, 0, 2})

	assert.Equal(t, []mgl64.Vec3{{1, 0, 1}, {2, 0, 2}}, r.Positions(nil))
}

func TestRoster_ResetKeepsIDsIncreasing(t *testing.T) {
	r := NewRoster()
	first := r.Add(mgl64.Vec3{}).ID
	r.Reset()
	assert.Equal(t, 0, r.Len())

	second := r.Add(mgl64.Vec3{}).ID
	assert.Greater(t, second, first)
}
