package spawn

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRespawnScheduler_DueFiresOnce(t *testing.T) {
	r := NewRespawnScheduler()
	assert.False(t, r.Due(time.Hour))

	r.Schedule(3 * time.Second)
	at, ok := r.Pending()
	assert.True(t, ok)
	assert.Equal(t, 3*time.Second, at)

	assert.False(t, r.Due(2999*time.Millisecond))
	assert.True(t, r.Due(3*time.Second))
	assert.False(t, r.Due(4*time.Second))

	_, ok = r.Pending()
	assert.False(t, ok)
}

func TestRespawnScheduler_Cancel(t *testing.T) {
	r := NewRespawnScheduler()
	r.Schedule(time.Second)
	r.Cancel()

	assert.False(t, r.Due(time.Minute))
}

func TestRespawnScheduler_Reschedule(t *testing.T) {
	r := NewRespawnScheduler()
	r.Schedule(time.Second)
	r.Schedule(5 * time.Second)

	assert.False(t, r.Due(2*time.Second))
	assert.True(t, r.Due(5*time.Second))
}
