package testutil

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

// AssertVec3InDelta checks each component of got against want.
func AssertVec3InDelta(t testing.TB, want, got mgl64.Vec3, delta float64, msgAndArgs ...any) bool {
	t.Helper()

	ok := true
	for i := range 3 {
		ok = assert.InDelta(t, want[i], got[i], delta, msgAndArgs...) && ok
	}
	return ok
}
