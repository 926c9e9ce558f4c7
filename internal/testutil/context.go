package testutil

import (
	"context"
	"testing"
	"time"
)

// Context returns a context that times out after d and is cancelled when the test ends.
func Context(t testing.TB, d time.Duration) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), d)
	t.Cleanup(cancel)
	return ctx
}
