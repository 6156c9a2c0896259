package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tatianab/zuul/internal/models"
)

// newCampus returns the built-in campus world.
func newCampus(t *testing.T) *models.World {
	t.Helper()
	w, err := models.DefaultWorld()
	require.NoError(t, err)
	return w
}

func newTestSession(t *testing.T, limit time.Duration) (*Session, *models.World) {
	t.Helper()
	w := newCampus(t)
	s := NewSession(context.Background(), w, models.NewPlayer(w.Start().ID), limit)
	t.Cleanup(func() { s.End(context.Canceled) })
	return s, w
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("session did not end")
	}
}
