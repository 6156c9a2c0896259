package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/zuul/internal/models"
)

func TestSession_Go(t *testing.T) {
	s, _ := newTestSession(t, time.Minute)

	room, err := s.Go("east")
	require.NoError(t, err)
	assert.Equal(t, models.RoomID("theater"), room.ID)
	assert.Equal(t, models.RoomID("theater"), s.Current())
	assert.Equal(t, []models.RoomID{"outside"}, s.History())
}

func TestSession_GoNoExit(t *testing.T) {
	s, _ := newTestSession(t, time.Minute)
	_, err := s.Go("east")
	require.NoError(t, err)

	for _, dir := range []string{"east", "up", "", "West"} {
		_, err := s.Go(dir)
		assert.ErrorIs(t, err, ErrInvalidDirection, dir)
		assert.Equal(t, models.RoomID("theater"), s.Current())
		assert.Equal(t, []models.RoomID{"outside"}, s.History())
	}
}

func TestSession_BackEmpty(t *testing.T) {
	s, _ := newTestSession(t, time.Minute)

	_, err := s.Back()
	assert.ErrorIs(t, err, ErrEmptyHistory)
	assert.Equal(t, models.RoomID("outside"), s.Current())
	assert.Empty(t, s.History())
}

func TestSession_BackSwapsWithTop(t *testing.T) {
	s, _ := newTestSession(t, time.Minute)

	// outside -> main_building -> classroom, history [outside, main_building]
	_, err := s.Go("north")
	require.NoError(t, err)
	_, err = s.Go("east")
	require.NoError(t, err)
	require.Equal(t, []models.RoomID{"outside", "main_building"}, s.History())

	room, err := s.Back()
	require.NoError(t, err)
	assert.Equal(t, models.RoomID("main_building"), room.ID)
	assert.Equal(t, []models.RoomID{"outside", "classroom"}, s.History())

	room, err = s.Back()
	require.NoError(t, err)
	assert.Equal(t, models.RoomID("classroom"), room.ID)
	assert.Equal(t, []models.RoomID{"outside", "main_building"}, s.History())
}

func TestSession_BackFollowsHistoryNotExits(t *testing.T) {
	w := models.NewWorld()
	_, err := w.AddRoom("ledge", "on a narrow ledge")
	require.NoError(t, err)
	_, err = w.AddRoom("pit", "at the bottom of a pit")
	require.NoError(t, err)
	require.NoError(t, w.Connect("ledge", "jump", "pit"))

	s := NewSession(context.Background(), w, models.NewPlayer("ledge"), time.Minute)
	defer s.End(nil)

	_, err = s.Go("jump")
	require.NoError(t, err)
	assert.Empty(t, w.Room("pit").Exits())

	room, err := s.Back()
	require.NoError(t, err)
	assert.Equal(t, models.RoomID("ledge"), room.ID)
	assert.Equal(t, []models.RoomID{"pit"}, s.History())
}

func TestSession_Deadline(t *testing.T) {
	s, _ := newTestSession(t, 20*time.Millisecond)
	assert.NoError(t, s.Err())
	assert.WithinDuration(t, time.Now().Add(20*time.Millisecond), s.Deadline(), time.Second)

	waitDone(t, s.Done())
	assert.ErrorIs(t, s.Err(), ErrTimeUp)
	assert.Zero(t, s.Remaining())
}

func TestSession_End(t *testing.T) {
	s, _ := newTestSession(t, time.Minute)
	assert.Greater(t, s.Remaining(), time.Duration(0))

	s.End(ErrQuit)
	waitDone(t, s.Done())
	assert.ErrorIs(t, s.Err(), ErrQuit)

	// The first cause sticks.
	s.End(ErrTimeUp)
	assert.ErrorIs(t, s.Err(), ErrQuit)
	assert.ErrorIs(t, s.Context().Err(), context.Canceled)
}

func TestSession_ParentCancelled(t *testing.T) {
	w := newCampus(t)
	ctx, cancel := context.WithCancelCause(context.Background())
	s := NewSession(ctx, w, models.NewPlayer(w.Start().ID), time.Minute)
	defer s.End(nil)

	interrupted := errors.New("interrupted")
	cancel(interrupted)
	waitDone(t, s.Done())
	assert.ErrorIs(t, s.Err(), interrupted)
}

func TestSession_UniqueIDs(t *testing.T) {
	a, _ := newTestSession(t, time.Minute)
	b, _ := newTestSession(t, time.Minute)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}
