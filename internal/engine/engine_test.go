package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/zuul/internal/models"
)

func newTestEngine(t *testing.T, limit time.Duration) *Engine {
	t.Helper()
	e, err := NewEngine(context.Background(), newCampus(t), Options{TimeLimit: limit})
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestNewEngine_Errors(t *testing.T) {
	_, err := NewEngine(context.Background(), models.NewWorld(), Options{TimeLimit: time.Minute})
	assert.ErrorIs(t, err, models.ErrNoStartRoom)

	_, err = NewEngine(context.Background(), newCampus(t), Options{})
	assert.ErrorContains(t, err, "time limit must be positive")
}

func TestEngine_Welcome(t *testing.T) {
	e := newTestEngine(t, time.Minute)

	welcome := e.Welcome()
	assert.True(t, strings.HasPrefix(welcome, "Welcome to the World of Zuul!\n"))
	assert.Contains(t, welcome, "Type 'help' if you need help.")
	assert.True(t, strings.HasSuffix(welcome, outsideDescription))
}

func TestEngine_Transcript(t *testing.T) {
	e := newTestEngine(t, time.Minute)

	e.ProcessTurn(Command{Word: CmdGo, Argument: "east"})
	e.ProcessTurn(Command{Word: CmdQuit})

	assert.Equal(t, []TurnRecord{
		{Input: "go east", Output: theaterDescription, Status: "PLAYING"},
		{Input: "quit", Output: GoodbyeMessage, Status: "ENDED"},
	}, e.Transcript())
	assert.Equal(t, GoodbyeMessage, e.EndMessage())
}

func TestEngine_PickUpDrop(t *testing.T) {
	e := newTestEngine(t, time.Minute)
	ring := models.NewItem("Enchanted Ring", "A mysterious ring with a glow to it", 0.5)

	assert.ErrorIs(t, e.Drop("Enchanted Ring"), ErrItemNotHeld)
	assert.ErrorIs(t, e.PickUp("Wood Sword"), ErrItemNotPresent)

	require.NoError(t, e.PickUp("Enchanted Ring"))
	assert.Equal(t, []models.Item{ring}, e.Inventory())
	assert.False(t, e.CurrentRoom().HasItem(ring))

	e.ProcessTurn(Command{Word: CmdGo, Argument: "east"})
	require.NoError(t, e.Drop("Enchanted Ring"))
	assert.Empty(t, e.Inventory())
	assert.True(t, e.CurrentRoom().HasItem(ring))

	res := e.ProcessTurn(Command{Word: CmdLook})
	assert.Contains(t, res.Output, " - A mysterious ring with a glow to it")
}

func TestEngine_PickUpDropUnknownRoom(t *testing.T) {
	e := newTestEngine(t, time.Minute)
	require.NoError(t, e.PickUp("Enchanted Ring"))
	e.player.Room = "nowhere"

	assert.ErrorIs(t, e.PickUp("Enchanted Ring"), models.ErrUnknownRoom)
	assert.ErrorIs(t, e.Drop("Enchanted Ring"), models.ErrUnknownRoom)
	assert.Len(t, e.Inventory(), 1)
}

func TestEngine_TimeUp(t *testing.T) {
	e := newTestEngine(t, 10*time.Millisecond)

	waitDone(t, e.Done())
	assert.Equal(t, TimeUpMessage, e.EndMessage())
	assert.ErrorIs(t, e.PickUp("Enchanted Ring"), ErrSessionEnded)

	res := e.ProcessTurn(Command{Word: CmdLook})
	assert.ErrorIs(t, res.Err, ErrSessionEnded)
	assert.Equal(t, StateEnded, e.State())
}

func TestEngine_CloseEndsSession(t *testing.T) {
	e := newTestEngine(t, time.Minute)
	e.Close()

	waitDone(t, e.Done())
	assert.ErrorIs(t, e.Session().Err(), context.Canceled)
}
