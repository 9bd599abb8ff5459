package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycle_PhaseOrder(t *testing.T) {
	d := newTestDispatcher(t, newTestKeys(t), Options{})
	ctx := context.Background()

	c := d.Begin(Operation{Name: SearchName, Variables: map[string]any{"name": "Bob"}})
	assert.Equal(t, Idle, c.Phase())
	assert.Equal(t, SearchName, c.Adapter().Name())

	_, err := c.Map(ctx, Response{})
	assert.ErrorIs(t, err, ErrInvalidPhase, "map before forward")

	out, err := c.Forward(ctx)
	require.NoError(t, err)
	assert.Contains(t, out.Variables, HmacsKey)
	assert.Equal(t, InFlight, c.Phase())

	_, err = c.Forward(ctx)
	assert.ErrorIs(t, err, ErrInvalidPhase, "forward twice")

	_, err = c.Map(ctx, Response{Data: map[string]any{}})
	require.NoError(t, err)
	assert.Equal(t, Done, c.Phase())

	_, err = c.Map(ctx, Response{})
	assert.ErrorIs(t, err, ErrInvalidPhase, "map twice")
}

func TestCycle_ForwardErrorEndsCycle(t *testing.T) {
	d := newTestDispatcher(t, newTestKeys(t), Options{Strict: true})
	ctx := context.Background()

	c := d.Begin(Operation{
		Name:      CreateContactName,
		Variables: map[string]any{"createContactInput": map[string]any{"name": 1}},
	})
	_, err := c.Forward(ctx)
	assert.ErrorIs(t, err, ErrPlaintextLeak)
	assert.Equal(t, Done, c.Phase())
}

func TestCycle_Abort(t *testing.T) {
	d := newTestDispatcher(t, newTestKeys(t), Options{})
	c := d.Begin(Operation{Name: "unknownOp"})

	_, err := c.Forward(context.Background())
	require.NoError(t, err)
	c.Abort()

	_, err = c.Map(context.Background(), Response{})
	assert.ErrorIs(t, err, ErrInvalidPhase)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "in-flight", InFlight.String())
	assert.Equal(t, "done", Done.String())
	assert.Equal(t, "phase(42)", Phase(42).String())
}
