package adapter

import (
	"context"
	"fmt"
)

// Phase is the state of one request/response cycle.
type Phase int

const (
	Idle Phase = iota
	Forwarding
	InFlight
	Mapping
	Done
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Forwarding:
		return "forwarding"
	case InFlight:
		return "in-flight"
	case Mapping:
		return "mapping"
	case Done:
		return "done"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Cycle drives one operation through Idle -> Forwarding -> InFlight ->
// Mapping -> Done. The adapter is selected once, at Begin. A Cycle belongs
// to one request and is not safe for concurrent use.
type Cycle struct {
	adapter Adapter
	op      Operation
	phase   Phase
}

// Begin starts the cycle of op.
func (d *Dispatcher) Begin(op Operation) *Cycle {
	return &Cycle{adapter: d.Dispatch(op.Name), op: op}
}

// Phase returns the current phase.
func (c *Cycle) Phase() Phase {
	return c.phase
}

// Adapter returns the adapter selected for the operation.
func (c *Cycle) Adapter() Adapter {
	return c.adapter
}

// Forward transforms the operation and moves the cycle to InFlight. On
// error the cycle ends and the operation must not be sent.
func (c *Cycle) Forward(ctx context.Context) (Operation, error) {
	if c.phase != Idle {
		return Operation{}, fmt.Errorf("%w: forward in %s", ErrInvalidPhase, c.phase)
	}
	c.phase = Forwarding

	out, err := c.adapter.Forward(ctx, c.op)
	if err != nil {
		c.phase = Done
		return Operation{}, err
	}

	c.op = out
	c.phase = InFlight
	return out, nil
}

// Map transforms the response and ends the cycle.
func (c *Cycle) Map(ctx context.Context, resp Response) (Response, error) {
	if c.phase != InFlight {
		return Response{}, fmt.Errorf("%w: map in %s", ErrInvalidPhase, c.phase)
	}
	c.phase = Mapping

	out := c.adapter.Map(ctx, resp)

	c.phase = Done
	return out, nil
}

// Abort ends the cycle without mapping, e.g. after a transport failure.
func (c *Cycle) Abort() {
	c.phase = Done
}
