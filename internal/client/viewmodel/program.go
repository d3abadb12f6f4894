package viewmodel

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Program runs Update and its commands one message at a time, so a command's
// follow-up (e.g. the refresh after a delete) completes before the next
// dispatched message is processed. mu only guards state; commands run
// without it, so State stays readable (Loading) during a call.
type Program struct {
	mu     sync.Mutex
	state  State
	turn   chan struct{}
	model  *Model
	logger *slog.Logger
}

func NewProgram(ctx context.Context, model *Model, logger *slog.Logger) *Program {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Program{model: model, logger: logger, turn: make(chan struct{}, 1)}
	s, cmd := model.Init()
	p.set(s)
	p.run(ctx, s, cmd)
	return p
}

// NewIdleProgram starts without the initial load.
func NewIdleProgram(model *Model, logger *slog.Logger) *Program {
	if logger == nil {
		logger = slog.Default()
	}
	return &Program{
		model:  model,
		state:  State{Form: model.blankForm()},
		turn:   make(chan struct{}, 1),
		logger: logger,
	}
}

// Dispatch waits for earlier messages to finish. If ctx ends first the
// message is dropped and the current state returned.
func (p *Program) Dispatch(ctx context.Context, msg Msg) State {
	select {
	case p.turn <- struct{}{}:
	case <-ctx.Done():
		p.logger.Debug("viewmodel message dropped", "msg", fmt.Sprintf("%T", msg), "error", ctx.Err())
		return p.State()
	}
	defer func() { <-p.turn }()

	s, cmd := p.model.Update(p.State(), msg)
	p.set(s)
	return p.run(ctx, s, cmd)
}

func (p *Program) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Program) set(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

func (p *Program) run(ctx context.Context, s State, cmd Cmd) State {
	for cmd != nil {
		msg := cmd(ctx)
		p.logger.Debug("viewmodel message", "msg", fmt.Sprintf("%T", msg))
		s, cmd = p.model.Update(s, msg)
		p.set(s)
	}
	return s
}
