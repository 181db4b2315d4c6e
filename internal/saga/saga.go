// Package saga coordinates the multi-service create and update flows for
// work requests. Each flow is an ordered sequence of synchronous downstream
// calls; committed steps may register a compensating action, and when a
// later step fails the recorded compensations are unwound in reverse order.
// There is no saga persistence: a crash mid-flow leaves whatever partial
// state was committed downstream, and recovery is manual.
package saga

import (
	"context"

	"wfh-backend/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Step identifies a position in a saga.
type Step int

const (
	StepInit Step = iota
	StepWorkRequest
	StepSchedule
	StepNotification
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepInit:
		return "init"
	case StepWorkRequest:
		return "work_request"
	case StepSchedule:
		return "schedule"
	case StepNotification:
		return "notification"
	default:
		return "done"
	}
}

// Compensator undoes a committed step.
type Compensator func(ctx context.Context) error

type committedStep struct {
	step Step
	undo Compensator
}

// Saga tracks the committed steps of one flow instance and their
// compensating actions.
type Saga struct {
	id        uuid.UUID
	name      string
	current   Step
	committed []committedStep
	log       *zap.Logger
}

// New starts a saga instance. The generated id correlates all log lines of
// one flow.
func New(name string, log *zap.Logger) *Saga {
	id := uuid.New()
	return &Saga{
		id:      id,
		name:    name,
		current: StepInit,
		log:     log.With(zap.String("saga", name), zap.String("saga_id", id.String())),
	}
}

// Run executes one step. On success the step is committed and undo (which
// may be nil) is recorded; on failure all previously recorded compensations
// are unwound in reverse order and the step's error is returned, unless a
// compensation itself fails, in which case a CompensationFailed error
// outranks it.
func (s *Saga) Run(ctx context.Context, step Step, run func(ctx context.Context) error, undo Compensator) error {
	if err := run(ctx); err != nil {
		s.log.Error("saga step failed", zap.Stringer("step", step), zap.Error(err))
		return s.unwind(ctx, step, err)
	}
	s.committed = append(s.committed, committedStep{step: step, undo: undo})
	s.current = step
	s.log.Info("saga step committed", zap.Stringer("step", step))
	return nil
}

// RunDetached executes a step whose failure is surfaced without unwinding
// anything. The notification step runs detached: a failure leaves the work
// request and schedule committed with no user-visible alert, a known gap
// bounded by client-side retry.
func (s *Saga) RunDetached(ctx context.Context, step Step, run func(ctx context.Context) error) error {
	if err := run(ctx); err != nil {
		s.log.Warn("detached saga step failed, prior steps remain committed",
			zap.Stringer("step", step), zap.Error(err))
		return err
	}
	s.committed = append(s.committed, committedStep{step: step})
	s.current = step
	s.log.Info("saga step committed", zap.Stringer("step", step))
	return nil
}

// Done marks the saga complete.
func (s *Saga) Done() {
	s.current = StepDone
	s.log.Info("saga complete")
}

func (s *Saga) unwind(ctx context.Context, failed Step, cause error) error {
	for i := len(s.committed) - 1; i >= 0; i-- {
		cs := s.committed[i]
		if cs.undo == nil {
			continue
		}
		if err := cs.undo(ctx); err != nil {
			s.log.Error("saga compensation failed, data is now inconsistent",
				zap.Stringer("failed_step", failed),
				zap.Stringer("compensated_step", cs.step),
				zap.Error(err))
			return apperr.CompensationFailed(
				"%s step failed (%s) and rolling back the %s step also failed (%s); manual remediation required",
				failed, apperr.From(cause).Message, cs.step, err)
		}
		s.log.Info("saga step compensated", zap.Stringer("step", cs.step))
	}
	return cause
}
