package schedule

import (
	"context"
	"time"

	"github.com/adhocore/gronx"
	"github.com/dt-bots/kotori/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Job is a unit of scheduled work
type Job func(ctx context.Context) error

// Service runs one cron-style job in-process. It replaces the external
// scheduler hook the bot used to rely on: the push runs wherever the process
// runs, with the same fire-and-forget semantics as webhook dispatch.
type Service struct {
	expr string
	job  Job
	tick time.Duration
}

// New creates a schedule service. The expression uses standard 5-field cron
// syntax.
func New(expr string, job Job) (*Service, error) {
	if !gronx.New().IsValid(expr) {
		return nil, goerr.New("invalid cron expression", goerr.V("expr", expr))
	}
	return &Service{
		expr: expr,
		job:  job,
		tick: time.Minute,
	}, nil
}

// Run blocks until ctx is cancelled, dispatching the job whenever the
// expression is due. Ticks are aligned to minute boundaries so a due minute
// is never checked twice.
func (s *Service) Run(ctx context.Context) {
	logger := ctxlog.From(ctx)
	logger.Info("schedule started", "expr", s.expr)

	g := gronx.New()
	timer := time.NewTicker(s.tick)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("schedule stopped")
			return
		case now := <-timer.C:
			due, err := g.IsDue(s.expr, now.Truncate(time.Minute))
			if err != nil {
				logger.Error("failed to evaluate cron expression", "error", err)
				continue
			}
			if due {
				async.Dispatch(ctx, s.job)
			}
		}
	}
}
