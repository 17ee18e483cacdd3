package schedule_test

import (
	"context"
	"testing"

	"github.com/dt-bots/kotori/pkg/service/schedule"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	noop := func(ctx context.Context) error { return nil }

	t.Run("valid expressions", func(t *testing.T) {
		for _, expr := range []string{"0 9 * * *", "* * * * *", "*/5 * * * 1-5"} {
			_, err := schedule.New(expr, noop)
			gt.NoError(t, err)
		}
	})

	t.Run("invalid expressions", func(t *testing.T) {
		for _, expr := range []string{"", "not a cron", "99 99 * * *"} {
			_, err := schedule.New(expr, noop)
			gt.Error(t, err)
		}
	})
}
