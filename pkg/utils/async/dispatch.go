package async

import (
	"context"
	"runtime/debug"

	"github.com/dt-bots/kotori/pkg/domain/types"
	"github.com/dt-bots/kotori/pkg/utils/apperr"
	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs a handler on a detached goroutine so the webhook response can
// be returned immediately. The goroutine gets a fresh background context that
// keeps the request logger, so cancellation of the HTTP request does not kill
// in-flight work. Panics are recovered and logged; the handler's error is
// logged, never propagated.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := detach(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			apperr.Handle(newCtx, err)
		}
	}()
}

// detach builds a background context carrying the logger from ctx, annotated
// with a dispatch ID for log correlation.
func detach(ctx context.Context) context.Context {
	logger := ctxlog.From(ctx).With("dispatch_id", types.NewDispatchID().String())
	return ctxlog.With(context.Background(), logger)
}
