package safego

import (
	"context"
	"fmt"
	"runtime/debug"

	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

// Execute runs the given function in a new goroutine, recovering from any
// panic inside it. Panics are logged with the goroutine name and a stack
// trace instead of taking the whole client down; background work such as
// cart synchronization is fire-and-forget and must never crash the caller.
func Execute(ctx context.Context, logger domain.Logger, goroutineName string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				// Log against a fresh context if the original one is done.
				logCtx := ctx
				if ctx.Err() != nil {
					logCtx = context.Background()
				}
				logger.Error(logCtx, fmt.Sprintf("Panic recovered in goroutine: %s", goroutineName),
					"panic_info", fmt.Sprintf("%v", r),
					"stacktrace", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
