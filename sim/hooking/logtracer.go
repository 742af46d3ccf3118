package hooking

import (
	"log"
)

// LogTracer prints every hook invocation as one line of a logger.
type LogTracer struct {
	*log.Logger
}

// NewLogTracer returns a LogTracer that writes into the logger.
func NewLogTracer(logger *log.Logger) *LogTracer {
	h := new(LogTracer)
	h.Logger = logger

	return h
}

// Func writes the hook information into the logger.
func (h *LogTracer) Func(ctx HookCtx) {
	h.Logger.Printf("%s %s: %v", DomainName(ctx), ctx.Pos, ctx.Item)
}
