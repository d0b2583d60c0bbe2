package events

import (
	"github.com/atomicstack/settings-menu/internal/logging"
	"go.uber.org/zap"
)

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", zap.Any("payload", payload))
}

func (AppTracer) Exit(err error) {
	logging.Trace("app.exit", zap.NamedError("error", err))
}
