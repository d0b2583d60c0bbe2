package events

import (
	"github.com/atomicstack/settings-menu/internal/logging"
	"go.uber.org/zap"
)

type EditTracer struct{}

var Edit = EditTracer{}

func (EditTracer) Start(path, value string) {
	logging.Trace("edit.start", zap.String("path", path), zap.String("value", value))
}

func (EditTracer) Insert(path, text string, cursor int) {
	logging.Trace("edit.insert", zap.String("path", path), zap.String("text", text), zap.Int("cursor", cursor))
}

func (EditTracer) Delete(path, text string, cursor int) {
	logging.Trace("edit.delete", zap.String("path", path), zap.String("text", text), zap.Int("cursor", cursor))
}

func (EditTracer) Cursor(path string, cursor int) {
	logging.Trace("edit.cursor", zap.String("path", path), zap.Int("cursor", cursor))
}

func (EditTracer) Commit(path, value string) {
	logging.Trace("edit.commit", zap.String("path", path), zap.String("value", value))
}

func (EditTracer) Cancel(path string) {
	logging.Trace("edit.cancel", zap.String("path", path))
}
