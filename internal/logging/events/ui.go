package events

import (
	"github.com/atomicstack/settings-menu/internal/logging"
	"go.uber.org/zap"
)

type UITracer struct{}

var UI = UITracer{}

func (UITracer) MenuEnter(path, name string) {
	logging.Trace("menu.enter", zap.String("path", path), zap.String("name", name))
}

func (UITracer) MenuBack(path string, index int) {
	logging.Trace("menu.back", zap.String("path", path), zap.Int("index", index))
}

func (UITracer) MenuCursor(path string, index int) {
	logging.Trace("menu.cursor", zap.String("path", path), zap.Int("index", index))
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", zap.Int("width", width), zap.Int("height", height))
}

func (UITracer) Quit(reason string) {
	logging.Trace("ui.quit", zap.String("reason", reason))
}
