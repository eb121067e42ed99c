package events

import "github.com/atomicstack/menu-maker/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) MenuLoaded(path string, nodes int) {
	logging.Trace("app.menu-loaded", map[string]interface{}{"path": path, "nodes": nodes})
}

func (AppTracer) Quit() {
	logging.Trace("app.quit", nil)
}
