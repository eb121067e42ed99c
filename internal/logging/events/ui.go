package events

import "github.com/atomicstack/menu-maker/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Cursor(nodeID string, index int) {
	logging.Trace("menu.cursor", map[string]interface{}{"node": nodeID, "index": index})
}

func (UITracer) Toggle(nodeID string, expanded bool) {
	logging.Trace("menu.toggle", map[string]interface{}{"node": nodeID, "expanded": expanded})
}

func (UITracer) Relocate(from, to string) {
	logging.Trace("menu.cursor-relocate", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Reload(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("menu.reload", payload)
}

func (FilterTracer) Enter() {
	logging.Trace("filter.enter", nil)
}

func (FilterTracer) Exit(query string) {
	logging.Trace("filter.exit", map[string]interface{}{"query": query})
}

func (FilterTracer) Query(query string, matches int) {
	logging.Trace("filter.query", map[string]interface{}{"query": query, "matches": matches})
}
