package events

import "github.com/atomicstack/menu-maker/internal/logging"

type ExecTracer struct{}

var Exec = ExecTracer{}

func (ExecTracer) Start(label, command string) {
	logging.Trace("exec.start", map[string]interface{}{"label": label, "command": command})
}

func (ExecTracer) Finish(label string, exitCode int, err error) {
	payload := map[string]interface{}{"label": label, "exitCode": exitCode}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("exec.finish", payload)
}
