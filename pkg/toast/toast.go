package toast

import "context"

// EventName is the custom event a toast is dispatched as.
const EventName = "cosmos:toast"

// Type is the severity of a toast.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// Detail is the payload of a toast event. Clients read it as
// event.detail.
type Detail struct {
	Level   Type   `json:"level"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
}

// Emitter dispatches a named custom event to whoever shows the preview.
type Emitter interface {
	Emit(name string, detail any)
}

type EmitterFunc func(name string, detail any)

func (f EmitterFunc) Emit(name string, detail any) { f(name, detail) }

// Post emits d. A nil Emitter drops it.
func Post(e Emitter, d Detail) {
	if e != nil {
		e.Emit(EventName, d)
	}
}

func Show(e Emitter, level Type, message string) {
	Post(e, Detail{Level: level, Message: message})
}

func Success(e Emitter, message string) { Show(e, TypeSuccess, message) }
func Error(e Emitter, message string)   { Show(e, TypeError, message) }
func Warning(e Emitter, message string) { Show(e, TypeWarning, message) }
func Info(e Emitter, message string)    { Show(e, TypeInfo, message) }

// WithTitle shows a toast with a heading above the message.
func WithTitle(e Emitter, level Type, title, message string) {
	Post(e, Detail{Level: level, Title: title, Message: message})
}

// Notifier turns harness notifications into toasts of one level. The
// zero Level is TypeSuccess.
type Notifier struct {
	Emitter Emitter
	Level   Type
	Title   string
}

func (n Notifier) Notify(_ context.Context, message string) {
	level := n.Level
	if level == "" {
		level = TypeSuccess
	}
	Post(n.Emitter, Detail{Level: level, Title: n.Title, Message: message})
}
