package protocol

// Type is the message discriminator.
type Type string

const (
	// Client to server.
	TypeEvent      Type = "event"
	TypeCopyResult Type = "copy-result"
	TypePing       Type = "ping"

	// Server to client. TypeEvent is shared: from the server it carries a
	// custom event such as a toast.
	TypePatch     Type = "patch"
	TypeClipboard Type = "clipboard"
	TypeError     Type = "error"
	TypePong      Type = "pong"
)

// ClientMessage is a decoded client to server message. Only the fields of
// its Type are meaningful.
type ClientMessage struct {
	Type Type `json:"type"`

	// event
	HID   string `json:"hid,omitempty"`
	Event string `json:"event,omitempty"`
	Seq   uint64 `json:"seq,omitempty"`

	// copy-result
	OK    bool   `json:"ok,omitempty"`
	Error string `json:"error,omitempty"`
}

// Patch replaces the outer HTML of the element with id Target.
type Patch struct {
	Type   Type   `json:"type"`
	Target string `json:"target"`
	HTML   string `json:"html"`
	Seq    uint64 `json:"seq"`
}

// NewPatch creates a patch message.
func NewPatch(target, html string, seq uint64) *Patch {
	return &Patch{Type: TypePatch, Target: target, HTML: html, Seq: seq}
}

// Clipboard asks the client to write Text to the system clipboard and to
// answer with a copy-result message.
type Clipboard struct {
	Type Type   `json:"type"`
	Text string `json:"text"`
}

// NewClipboard creates a clipboard message.
func NewClipboard(text string) *Clipboard {
	return &Clipboard{Type: TypeClipboard, Text: text}
}

// CustomEvent is re-dispatched by the client as a DOM CustomEvent on window.
type CustomEvent struct {
	Type   Type   `json:"type"`
	Name   string `json:"name"`
	Detail any    `json:"detail,omitempty"`
}

// NewCustomEvent creates a custom event message.
func NewCustomEvent(name string, detail any) *CustomEvent {
	return &CustomEvent{Type: TypeEvent, Name: name, Detail: detail}
}

// Pong answers a ping.
type Pong struct {
	Type Type `json:"type"`
}

// NewPong creates a pong message.
func NewPong() *Pong {
	return &Pong{Type: TypePong}
}
