package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// MaxMessageSize bounds a single client message in bytes.
const MaxMessageSize = 4 * 1024

// MaxHIDLength bounds the hydration id of an event.
const MaxHIDLength = 32

var (
	// ErrMessageTooLarge is returned for messages over MaxMessageSize.
	ErrMessageTooLarge = errors.New("protocol: message too large")

	// ErrInvalidMessage is wrapped by every decoding failure.
	ErrInvalidMessage = errors.New("protocol: invalid message")
)

// DecodeClient parses and validates a client message.
func DecodeClient(data []byte) (*ClientMessage, error) {
	if len(data) > MaxMessageSize {
		return nil, ErrMessageTooLarge
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var msg ClientMessage
	if err := dec.Decode(&msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data", ErrInvalidMessage)
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Validate checks that the fields required by the message type are set.
func (m *ClientMessage) Validate() error {
	switch m.Type {
	case TypeEvent:
		if m.HID == "" {
			return fmt.Errorf("%w: event without hid", ErrInvalidMessage)
		}
		if len(m.HID) > MaxHIDLength {
			return fmt.Errorf("%w: hid too long", ErrInvalidMessage)
		}
		if m.Event == "" {
			return fmt.Errorf("%w: event without name", ErrInvalidMessage)
		}
	case TypeCopyResult:
		if m.OK && m.Error != "" {
			return fmt.Errorf("%w: successful copy-result with error", ErrInvalidMessage)
		}
	case TypePing:
	case "":
		return fmt.Errorf("%w: missing type", ErrInvalidMessage)
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidMessage, m.Type)
	}
	return nil
}

// Encode serializes a server message. HTML is not escaped: patches carry
// markup that the client inserts as-is.
func Encode(msg any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(msg); err != nil {
		return nil, fmt.Errorf("protocol: encode: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
