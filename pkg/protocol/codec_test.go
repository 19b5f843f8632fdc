package protocol

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestDecodeClient(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ClientMessage
		wantErr error
	}{
		{
			name:  "event",
			input: `{"type":"event","hid":"h3","event":"click","seq":7}`,
			want:  ClientMessage{Type: TypeEvent, HID: "h3", Event: "click", Seq: 7},
		},
		{
			name:  "copy failure",
			input: `{"type":"copy-result","ok":false,"error":"NotAllowedError"}`,
			want:  ClientMessage{Type: TypeCopyResult, Error: "NotAllowedError"},
		},
		{
			name:  "copy success",
			input: `{"type":"copy-result","ok":true}`,
			want:  ClientMessage{Type: TypeCopyResult, OK: true},
		},
		{
			name:  "ping",
			input: `{"type":"ping"}`,
			want:  ClientMessage{Type: TypePing},
		},
		{name: "not json", input: `hello`, wantErr: ErrInvalidMessage},
		{name: "missing type", input: `{}`, wantErr: ErrInvalidMessage},
		{name: "unknown type", input: `{"type":"select"}`, wantErr: ErrInvalidMessage},
		{name: "unknown field", input: `{"type":"ping","x":1}`, wantErr: ErrInvalidMessage},
		{name: "event without hid", input: `{"type":"event","event":"click"}`, wantErr: ErrInvalidMessage},
		{name: "event without name", input: `{"type":"event","hid":"h1"}`, wantErr: ErrInvalidMessage},
		{name: "trailing data", input: `{"type":"ping"}{"type":"ping"}`, wantErr: ErrInvalidMessage},
		{
			name:    "hid too long",
			input:   `{"type":"event","event":"click","hid":"` + strings.Repeat("h", MaxHIDLength+1) + `"}`,
			wantErr: ErrInvalidMessage,
		},
		{
			name:    "contradictory copy-result",
			input:   `{"type":"copy-result","ok":true,"error":"x"}`,
			wantErr: ErrInvalidMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeClient([]byte(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeClient() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeClient() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("DecodeClient() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestDecodeClientTooLarge(t *testing.T) {
	big := make([]byte, MaxMessageSize+1)
	if _, err := DecodeClient(big); !errors.Is(err, ErrMessageTooLarge) {
		t.Errorf("error = %v, want ErrMessageTooLarge", err)
	}
}

func TestEncodeServerMessages(t *testing.T) {
	tests := []struct {
		name string
		msg  any
		want string
	}{
		{"patch", NewPatch("cp-1", "<div></div>", 3), `{"type":"patch","target":"cp-1","html":"<div></div>","seq":3}`},
		{"clipboard", NewClipboard("x"), `{"type":"clipboard","text":"x"}`},
		{"event", NewCustomEvent("cosmos:toast", map[string]any{"level": "success"}), `{"type":"event","name":"cosmos:toast","detail":{"level":"success"}}`},
		{"error", NewError(CodeHandlerNotFound, "no handler"), `{"type":"error","code":"HandlerNotFound","message":"no handler"}`},
		{"fatal", NewFatalError(CodeSessionClosed, "bye"), `{"type":"error","code":"SessionClosed","message":"bye","fatal":true}`},
		{"invalid", NewError(CodeInvalidMessage, "bad frame"), `{"type":"error","code":"InvalidMessage","message":"bad frame"}`},
		{"pong", NewPong(), `{"type":"pong"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.msg)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Encode() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestEncodeUnsupported(t *testing.T) {
	if _, err := Encode(NewCustomEvent("x", func() {})); err == nil {
		t.Error("expected error for unsupported detail")
	}
}

func TestErrorMessageError(t *testing.T) {
	em := NewError(CodeHandlerPanic, "boom")
	var err error = em
	if err.Error() != "HandlerPanic: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	var decoded ErrorMessage
	data, _ := Encode(em)
	if err := json.Unmarshal(data, &decoded); err != nil || decoded.Code != CodeHandlerPanic {
		t.Errorf("round trip = %+v, %v", decoded, err)
	}
}

func TestDecodeFailureReportsInvalidMessageCode(t *testing.T) {
	_, err := DecodeClient([]byte(`{"type":"event"}`))
	if !errors.Is(err, ErrInvalidMessage) {
		t.Fatalf("error = %v, want ErrInvalidMessage", err)
	}

	data, err := Encode(NewError(CodeInvalidMessage, err.Error()))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	var decoded ErrorMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Code != CodeInvalidMessage || decoded.Code.String() != "InvalidMessage" {
		t.Errorf("code = %q, want InvalidMessage", decoded.Code)
	}
}
