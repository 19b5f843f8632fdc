// Package protocol defines the JSON messages exchanged between the thin
// client and a live preview session over a WebSocket.
//
// Every message is a single JSON object with a "type" discriminator.
//
// # Client to server
//
//	{"type":"event","hid":"h3","event":"click","seq":4}
//	{"type":"copy-result","ok":false,"error":"NotAllowedError"}
//	{"type":"ping"}
//
// Interactive elements carry a hydration id (data-hid) assigned during
// rendering. An event names the element and the DOM event; the session
// looks up the handler registered for that pair in its last render.
//
// # Server to client
//
//	{"type":"patch","target":"cp-1a2b","html":"<div ...>","seq":4}
//	{"type":"clipboard","text":"<Button ...>"}
//	{"type":"event","name":"cosmos:toast","detail":{...}}
//	{"type":"error","code":"HandlerNotFound","message":"..."}
//	{"type":"pong"}
//
// A patch replaces the outer HTML of the widget. Its seq is the sequence
// number of the event that caused it; the client drops events that were
// produced against an older patch.
package protocol
