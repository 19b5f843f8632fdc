// Package tui is a terminal playground for previews. It mounts the same
// harness the web host uses and renders the example as HTML, the
// highlighted code and the controls side by side.
//
// Copying writes an OSC 52 sequence, which most terminals (and tmux with
// set-clipboard on) forward to the system clipboard.
package tui
