package tui

import (
	"context"
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
)

// osc52Clipboard copies by writing an OSC 52 sequence to the terminal.
type osc52Clipboard struct {
	out io.Writer
}

// WriteText implements preview.Clipboard.
func (c osc52Clipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	} else if os.Getenv("STY") != "" {
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(c.out)
	return err
}
