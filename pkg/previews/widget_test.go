package previews_test

import (
	"context"
	"strings"
	"testing"

	"github.com/cosmos-docs/livepreview/pkg/preview"
	"github.com/cosmos-docs/livepreview/pkg/previews"
	"github.com/cosmos-docs/livepreview/pkg/theme"
	"github.com/cosmos-docs/livepreview/pkg/vtest"
)

func mountWidget(t *testing.T, def previews.Definition, opts ...preview.Option) *vtest.Widget {
	t.Helper()
	h, err := def.Mount(theme.Light, opts...)
	if err != nil {
		t.Fatalf("Mount(%s): %v", def.Name, err)
	}
	return vtest.Mount(t, h)
}

func TestButtonWidgetSelectUpdatesPreviewAndCode(t *testing.T) {
	w := mountWidget(t, previews.ButtonPreview)

	w.Select("variant", "outlined")
	w.Select("size", "large")

	html := w.HTML()
	if !strings.Contains(html, "galaxy-button--outlined") || !strings.Contains(html, "galaxy-button--large") {
		t.Errorf("preview not updated: %s", html)
	}
	want := `<Button variant="outlined" color="primary" size="large">Button</Button>`
	if got := w.Harness().Code(); got != want {
		t.Errorf("Code() = %q, want %q", got, want)
	}
}

func TestButtonWidgetPanels(t *testing.T) {
	w := mountWidget(t, previews.ButtonPreview)
	id := w.Harness().ID()

	w.Click(`aria-controls="` + id + `-controls"`)
	if strings.Contains(w.HTML(), `id="`+id+`-controls"`) {
		t.Error("controls panel still rendered")
	}
	// the selection survives hiding the panel
	w.Click(`aria-controls="` + id + `-controls"`)
	if !strings.Contains(w.HTML(), `value="contained"`) {
		t.Error("controls panel not restored")
	}
}

type recordingClipboard struct{ text string }

func (c *recordingClipboard) WriteText(_ context.Context, text string) error {
	c.text = text
	return nil
}

func TestButtonWidgetCopy(t *testing.T) {
	clip := &recordingClipboard{}
	var notified string
	w := mountWidget(t, previews.ButtonPreview,
		preview.WithClipboard(clip),
		preview.WithNotifier(preview.NotifierFunc(func(_ context.Context, msg string) { notified = msg })),
	)

	w.Select("disabled", "true")
	// the copy button is the only toolbar button without aria-controls
	w.Click(`button type="button" data-on-click="true"`)

	if clip.text != w.Harness().Code() {
		t.Errorf("clipboard = %q, want %q", clip.text, w.Harness().Code())
	}
	if notified != preview.DefaultLabels.Copied {
		t.Errorf("notification = %q", notified)
	}
}

func TestSwitchWidgetClick(t *testing.T) {
	w := mountWidget(t, previews.SwitchPreview)

	w.Click(`role="switch"`)
	if !strings.Contains(w.HTML(), "Desactivado") {
		t.Errorf("switch did not flip: %s", w.HTML())
	}

	w.Select("color", "secondary")
	if !strings.Contains(w.HTML(), "Desactivado") {
		t.Error("selecting an option reset the switch")
	}
}
