package preview

import (
	"strings"
	"testing"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single attribute",
			in:   `<Button variant="text">Button</Button>`,
			want: `&lt;Button <span class="attr-name">variant</span>=&quot;text&quot;&gt;Button&lt;/Button&gt;`,
		},
		{
			name: "multiline",
			in:   "<Switch\n  color=\"primary\"\n  disabled\n/>",
			want: "&lt;Switch\n  <span class=\"attr-name\">color</span>=&quot;primary&quot;\n  disabled\n/&gt;",
		},
		{
			name: "no attributes",
			in:   "<Button>Button</Button>",
			want: "&lt;Button&gt;Button&lt;/Button&gt;",
		},
		{
			name: "requires leading whitespace",
			in:   `a=b c=d`,
			want: `a=b <span class="attr-name">c</span>=d`,
		},
		{
			name: "hyphenated name left plain",
			in:   `<Switch aria-label="x" color="y">`,
			want: `&lt;Switch aria-label=&quot;x&quot; <span class="attr-name">color</span>=&quot;y&quot;&gt;`,
		},
		{
			name: "ampersand",
			in:   `<p title="a&b">`,
			want: `&lt;p <span class="attr-name">title</span>=&quot;a&amp;b&quot;&gt;`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Highlight(tt.in); got != tt.want {
				t.Errorf("Highlight(%q)\n got %q\nwant %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHighlightDeterministic(t *testing.T) {
	in := `<Select labelId="demo" value="opcion1" label="Selecciona una opción">`
	first := Highlight(in)
	for i := 0; i < 5; i++ {
		if got := Highlight(in); got != first {
			t.Fatalf("run %d differs: %q vs %q", i, got, first)
		}
	}
}

func TestHighlightSafety(t *testing.T) {
	inputs := []string{
		`<Button variant="contained" color="primary">Button</Button>`,
		`<script>alert(1)</script>`,
		`x <span class="attr-name">y</span>= <b>`,
		"<<>>\n<a b=c d=e>",
	}
	marker := `<span class="attr-name">`
	for _, in := range inputs {
		out := Highlight(in)
		stripped := strings.ReplaceAll(out, marker, "")
		stripped = strings.ReplaceAll(stripped, "</span>", "")
		if strings.ContainsAny(stripped, "<>") {
			t.Errorf("Highlight(%q) leaves unescaped markup: %q", in, out)
		}
		if n := strings.Count(in, "<"); strings.Count(out, "&lt;") != n {
			t.Errorf("Highlight(%q) escaped %d '<', want %d", in, strings.Count(out, "&lt;"), n)
		}
	}
}

func TestHighlightWithCustomMarker(t *testing.T) {
	m := Marker{
		Emphasize: func(name string) string { return "[" + name + "]" },
	}
	got := HighlightWith(`<Button size="small">`, m)
	want := `<Button [size]="small">`
	if got != want {
		t.Errorf("HighlightWith() = %q, want %q", got, want)
	}

	if got := HighlightWith("a b=c", Marker{}); got != "a b=c" {
		t.Errorf("zero Marker should be the identity, got %q", got)
	}
}
