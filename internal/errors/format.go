package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const detailWidth = 70

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	codeStyle  = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	causeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	colorEnabled = true
)

func DisableColors() { colorEnabled = false }
func EnableColors()  { colorEnabled = true }

func paint(s lipgloss.Style, text string) string {
	if colorEnabled {
		return s.Render(text)
	}
	return text
}

// Format renders the error as a block for the terminal: a headline, the
// wrapped detail, then the cause and hint when present.
func (e *CosmosError) Format() string {
	var b strings.Builder
	b.WriteString("\n")
	if e.Code == "" {
		b.WriteString(paint(errorStyle, "ERROR: "))
	} else {
		b.WriteString(paint(errorStyle, "ERROR ") + paint(codeStyle, e.Code+": "))
	}
	b.WriteString(e.Message + "\n\n")

	if lines := wrapText(e.Detail, detailWidth); len(lines) > 0 {
		for _, l := range lines {
			b.WriteString("  " + l + "\n")
		}
		b.WriteString("\n")
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s%s\n\n", paint(causeStyle, "Cause: "), e.Wrapped)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s%s\n\n", paint(hintStyle, "Hint: "), e.Suggestion)
	}
	return b.String()
}

type jsonError struct {
	Code       string   `json:"code,omitempty"`
	Category   Category `json:"category"`
	Message    string   `json:"message"`
	Detail     string   `json:"detail,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
	Cause      string   `json:"cause,omitempty"`
}

// FormatJSON renders the error as one JSON object.
func (e *CosmosError) FormatJSON() string {
	out := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
	}
	if e.Wrapped != nil {
		out.Cause = e.Wrapped.Error()
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Sprintf(`{"message":%q}`, e.Message)
	}
	return string(data)
}

// wrapText breaks text on spaces into lines of at most width bytes. Words
// longer than width get a line of their own.
func wrapText(text string, width int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) > width:
			lines = append(lines, line)
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// Fprint writes err to w, using Format when err wraps a CosmosError.
func Fprint(w io.Writer, err error) {
	if ce := (*CosmosError)(nil); stderrors.As(err, &ce) {
		fmt.Fprint(w, ce.Format())
		return
	}
	fmt.Fprintf(w, "\n%s %s\n\n", paint(errorStyle, "ERROR:"), err)
}

func PrintError(err error) { Fprint(os.Stderr, err) }
