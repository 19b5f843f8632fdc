package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "preview error",
			code:    "E100",
			wantMsg: "Unknown preview",
			wantCat: CategoryPreview,
		},
		{
			name:    "config error",
			code:    "E120",
			wantMsg: "Config parse error",
			wantCat: CategoryConfig,
		},
		{
			name:    "export error",
			code:    "E151",
			wantMsg: "Publisher unavailable",
			wantCat: CategoryExport,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "flag %q requires a value", "--set")
	if err.Message != `flag "--set" requires a value` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Code != "" {
		t.Errorf("Code = %q, want empty", err.Code)
	}
}

func TestCosmosError_Error(t *testing.T) {
	err := New("E100")
	if got, want := err.Error(), "E100: Unknown preview"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err.Wrap(fmt.Errorf("lookup %q", "buton"))
	if got, want := err.Error(), `E100: Unknown preview: lookup "buton"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	plain := &CosmosError{ErrorTemplate: ErrorTemplate{Message: "test error"}}
	if plain.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "test error")
	}
}

func TestUnwrapAndFromError(t *testing.T) {
	sentinel := stderrors.New("disk full")
	err := FromError(fmt.Errorf("write index: %w", sentinel), "E150")

	if !stderrors.Is(err, sentinel) {
		t.Error("errors.Is should see the wrapped sentinel")
	}
	if err.Code != "E150" {
		t.Errorf("Code = %q, want E150", err.Code)
	}

	// An existing CosmosError keeps its code.
	again := FromError(fmt.Errorf("outer: %w", err), "E160")
	if again.Code != "E150" {
		t.Errorf("Code = %q, want E150", again.Code)
	}

	if FromError(nil, "E150") != nil {
		t.Error("FromError(nil) should be nil")
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("serve: %w", New("E160"))
	if !HasCode(err, "E160") {
		t.Error("HasCode(E160) = false")
	}
	if HasCode(err, "E100") {
		t.Error("HasCode(E100) = true")
	}
	if HasCode(stderrors.New("x"), "E160") {
		t.Error("plain errors carry no code")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E100").
		WithDetail(`no preview named "buton"`).
		Wrap(stderrors.New("lookup failed"))
	out := err.Format()

	for _, want := range []string{
		"ERROR E100: Unknown preview",
		`  no preview named "buton"`,
		"  Cause: lookup failed",
		"  Hint: Run `cosmos-docs list` to see the registered previews.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E121").WithDetail("server.port must be between 1 and 65535")

	var got map[string]string
	if e := json.Unmarshal([]byte(err.FormatJSON()), &got); e != nil {
		t.Fatalf("FormatJSON() is not JSON: %v", e)
	}
	if got["code"] != "E121" || got["category"] != "config" {
		t.Errorf("FormatJSON() = %v", got)
	}
	if got["detail"] != "server.port must be between 1 and 65535" {
		t.Errorf("detail = %q", got["detail"])
	}
}

func TestFprintPlainError(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Fprint(&buf, stderrors.New("boom"))
	if got := buf.String(); got != "\nERROR: boom\n\n" {
		t.Errorf("Fprint() = %q", got)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six", 9)
	want := []string{"one two", "three", "four five", "six"}
	if len(lines) != len(want) {
		t.Fatalf("wrapText() = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRegistryCodes(t *testing.T) {
	want := []string{"E100", "E101", "E120", "E121", "E141", "E150", "E151", "E160"}
	got := GetAllCodes()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("GetAllCodes() = %v, want %v", got, want)
	}

	Register("E199", ErrorTemplate{Category: CategoryCLI, Message: "test"})
	defer delete(registry, "E199")
	if tmpl, ok := GetTemplate("E199"); !ok || tmpl.Message != "test" {
		t.Error("Register() did not add the template")
	}
}
