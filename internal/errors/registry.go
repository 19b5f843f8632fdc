package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Preview errors (E100-E119)

	"E100": {
		Category:   CategoryPreview,
		Message:    "Unknown preview",
		Detail:     "No preview is registered under this name.",
		Suggestion: "Run `cosmos-docs list` to see the registered previews.",
	},
	"E101": {
		Category: CategoryPreview,
		Message:  "Invalid control schema",
		Detail:   "Every control needs a label, a unique name and at least one option with a unique value.",
	},

	// Config errors (E120-E139)

	"E120": {
		Category:   CategoryConfig,
		Message:    "Config parse error",
		Detail:     "The configuration file is not valid JSON or YAML.",
		Suggestion: "Check the file for syntax errors such as trailing commas or bad indentation.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "A configuration value is out of range or missing.",
	},

	// CLI errors (E140-E149)

	"E141": {
		Category:   CategoryCLI,
		Message:    "Config file not found",
		Detail:     "The configuration file given with --config does not exist.",
		Suggestion: "Omit --config to use cosmos.json, cosmos.yaml or the built-in defaults.",
	},

	// Export errors (E150-E159)

	"E150": {
		Category: CategoryExport,
		Message:  "Export failed",
		Detail:   "A preview could not be rendered or written.",
	},
	"E151": {
		Category:   CategoryExport,
		Message:    "Publisher unavailable",
		Detail:     "The export destination could not be initialised.",
		Suggestion: "Check the S3 bucket, region and credentials, or export to a directory instead.",
	},

	// Server errors (E160-E179)

	"E160": {
		Category:   CategoryServer,
		Message:    "Server start failed",
		Detail:     "The preview server could not listen on the configured address.",
		Suggestion: "Choose another port with --port or stop the process using it.",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
