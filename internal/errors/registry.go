package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E100-E119)
	// ============================================

	"E100": {
		Category:   CategoryConfig,
		Message:    "Config file not found",
		Suggestion: "Create a showcase.json or pass --config with the correct path.",
	},
	"E101": {
		Category:   CategoryConfig,
		Message:    "Invalid config syntax",
		Suggestion: "Check the file for trailing commas or bad indentation.",
	},
	"E102": {
		Category:   CategoryConfig,
		Message:    "Invalid config value",
		Suggestion: "See the config reference for allowed values.",
	},
	"E103": {
		Category:   CategoryConfig,
		Message:    "Unsupported config format",
		Suggestion: "Use a .json, .yaml or .yml file.",
	},

	// ============================================
	// Catalog Errors (E120-E139)
	// ============================================

	"E120": {
		Category:   CategoryCatalog,
		Message:    "Catalog file unreadable",
		Suggestion: "Check the catalog path in showcase.json.",
	},
	"E121": {
		Category:   CategoryCatalog,
		Message:    "Invalid catalog entry",
		Suggestion: "Sizes are small, medium or large. Categories are success, danger or warning.",
	},
	"E122": {
		Category:   CategoryCatalog,
		Message:    "Duplicate widget ID",
		Suggestion: "Every dropdown trigger and target needs its own ID.",
	},

	// ============================================
	// Protocol Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryProtocol,
		Message:  "Malformed message",
	},
	"E141": {
		Category: CategoryProtocol,
		Message:  "Unknown action",
	},
	"E142": {
		Category: CategoryValidation,
		Message:  "Invalid action arguments",
	},
	"E143": {
		Category:   CategoryProtocol,
		Message:    "Action not enabled",
		Suggestion: "Use the rich variant to enable dismissible toasts.",
	},

	// ============================================
	// CLI Errors (E200-E219)
	// ============================================

	"E200": {
		Category:   CategoryCLI,
		Message:    "Server failed",
		Suggestion: "Check that the port is free.",
	},
	"E201": {
		Category: CategoryCLI,
		Message:  "Export failed",
	},

	// ============================================
	// Publish Errors (E300-E319)
	// ============================================

	"E300": {
		Category:   CategoryPublish,
		Message:    "Publish target missing",
		Suggestion: "Set publish.bucket in showcase.json or pass --bucket.",
	},
	"E301": {
		Category:   CategoryPublish,
		Message:    "Upload failed",
		Suggestion: "Check AWS credentials and bucket permissions.",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
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
