package dump

import (
	"strconv"
	"strings"
	"unicode"
)

// PascalCase converts snake_case or camelCase to PascalCase
// Examples: user_model → UserModel, userModel → UserModel, user_id → UserID
func PascalCase(s string) string {
	if s == "" {
		return ""
	}

	// Handle snake_case
	if strings.Contains(s, "_") {
		parts := strings.Split(s, "_")
		for i, part := range parts {
			if part != "" {
				parts[i] = capitalizeWord(part)
			}
		}
		return strings.Join(parts, "")
	}

	// Handle camelCase or already PascalCase
	if unicode.IsLower(rune(s[0])) {
		return capitalizeWord(s)
	}

	return s
}

// capitalizeWord capitalizes a word with special handling for acronyms
func capitalizeWord(s string) string {
	if s == "" {
		return ""
	}

	// Common acronyms that should be all-caps
	acronyms := map[string]string{
		"id":   "ID",
		"url":  "URL",
		"uri":  "URI",
		"http": "HTTP",
		"api":  "API",
		"uuid": "UUID",
		"sql":  "SQL",
		"html": "HTML",
		"json": "JSON",
		"xml":  "XML",
		"db":   "DB",
		"ast":  "AST",
		"dto":  "DTO",
	}

	if acronym, ok := acronyms[strings.ToLower(s)]; ok {
		return acronym
	}

	return strings.ToUpper(string(s[0])) + s[1:]
}

// CamelCase converts snake_case or PascalCase to camelCase
// Examples: user_model → userModel, UserModel → userModel
func CamelCase(s string) string {
	if s == "" {
		return ""
	}

	// Handle snake_case
	if strings.Contains(s, "_") {
		parts := strings.Split(s, "_")
		for i, part := range parts {
			if part != "" {
				if i == 0 {
					parts[i] = strings.ToLower(part)
				} else {
					parts[i] = strings.ToUpper(string(part[0])) + strings.ToLower(part[1:])
				}
			}
		}
		return strings.Join(parts, "")
	}

	// Handle PascalCase or already camelCase
	if unicode.IsUpper(rune(s[0])) {
		return strings.ToLower(string(s[0])) + s[1:]
	}

	return s
}

// SnakeCase converts PascalCase or camelCase to snake_case
// Examples: UserModel → user_model, userModel → user_model, HTTPServer → http_server
func SnakeCase(s string) string {
	if s == "" {
		return ""
	}

	// Handle already snake_case
	if strings.Contains(s, "_") {
		return strings.ToLower(s)
	}

	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			// Underscore before an uppercase rune when the previous rune is
			// lowercase, or when an acronym run ends (next rune lowercase)
			if i > 0 {
				prev := rune(s[i-1])
				if unicode.IsLower(prev) {
					result.WriteRune('_')
				} else if i+1 < len(s) && unicode.IsLower(rune(s[i+1])) {
					result.WriteRune('_')
				}
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// Quote wraps a string in double quotes, escaping as needed
func Quote(s string) string {
	return strconv.Quote(s)
}
