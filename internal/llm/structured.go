package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates one parsed element after JSON extraction.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(T) error

// ExtractJSONArray extracts a JSON array of T from raw capability text.
// Models are asked for machine-readable output only, but the guard
// never assumes they complied: the array may be wrapped in prose or
// markdown fences. After fence stripping, the region from the first
// '[' through the last ']' is parsed, so brackets inside string values
// of the outermost array survive intact.
// If validator is non-nil, every element is validated before return.
func ExtractJSONArray[T any](raw string, validator SchemaValidator[T]) ([]T, error) {
	cleaned := stripCodeFences(raw)
	jsonStr := extractArrayRegion(cleaned)
	if jsonStr == "" {
		return nil, fmt.Errorf("%w: no JSON array found in response", ErrMalformedResponse)
	}
	jsonStr = stripJSONComments(jsonStr)

	var result []T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if validator != nil {
		for i, el := range result {
			if err := validator(el); err != nil {
				return nil, fmt.Errorf("%w: element %d failed validation: %v", ErrMalformedResponse, i, err)
			}
		}
	}

	return result, nil
}

// extractArrayRegion returns the substring from the first '[' through
// the last ']' of s, or "" when no such region exists.
func extractArrayRegion(s string) string {
	start := strings.IndexByte(s, '[')
	if start == -1 {
		return ""
	}
	end := strings.LastIndexByte(s, ']')
	if end <= start {
		return ""
	}
	return s[start : end+1]
}

// stripCodeFences removes markdown code fences (```json ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	var result []string
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if inFence {
				inFence = false
				continue
			}
			inFence = true
			continue
		}
		if inFence || !strings.HasPrefix(trimmed, "```") {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// stripJSONComments removes C-style comments outside of JSON string
// values. Models sometimes emit comments in JSON output despite
// instructions not to.
func stripJSONComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}

		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}

		if c == '"' {
			b.WriteByte(c)
			inString = !inString
			continue
		}

		if inString {
			b.WriteByte(c)
			continue
		}

		// Line comment: skip to end of line
		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		}

		// Block comment: skip to closing */
		if c == '/' && i+1 < len(s) && s[i+1] == '*' {
			i += 2
			for i+1 < len(s) {
				if s[i] == '*' && s[i+1] == '/' {
					i++
					break
				}
				i++
			}
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}
