package rows

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/smartjects/importer/constants"
)

// Mode selects the token-extraction grammar for a tag cell.
type Mode int

const (
	// ModePermissive tries a list literal first and degrades to a comma split.
	ModePermissive Mode = iota
	// ModeStrictJSON requires a JSON array of non-empty strings.
	ModeStrictJSON
)

// FormatError reports a tag cell that does not parse under the active mode.
// Callers use it to distinguish a malformed field from a genuinely empty one.
type FormatError struct {
	Field  constants.Field
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("field %q: invalid format: %s", e.Field, e.Reason)
}

// stringArraySchema constrains strict-mode cells: an array whose items are
// all non-empty strings.
var stringArraySchema = jsonschema.MustCompileString("tags.json", `{
	"type": "array",
	"items": {"type": "string", "minLength": 1}
}`)

// ExtractTokens parses one free-text tag cell into an ordered token list.
// An empty cell yields an empty list in both modes; only strict mode can
// return a *FormatError.
func ExtractTokens(field constants.Field, cell string, mode Mode) ([]string, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}
	if mode == ModeStrictJSON {
		return extractStrict(field, cell)
	}
	return extractPermissive(cell), nil
}

func extractStrict(field constants.Field, cell string) ([]string, error) {
	if !strings.HasPrefix(cell, "[") || !strings.HasSuffix(cell, "]") {
		return nil, &FormatError{Field: field, Reason: "not a JSON array"}
	}
	var v any
	if err := json.Unmarshal([]byte(cell), &v); err != nil {
		return nil, &FormatError{Field: field, Reason: err.Error()}
	}
	if err := stringArraySchema.Validate(v); err != nil {
		return nil, &FormatError{Field: field, Reason: "not an array of non-empty strings"}
	}
	items := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		s := strings.TrimSpace(item.(string))
		if s == "" {
			return nil, &FormatError{Field: field, Reason: "array contains a blank item"}
		}
		out = append(out, s)
	}
	return out, nil
}

func extractPermissive(cell string) []string {
	if tokens, ok := parseListLiteral(cell); ok {
		return tokens
	}
	return splitCommas(cell)
}

// parseListLiteral accepts a bracketed list literal, tolerating the
// single-quoted Python-style form alongside plain JSON.
func parseListLiteral(cell string) ([]string, bool) {
	if !strings.HasPrefix(cell, "[") || !strings.HasSuffix(cell, "]") {
		return nil, false
	}
	candidates := []string{cell}
	if strings.Contains(cell, "'") && !strings.Contains(cell, `"`) {
		candidates = append(candidates, strings.ReplaceAll(cell, "'", `"`))
	}
	for _, c := range candidates {
		var items []any
		if err := json.Unmarshal([]byte(c), &items); err != nil {
			continue
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			s := strings.TrimSpace(fmt.Sprint(item))
			if s != "" {
				out = append(out, s)
			}
		}
		return out, true
	}
	// Bracketed but unparseable: treat the inner text as a comma list.
	inner := strings.TrimSuffix(strings.TrimPrefix(cell, "["), "]")
	return splitCommas(inner), true
}

func splitCommas(s string) []string {
	var out []string
	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		piece = strings.Trim(piece, `"'`)
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

var (
	reCommaAnd = regexp.MustCompile(`,\s*and\s+`)
	reBareAnd  = regexp.MustCompile(`\s+and\s+`)
)

// ParseProse parses comma-separated free text, folding a trailing " and X"
// connector into an ordinary comma-separated item and stripping per-item
// trailing periods. The cell is valid whenever at least one item remains.
func ParseProse(cell string) []string {
	cell = reCommaAnd.ReplaceAllString(cell, ", ")
	cell = reBareAnd.ReplaceAllString(cell, ", ")

	var out []string
	for _, piece := range strings.Split(cell, ",") {
		piece = strings.TrimRight(strings.TrimSpace(piece), ".")
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}
