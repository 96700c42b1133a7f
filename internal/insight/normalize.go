package insight

import (
	"encoding/json"
	"strings"
)

// Outcome describes how a Result was produced.
type Outcome string

const (
	// OutcomeParsed: the model returned valid JSON and every schema field
	// was present.
	OutcomeParsed Outcome = "parsed"
	// OutcomePartial: valid JSON, but one or more schema fields were filled
	// from defaults.
	OutcomePartial Outcome = "partial"
	// OutcomeDefaulted: the raw text was empty or unparsable; every field
	// carries its default.
	OutcomeDefaulted Outcome = "defaulted"
)

// Result is a normalized insight: a field map guaranteed to contain every
// schema key. Extra fields the model volunteered are passed through.
type Result struct {
	Fields        map[string]any
	Outcome       Outcome
	DefaultedKeys []string
}

// MarshalJSON serializes only the field map, so a Result drops straight into
// an endpoint response.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields)
}

// Normalize converts the insight generator's raw output into a Result for
// the given schema. It never fails: fenced JSON is unwrapped, empty or
// unparsable text degrades to the all-defaults result, and any schema field
// missing from parsed output is filled with its default.
//
// Normalize is idempotent: feeding it the JSON encoding of its own output
// yields the same result.
func Normalize(raw string, schema Schema) Result {
	body := stripFence(raw)
	if strings.TrimSpace(body) == "" {
		return defaultedResult(schema)
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return defaultedResult(schema)
	}

	fields := make(map[string]any, len(parsed))
	for k, v := range parsed {
		fields[k] = v
	}

	var defaulted []string
	for _, f := range schema {
		if _, ok := fields[f.Name]; !ok {
			fields[f.Name] = f.Default
			defaulted = append(defaulted, f.Name)
		}
	}

	outcome := OutcomeParsed
	if len(defaulted) > 0 {
		outcome = OutcomePartial
	}
	return Result{Fields: fields, Outcome: outcome, DefaultedKeys: defaulted}
}

func defaultedResult(schema Schema) Result {
	defaulted := make([]string, 0, len(schema))
	for _, f := range schema {
		defaulted = append(defaulted, f.Name)
	}
	return Result{Fields: schema.Defaults(), Outcome: OutcomeDefaulted, DefaultedKeys: defaulted}
}

// stripFence removes one leading and one trailing Markdown code-fence if
// present. The two matches are independent: output with only an opening or
// only a closing fence is still unwrapped. Fences are only recognized at the
// text boundaries, so fence substrings inside JSON string values are never
// touched.
func stripFence(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the opening fence line ("```" optionally followed by a
		// language tag such as "json").
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			s = s[idx+1:]
		} else {
			// Single-line input like "```json{...}```" or a bare fence.
			s = strings.TrimPrefix(s, "```")
			s = strings.TrimPrefix(s, "json")
		}
	}

	// Drop a closing fence only when it terminates the text.
	s = strings.TrimRight(s, " \t\n")
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-3]
	}
	return s
}
