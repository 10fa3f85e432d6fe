package llm

import (
	"encoding/json"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
)

const fence = "```"

// Normalizer turns raw model text into a structured JSON value.
type Normalizer struct {
	// Repair enables one json-repair pass when the fence-stripped text is
	// not valid JSON.
	Repair bool
}

// StripFences removes a leading markdown code fence (optionally tagged json)
// and a trailing fence, trimming surrounding whitespace.
func StripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, fence) {
		text = text[len(fence):]
		if len(text) >= 4 && strings.EqualFold(text[:4], "json") {
			text = text[4:]
		}
	}
	if strings.HasSuffix(text, fence) {
		text = text[:len(text)-len(fence)]
	}
	return strings.TrimSpace(text)
}

// Normalize strips code fences and parses the remainder as JSON. Parse
// failures are returned as *MalformedResponseError carrying the raw text.
func (n Normalizer) Normalize(raw string) (any, error) {
	text := StripFences(raw)

	var value any
	err := json.Unmarshal([]byte(text), &value)
	if err == nil {
		return value, nil
	}

	if n.Repair {
		if repaired, rerr := jsonrepair.RepairJSON(text); rerr == nil {
			if uerr := json.Unmarshal([]byte(repaired), &value); uerr == nil {
				return value, nil
			}
		}
	}

	return nil, &MalformedResponseError{Raw: raw, Err: err}
}
