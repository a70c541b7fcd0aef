package reconcile

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
)

var fencedBlock = regexp.MustCompile("(?s)```[A-Za-z0-9_-]*[ \t]*\r?\n?(.*?)```")

var errNoPayload = errors.New("no JSON payload in classifier response")

// extractPayload picks the JSON candidate out of free-form classifier text:
// the interior of the first fenced code block, else the span from the first
// '{' to the last '}'.
func extractPayload(text string) (string, bool) {
	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// parseDecisions turns classifier text into decisions. Entries without a
// transactionId are dropped; every other field is coerced. A non-nil error
// means the response was unusable and should count as zero decisions.
func parseDecisions(text string) ([]domain.Decision, error) {
	payload, ok := extractPayload(text)
	if !ok {
		return nil, errNoPayload
	}

	var envelope struct {
		Results []any `json:"results"`
	}
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		return nil, fmt.Errorf("decode classifier payload: %w", err)
	}

	decisions := make([]domain.Decision, 0, len(envelope.Results))
	for _, entry := range envelope.Results {
		raw, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		txID, ok := coerceID(raw["transactionId"])
		if !ok {
			continue
		}

		d := domain.Decision{
			TransactionID: txID,
			Kind:          domain.DecisionSkip,
			Confidence:    coerceNumber(raw["confidence"]),
		}
		if kind, ok := raw["decision"].(string); ok {
			d.Kind = domain.ParseDecisionKind(kind)
		}
		if tripID, ok := coerceID(raw["tripId"]); ok {
			d.TripID = &tripID
		}
		if reasoning, ok := raw["reasoning"].(string); ok && reasoning != "" {
			d.Reasoning = &reasoning
		}

		decisions = append(decisions, d)
	}

	return decisions, nil
}

// coerceID stringifies a scalar. Null, blank strings, objects and arrays
// yield no ID.
func coerceID(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		if strings.TrimSpace(id) == "" {
			return "", false
		}
		return id, true
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(id), true
	}
	return "", false
}

// coerceNumber returns a JSON number or numeric string as float64, else 0.
func coerceNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err == nil {
			return f
		}
	}
	return 0
}
