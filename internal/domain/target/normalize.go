package target

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/heavenike02/sdg-showcase-3/internal/domain/model"
)

// Normalize converts a raw targets value into canonical targets. The input
// may be a JSON-encoded string or []byte, an already-decoded value, or nil.
// Recognized shapes:
//
//   - array of target-id strings
//   - array of objects carrying a targetId (or id/target) field plus optional
//     impact metadata
//   - map of SDG number to a list of sub-target identifiers
//
// A string that fails to parse as JSON is kept as a single opaque target id.
// Anything else yields an empty list. Normalize never fails.
func Normalize(raw any) []Target {
	return NormalizeWithImpacts(raw, nil)
}

// NormalizeWithImpacts is Normalize with a side list of impact annotations.
// When the goal-map shape synthesizes a target id, a matching annotation
// (exact targetId equality) is attached; unmatched ids carry no impact fields.
func NormalizeWithImpacts(raw any, impacts []model.TargetImpact) []Target {
	val, doc := decode(raw)

	switch v := val.(type) {
	case nil:
		return nil
	case []any:
		return fromList(v)
	case map[string]any:
		// An object exposing a target id is a single canonical entry; any
		// other object is treated as the goal-keyed map shape.
		if _, ok := objectTargetID(v); ok {
			return fromList([]any{v})
		}
		return fromGoalMap(v, doc, impacts)
	case string:
		// A stored string is JSON one level down (double-encoded rows exist
		// in the wild). A failed parse means the string is itself one opaque
		// target id.
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		var inner any
		if err := json.Unmarshal([]byte(s), &inner); err == nil {
			switch iv := inner.(type) {
			case []any:
				return fromList(iv)
			case map[string]any:
				if _, ok := objectTargetID(iv); ok {
					return fromList([]any{iv})
				}
				return fromGoalMap(iv, []byte(s), impacts)
			}
		}
		return []Target{{TargetID: s}}
	default:
		return nil
	}
}

// decode resolves the raw value to a decoded JSON value. It also returns the
// original document bytes when available, so goal-map key order can be
// recovered (encoding/json maps do not preserve it).
func decode(raw any) (any, []byte) {
	var data []byte
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		data = v
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return raw, nil
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	var val any
	if err := json.Unmarshal(data, &val); err != nil {
		// Not JSON: the original value is a single opaque target id.
		return string(data), nil
	}
	return val, data
}

// fromList converts an array of strings and/or objects.
func fromList(items []any) []Target {
	out := make([]Target, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				out = append(out, Target{TargetID: s})
			}
		case map[string]any:
			id, ok := objectTargetID(v)
			if !ok {
				continue
			}
			out = append(out, Target{
				TargetID:        id,
				ImpactType:      stringField(v, "impactType"),
				ImpactDirection: stringField(v, "impactDirection"),
				Evidence:        stringField(v, "evidence"),
			})
		default:
			// Unrecognized element shape; skip rather than fail the record.
		}
	}
	return out
}

// fromGoalMap synthesizes "<goal>.<sub>" ids from a map of SDG number to
// sub-target list, attaching impact annotations where one matches exactly.
func fromGoalMap(m map[string]any, doc []byte, impacts []model.TargetImpact) []Target {
	keys := goalMapKeys(m, doc)
	var out []Target
	for _, key := range keys {
		subs, ok := m[key].([]any)
		if !ok {
			continue
		}
		for _, sub := range subs {
			s := scalarString(sub)
			if s == "" {
				continue
			}
			id := key + "." + s
			out = append(out, annotate(Target{TargetID: id}, impacts))
		}
	}
	return out
}

// annotate attaches the first impact annotation whose targetId equals the
// synthesized id. Exact string equality only; no prefix fallback.
func annotate(t Target, impacts []model.TargetImpact) Target {
	for _, imp := range impacts {
		if imp.TargetID == t.TargetID {
			t.ImpactType = imp.ImpactType
			t.ImpactDirection = imp.ImpactDirection
			t.Evidence = imp.Evidence
			break
		}
	}
	return t
}

// objectTargetID extracts a target id from an object, tolerating the
// targetId, id and target key variants seen in stored data. Numeric ids are
// stringified.
func objectTargetID(m map[string]any) (string, bool) {
	for _, key := range []string{"targetId", "id", "target"} {
		if v, ok := m[key]; ok {
			if s := scalarString(v); s != "" {
				return s, true
			}
		}
	}
	return "", false
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// scalarString renders a JSON scalar as a target-id fragment.
func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

// goalMapKeys returns the map keys in document order when the original bytes
// are available, falling back to a numeric sort. Stored goal maps are written
// in declaration order and the first key decides the primary SDG, so order
// matters here.
func goalMapKeys(m map[string]any, doc []byte) []string {
	if keys := documentKeyOrder(doc); len(keys) == len(m) {
		return keys
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})
	return keys
}

// documentKeyOrder tokenizes a JSON object and collects its top-level keys in
// order. Returns nil when doc is not a well-formed object.
func documentKeyOrder(doc []byte) []string {
	if len(doc) == 0 {
		return nil
	}
	dec := json.NewDecoder(strings.NewReader(string(doc)))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}

	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil
		}
		keys = append(keys, key)
		if err := skipValue(dec); err != nil {
			return nil
		}
	}
	return keys
}

// skipValue consumes one complete JSON value from the decoder.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
