package utils

import (
	"strings"
	"time"
)

// CoerceTime converts the loosely typed timestamp representations found in
// legacy records (RFC3339 strings, date-only strings, unix seconds or
// milliseconds) into a time.Time. Returns false when v is not coercible.
func CoerceTime(v interface{}) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case *time.Time:
		if val == nil {
			return time.Time{}, false
		}
		return *val, true
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, val); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case int64:
		return fromUnix(val), true
	case int:
		return fromUnix(int64(val)), true
	case float64:
		return fromUnix(int64(val)), true
	default:
		return time.Time{}, false
	}
}

// NormalizeTimestamps returns a copy of m with every timestamp-valued entry
// (keys ending in "_at") rewritten to an RFC3339 UTC string, recursing into
// nested maps. Legacy clients put unix numbers and assorted date strings
// into the metadata bag; persisted documents carry one canonical form.
// Entries CoerceTime cannot interpret are kept as they came.
func NormalizeTimestamps(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]interface{}); ok {
			out[k] = NormalizeTimestamps(nested)
			continue
		}
		if strings.HasSuffix(k, "_at") {
			if t, ok := CoerceTime(v); ok {
				out[k] = t.UTC().Format(time.RFC3339)
				continue
			}
		}
		out[k] = v
	}
	return out
}

// Values above this are treated as unix milliseconds rather than seconds.
const unixMillisThreshold = int64(1e12)

func fromUnix(v int64) time.Time {
	if v > unixMillisThreshold {
		return time.UnixMilli(v)
	}
	return time.Unix(v, 0)
}
