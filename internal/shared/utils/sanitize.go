package utils

// StripNilValues returns a copy of m with every nil-valued entry removed,
// recursing into nested maps and slices. The notification metadata bag is
// caller-assembled and frequently carries absent optional fields as nils;
// the persistence layer must never see them.
func StripNilValues(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		cleaned := stripValue(v)
		if cleaned == nil {
			continue
		}
		out[k] = cleaned
	}
	return out
}

func stripValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return StripNilValues(val)
	case []interface{}:
		out := make([]interface{}, 0, len(val))
		for _, item := range val {
			if item == nil {
				continue
			}
			if cleaned := stripValue(item); cleaned != nil {
				out = append(out, cleaned)
			}
		}
		return out
	default:
		return v
	}
}
