package valueobjects

// Metadata is the free-form bag attached to a notification. SiteID and
// PlantID, when present, restrict visibility for scope-limited roles; their
// absence means the notification is visible regardless of assignment.
// Extra carries entity references (fault ID, stock item ID, ...) for
// client-side deep links.
type Metadata struct {
	siteID  *uint
	plantID *uint
	extra   map[string]interface{}
}

func NewMetadata(siteID, plantID *uint, extra map[string]interface{}) Metadata {
	return Metadata{siteID: siteID, plantID: plantID, extra: extra}
}

func (m Metadata) SiteID() *uint  { return m.siteID }
func (m Metadata) PlantID() *uint { return m.plantID }

func (m Metadata) Extra() map[string]interface{} {
	return m.extra
}

func (m Metadata) IsZero() bool {
	return m.siteID == nil && m.plantID == nil && len(m.extra) == 0
}

// ToMap flattens the metadata into a single map for persistence. Nil scope
// fields are omitted entirely rather than stored as nulls.
func (m Metadata) ToMap() map[string]interface{} {
	out := make(map[string]interface{}, len(m.extra)+2)
	for k, v := range m.extra {
		out[k] = v
	}
	if m.siteID != nil {
		out["site_id"] = *m.siteID
	}
	if m.plantID != nil {
		out["plant_id"] = *m.plantID
	}
	return out
}

// MetadataFromMap rebuilds Metadata from a persisted map. Scope IDs may have
// been decoded as float64 by the JSON layer.
func MetadataFromMap(raw map[string]interface{}) Metadata {
	if raw == nil {
		return Metadata{}
	}
	m := Metadata{extra: make(map[string]interface{}, len(raw))}
	for k, v := range raw {
		switch k {
		case "site_id":
			if id, ok := coerceUint(v); ok {
				m.siteID = &id
				continue
			}
		case "plant_id":
			if id, ok := coerceUint(v); ok {
				m.plantID = &id
				continue
			}
		}
		m.extra[k] = v
	}
	if len(m.extra) == 0 {
		m.extra = nil
	}
	return m
}

func coerceUint(v interface{}) (uint, bool) {
	switch val := v.(type) {
	case uint:
		return val, true
	case int:
		if val < 0 {
			return 0, false
		}
		return uint(val), true
	case int64:
		if val < 0 {
			return 0, false
		}
		return uint(val), true
	case float64:
		if val < 0 {
			return 0, false
		}
		return uint(val), true
	default:
		return 0, false
	}
}
