package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripNilValues_FlatMap(t *testing.T) {
	in := map[string]interface{}{
		"site_id":  uint(3),
		"fault_id": nil,
		"label":    "inverter",
	}

	out := StripNilValues(in)

	assert.Equal(t, map[string]interface{}{
		"site_id": uint(3),
		"label":   "inverter",
	}, out)
	// The input is not mutated.
	assert.Contains(t, in, "fault_id")
}

func TestStripNilValues_NestedMapsAndSlices(t *testing.T) {
	in := map[string]interface{}{
		"nested": map[string]interface{}{
			"keep": 1,
			"drop": nil,
			"deeper": map[string]interface{}{
				"drop": nil,
			},
		},
		"list": []interface{}{"a", nil, map[string]interface{}{"x": nil, "y": 2}},
	}

	out := StripNilValues(in)

	nested := out["nested"].(map[string]interface{})
	assert.Equal(t, 1, nested["keep"])
	assert.NotContains(t, nested, "drop")
	assert.Equal(t, map[string]interface{}{}, nested["deeper"])

	list := out["list"].([]interface{})
	assert.Equal(t, []interface{}{"a", map[string]interface{}{"y": 2}}, list)
}

func TestStripNilValues_NilMap(t *testing.T) {
	assert.Nil(t, StripNilValues(nil))
}
