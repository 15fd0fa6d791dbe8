package brand

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Merge deep-merges a partial brand document over a base brand and
// returns the merged result. Maps and nested objects merge recursively;
// arrays from the partial document replace the base arrays wholesale.
// The base brand is not modified, and the merged result is validated
// before being returned, so a bad partial update cannot corrupt the
// cached base.
func Merge(base *Brand, partial map[string]interface{}) (*Brand, error) {
	if base == nil {
		return nil, fmt.Errorf("base brand cannot be nil")
	}
	if len(partial) == 0 {
		merged := *base
		return &merged, nil
	}

	// Round-trip the base through YAML to get a generic map with the
	// same key names the partial document uses.
	baseBytes, err := yaml.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize base brand: %w", err)
	}

	var baseMap map[string]interface{}
	if err := yaml.Unmarshal(baseBytes, &baseMap); err != nil {
		return nil, fmt.Errorf("failed to deserialize base brand: %w", err)
	}

	mergedMap := mergeMaps(baseMap, partial)

	mergedBytes, err := yaml.Marshal(mergedMap)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize merged brand: %w", err)
	}

	var merged Brand
	if err := yaml.Unmarshal(mergedBytes, &merged); err != nil {
		return nil, fmt.Errorf("failed to deserialize merged brand: %w", err)
	}

	if err := Validate(&merged); err != nil {
		return nil, err
	}

	return &merged, nil
}

// mergeMaps merges overlay into base recursively. Nested maps merge
// key-by-key; any other overlay value (scalars and arrays alike)
// replaces the base value.
func mergeMaps(base, overlay map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(base)+len(overlay))
	for k, v := range base {
		result[k] = v
	}

	for k, overlayVal := range overlay {
		baseVal, exists := result[k]
		if !exists {
			result[k] = overlayVal
			continue
		}

		baseMap, baseIsMap := asMap(baseVal)
		overlayMap, overlayIsMap := asMap(overlayVal)
		if baseIsMap && overlayIsMap {
			result[k] = mergeMaps(baseMap, overlayMap)
			continue
		}

		result[k] = overlayVal
	}

	return result
}

// asMap normalizes the two map shapes YAML decoding can produce.
func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		result := make(map[string]interface{}, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			result[key] = val
		}
		return result, true
	default:
		return nil, false
	}
}
