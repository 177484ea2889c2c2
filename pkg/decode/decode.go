// Package decode converts loosely typed configuration tables into structs.
package decode

import "encoding/json"

// FromMap round-trips data through JSON into T, honoring T's json tags.
func FromMap[T any](data map[string]any) (T, error) {
	var result T
	b, err := json.Marshal(data)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(b, &result)
	return result, err
}
