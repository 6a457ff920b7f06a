package event

import "encoding/json"

// DecodePayload returns the payload as T. In-process publishes already carry T;
// payloads read back from the dead letter file arrive as generic maps and are
// converted through JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
