package utils

import (
	"encoding/json"
	"fmt"
)

// Result is the outcome envelope returned by every use case operation.
type Result struct {
	Data  interface{}
	Error error
}

// ConvertString renders any value for log metadata.
func ConvertString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case error:
		return val.Error()
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%+v", val)
		}
		return string(data)
	}
}
