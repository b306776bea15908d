package response

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jmespath/go-jmespath"
)

// DecodeJSON decodes a JSON body into generic values: objects become map[string]interface{},
// arrays []interface{} and numbers float64, the shapes JMESPath evaluates against.
// An empty body decodes to nil.
func DecodeJSON(body []byte) (interface{}, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var result interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding JSON body: %w", err)
	}
	return result, nil
}

// Data returns the value under the top-level "data" key of an Amadeus envelope, or nil
// when result is not an object or has no data member.
func Data(result interface{}) interface{} {
	object, ok := result.(map[string]interface{})
	if !ok {
		return nil
	}
	return object["data"]
}

// Search evaluates a JMESPath expression against a decoded result.
func Search(result interface{}, expression string) (interface{}, error) {
	value, err := jmespath.Search(expression, result)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", expression, err)
	}
	return value, nil
}
