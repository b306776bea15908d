// response/parse.go
package response

import "strings"

// ParseContentTypeHeader parses the Content-Type header and returns the MIME type and any parameters.
func ParseContentTypeHeader(header string) (string, map[string]string) {
	return parseHeader(header)
}

// IsJSONContentType reports whether header names a JSON media type, including vendor
// types such as application/vnd.amadeus+json.
func IsJSONContentType(header string) bool {
	mimeType, _ := parseHeader(header)
	mimeType = strings.ToLower(mimeType)
	return mimeType == "application/json" || strings.HasSuffix(mimeType, "+json")
}

// parseHeader extracts the main value of a header like Content-Type (the MIME type)
// and any parameters (like charset).
func parseHeader(header string) (string, map[string]string) {
	parts := strings.SplitN(header, ";", 2)
	mainValue := strings.TrimSpace(parts[0])

	params := make(map[string]string)
	if len(parts) > 1 {
		for _, part := range strings.Split(parts[1], ";") {
			kv := strings.SplitN(part, "=", 2)
			if len(kv) == 2 {
				params[strings.TrimSpace(kv[0])] = strings.Trim(strings.TrimSpace(kv[1]), "\"")
			}
		}
	}

	return mainValue, params
}
