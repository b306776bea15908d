// headers/redact/redact.go
package redact

import "strings"

// Redacted is the placeholder written in place of a sensitive value.
const Redacted = "REDACTED"

// sensitiveKeys lists header names and form/log field keys whose values must never be logged in clear.
// Keys are compared case-insensitively.
var sensitiveKeys = map[string]bool{
	"accesstoken":   true,
	"access_token":  true,
	"authorization": true,
	"client_id":     true,
	"clientid":      true,
	"client_secret": true,
	"clientsecret":  true,
}

// IsSensitive reports whether key names a value that is redacted when sensitive data is hidden.
func IsSensitive(key string) bool {
	return sensitiveKeys[strings.ToLower(key)]
}

// RedactSensitiveHeaderData redacts sensitive data based on the hideSensitiveData flag.
func RedactSensitiveHeaderData(hideSensitiveData bool, key, value string) string {
	if hideSensitiveData && IsSensitive(key) {
		return Redacted
	}
	return value
}
