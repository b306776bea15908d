package httpclient

import (
	"net/url"
	"strings"
)

// Param is a single query or form parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered parameter list. Order is preserved on the wire.
type Params []Param

// NewParams builds Params from alternating key, value strings. A trailing key without value is dropped.
func NewParams(keysAndValues ...string) Params {
	params := make(Params, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		params = append(params, Param{Key: keysAndValues[i], Value: keysAndValues[i+1]})
	}
	return params
}

// Add returns a copy of p with key=value appended.
func (p Params) Add(key, value string) Params {
	out := make(Params, len(p), len(p)+1)
	copy(out, p)
	return append(out, Param{Key: key, Value: value})
}

// Get returns the first value for key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

// Encode renders p as application/x-www-form-urlencoded in insertion order.
func (p Params) Encode() string {
	var b strings.Builder
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(param.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}
	return b.String()
}
