package gateway

import (
	"net/url"
	"strconv"
)

// Filters is the sanitized parameter set sent on list and search calls.
// Values are strings, booleans or integers. Keys whose value is nil or an
// empty string are dropped before serialization: the backend treats an empty
// filter parameter as "match nothing", not as "no filter", so sending one is
// a contract violation rather than a harmless redundancy.
type Filters map[string]any

// Encode serializes the filter set as a URL query string with the drop rule
// applied. Output is deterministic (url.Values sorts keys) and values are
// percent-encoded here, never by the caller.
func (f Filters) Encode() string {
	values := url.Values{}
	for key, val := range f {
		switch v := val.(type) {
		case nil:
			continue
		case string:
			if v == "" {
				continue
			}
			values.Set(key, v)
		case bool:
			values.Set(key, strconv.FormatBool(v))
		case int:
			values.Set(key, strconv.Itoa(v))
		case float64:
			values.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
		default:
			continue
		}
	}
	return values.Encode()
}
