package wjson

// Parse parses a JSON document into a Value tree, using the default
// nesting depth limit.
func Parse(input string) (*Value, error) {
	return ParseWithOptions(input, Options{})
}

// ParseBytes parses a JSON document from b into a Value tree.
func ParseBytes(b []byte) (*Value, error) {
	return ParseWithOptions(string(b), Options{})
}
