// Package wjson parses JSON text into a generic, immutable Value tree.
//
// The parser is a strict recursive-descent implementation of the JSON
// grammar: no comments, no trailing commas, no single-quoted strings,
// no unquoted keys, and numbers must match the grammar exactly. Input
// that deviates from the grammar fails with a positioned ParseError
// rather than being silently repaired.
//
// # Data Model
//
// A parsed document is a tree of Values. Each Value holds exactly one of:
//
//	null, bool, number (float64), string, array, object
//
// Objects are unordered; a duplicate key within one object overwrites the
// earlier entry. Numbers are always finite double-precision floats: NaN
// and Infinity cannot arise from valid JSON text, and literals outside
// the representable range are rejected.
//
// # Errors
//
// Parsing is all-or-nothing. The first grammar violation aborts the parse
// and is returned as a *ParseError carrying the line, column, and byte
// offset of the offending input along with what was expected there.
// Errors can be classified with errors.Is against ErrSyntax,
// ErrInvalidUTF8, and ErrTooDeep.
//
// # Limits
//
// Nesting depth is bounded to protect the call stack. The default limit
// is DefaultMaxDepth; it can be adjusted per call with Options. Exceeding
// the limit is reported as ErrTooDeep, never as a crash.
//
// # Example
//
//	v, err := wjson.Parse(`{"title": "TITLE1", "revision": 12}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	title, _ := v.Get("title").AsString()
package wjson
