package wjson_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wat-aro/wjson"
)

// Documents used for cross-checking against encoding/json. Every valid
// JSON document parsed here must agree with the stdlib's view of it.
var crossCheckDocs = []string{
	`null`,
	`true`,
	`false`,
	`0`,
	`-0`,
	`3`,
	`1.0`,
	`-1e+1`,
	`3.2E-1`,
	`0.30000000000000004`,
	`""`,
	`"foo"`,
	"\"\\u0000A\"",
	`"𐀀"`,
	`"\b\f\n\r\t"`,
	"\"\U0001f4a5\"",
	`[]`,
	`[1]`,
	`[true, false, null]`,
	`[1, "str", 2.5e3]`,
	`{}`,
	`{"key": 1}`,
	`{"title": "TITLE1", "revision": 12}`,
	`{"nested": {"list": [1, 2, {"deep": null}]}}`,
	`{"menu":{"id":"file","popup":{"menuitem":[{"value":"New"},{"value":"Open"}]}}}`,
}

// TestAgreesWithEncodingJSON parses each document with both this package
// and the stdlib and requires the resulting trees to be equal.
func TestAgreesWithEncodingJSON(t *testing.T) {
	for _, doc := range crossCheckDocs {
		t.Run(doc, func(t *testing.T) {
			got, err := wjson.Parse(doc)
			require.NoError(t, err)

			var ref any
			require.NoError(t, json.Unmarshal([]byte(doc), &ref))
			expected, err := wjson.FromInterface(ref)
			require.NoError(t, err)

			assert.True(t, got.Equal(expected), "wjson and encoding/json disagree on %s", doc)
		})
	}
}

// TestRoundTrip serializes each parsed tree back to text with the stdlib
// and re-parses it; the round trip must be lossless.
func TestRoundTrip(t *testing.T) {
	for _, doc := range crossCheckDocs {
		t.Run(doc, func(t *testing.T) {
			v1, err := wjson.Parse(doc)
			require.NoError(t, err)

			serialized, err := json.Marshal(v1.Interface())
			require.NoError(t, err)

			v2, err := wjson.Parse(string(serialized))
			require.NoError(t, err)

			assert.True(t, v1.Equal(v2), "round trip changed the value of %s", doc)
		})
	}
}

// TestWhitespacePadding checks that surrounding whitespace never changes
// the parsed value.
func TestWhitespacePadding(t *testing.T) {
	for _, doc := range crossCheckDocs {
		t.Run(doc, func(t *testing.T) {
			bare, err := wjson.Parse(doc)
			require.NoError(t, err)

			padded, err := wjson.Parse(" \t\r\n" + doc + " \t\r\n")
			require.NoError(t, err)

			assert.True(t, bare.Equal(padded))
		})
	}
}

func TestFromInterface(t *testing.T) {
	v, err := wjson.FromInterface(map[string]any{
		"list":  []any{int64(1), 2.5, "three"},
		"count": 4,
		"ok":    true,
		"gone":  nil,
	})
	require.NoError(t, err)

	assert.Equal(t, wjson.KindObject, v.Kind())
	n, err := v.Get("count").AsNumber()
	require.NoError(t, err)
	assert.Equal(t, 4.0, n)
	assert.True(t, v.Get("gone").IsNull())
	assert.Equal(t, 3, v.Get("list").Len())
}

func TestFromInterfaceRejects(t *testing.T) {
	_, err := wjson.FromInterface(math.NaN())
	assert.Error(t, err)

	_, err = wjson.FromInterface(math.Inf(1))
	assert.Error(t, err)

	_, err = wjson.FromInterface(make(chan int))
	assert.Error(t, err)

	_, err = wjson.FromInterface([]any{map[string]any{"bad": math.NaN()}})
	assert.Error(t, err)
}

func TestInterfaceShape(t *testing.T) {
	v, err := wjson.Parse(`{"a": [1, "x", null], "b": true}`)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"a": []any{1.0, "x", nil},
		"b": true,
	}, v.Interface())
}

// Error results must be values, never panics, and carry a stable message.
func TestErrorsAreStable(t *testing.T) {
	inputs := []string{`{"a":1,}`, `[1, 2`, `01`, `{'a':1}`, `tru`}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err1 := wjson.Parse(input)
			_, err2 := wjson.Parse(input)
			require.Error(t, err1)
			assert.Equal(t, err1.Error(), err2.Error())
		})
	}
}
