package binding

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	return v
}

func TestInterpolate(t *testing.T) {
	data := decode(t, `{"student":{"name":"Mia","grade":1},"words":["cat","dog"],"rows":[{"n":1000000}]}`)
	cases := map[string]string{
		"Hello ${student.name}!":      "Hello Mia!",
		"${ student.name }":           "Mia",
		"Grade ${student.grade}":      "Grade 1",
		"${words[1]} and ${words[0]}": "dog and cat",
		"${rows[0].n}":                "1000000",
		"${student.age|7}":            "7",
		"${student.name|friend}":      "Mia",
		"${missing}":                  "${missing}",
		"${words[9]|none}":            "none",
		"${|empty path}":              "empty path",
		"plain text":                  "plain text",
		"${student.name|}":            "Mia",
		"${student.nick|} is here":    " is here",
	}
	for in, want := range cases {
		if got := Interpolate(in, data); got != want {
			t.Fatalf("Interpolate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInterpolateWithoutData(t *testing.T) {
	if got := Interpolate("Hi ${student.name|friend}, ${x}", nil); got != "Hi friend, ${x}" {
		t.Fatalf("got %q", got)
	}
}

func TestLookup(t *testing.T) {
	data := map[string]any{
		"grid":  []any{[]any{"a", "b"}, []any{"c"}},
		"names": []string{"x", "y"},
		"meta":  map[string]string{"k": "v"},
	}
	if v, ok := Lookup(data, "grid[0][1]"); !ok || v != "b" {
		t.Fatalf("grid[0][1] = %v, %v", v, ok)
	}
	if v, ok := Lookup(data, "names[1]"); !ok || v != "y" {
		t.Fatalf("names[1] = %v, %v", v, ok)
	}
	if v, ok := Lookup(data, "meta.k"); !ok || v != "v" {
		t.Fatalf("meta.k = %v, %v", v, ok)
	}
	for _, bad := range []string{"grid[x]", "grid[0", "grid[-1]", "names.x", "meta..k", "nope"} {
		if _, ok := Lookup(data, bad); ok {
			t.Fatalf("Lookup(%q) should fail", bad)
		}
	}
}
