package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routelabel/routelabel/internal/decorator"
)

func TestRoutePathAndTypes(t *testing.T) {
	r := NewRoute("/meh/<string(length=2):name1>/<int(min=3):name2>/something",
		[]string{"GET"}, nil, nil, "handler", "")

	assert.Equal(t, "/meh/{name1}/{name2}/something", r.Path())
	assert.Equal(t, map[string]string{
		"name1": "string(length=2)",
		"name2": "int(min=3)",
	}, r.PathTypes())
}

func TestRoutePathNoPlaceholders(t *testing.T) {
	r := NewRoute("/users/all", []string{"GET"}, nil, nil, "handler", "")

	assert.Equal(t, "/users/all", r.Path())
	assert.Empty(t, r.PathTypes())
}

func TestRoutePathCached(t *testing.T) {
	r := NewRoute("/users/<int:id>", []string{"GET"}, nil, nil, "handler", "")

	first := r.Path()
	second := r.Path()
	assert.Equal(t, first, second)
	// PathTypes comes from the same traversal.
	assert.Equal(t, map[string]string{"id": "int"}, r.PathTypes())
}

func TestRouteMethodsNeverEmpty(t *testing.T) {
	r := NewRoute("/x", nil, nil, nil, "handler", "")
	assert.Equal(t, []string{"GET"}, r.Methods)

	r = NewRoute("/x", []string{}, nil, nil, "handler", "")
	assert.Equal(t, []string{"GET"}, r.Methods)

	r = NewRoute("/x", []string{"POST"}, nil, nil, "handler", "")
	assert.Equal(t, []string{"POST"}, r.Methods)
}

func TestRouteDocstringCleaned(t *testing.T) {
	doc := "\n            indented indented\n            \tmore indented\n            "
	r := NewRoute("/", []string{"GET"}, nil, nil, "handler", doc)

	assert.Equal(t, "indented indented\n    more indented", r.Docstring())
}

func TestRouteDocstringAbsent(t *testing.T) {
	r := NewRoute("/", []string{"GET"}, nil, nil, "handler", "")
	assert.Equal(t, "", r.Docstring())
}

func TestRouteTitle(t *testing.T) {
	tests := []struct {
		handlerName string
		want        string
	}{
		{"getHTTPResponseCode", "Get HTTP response code"},
		{"handler", "Handler"},
		{"GoGetStuff", "Go get stuff"},
		{"Handle92Numbers", "Handle 92 numbers"},
		{"__ignoreEndUnderscores__", "Ignore end underscores"},
		{"get_HTTP_Response_Code", "Get HTTP response code"},
		{"mixedCamel_and_underscores", "MixedCamel and underscores"},
	}

	for _, tt := range tests {
		t.Run(tt.handlerName, func(t *testing.T) {
			r := NewRoute("/", []string{"GET"}, nil, nil, tt.handlerName, "")
			assert.Equal(t, tt.want, r.Title())
		})
	}
}

func TestRouteKeepsDecorators(t *testing.T) {
	others := []*decorator.CallDescriptor{
		{Name: "headered", Keyword: map[string]any{}},
		{Name: "cached", Keyword: map[string]any{"ttl": int64(60)}},
	}
	r := NewRoute("/x", []string{"GET"}, map[string]any{"strict_slashes": false},
		others, "handler", "")

	assert.Equal(t, others, r.OtherDecorators)
	assert.Equal(t, map[string]any{"strict_slashes": false}, r.ExtraKwargs)
}

func TestCleandoc(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single line", "hello", "hello"},
		{"leading whitespace on first line", "   hello", "hello"},
		{
			"common margin removed",
			"Summary.\n    Detail one.\n    Detail two.",
			"Summary.\nDetail one.\nDetail two.",
		},
		{
			"deeper indent preserved relative to margin",
			"\n    a\n        b\n",
			"a\n    b",
		},
		{
			"tabs expanded to eight columns",
			"\n\ta\n\t\tb",
			"a\n        b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cleandoc(tt.in))
		})
	}
}
