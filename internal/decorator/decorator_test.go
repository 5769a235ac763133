package decorator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routelabel/routelabel/internal/errors"
	"github.com/routelabel/routelabel/internal/eval"
	"github.com/routelabel/routelabel/internal/syntax"
)

func TestFlattenName(t *testing.T) {
	tests := []struct {
		name string
		node syntax.Node
		want string
	}{
		{
			"bare identifier",
			&syntax.Name{ID: "route"},
			"route",
		},
		{
			"single attribute",
			&syntax.Attribute{Value: &syntax.Name{ID: "app"}, Attr: "route"},
			"app.route",
		},
		{
			"nested attributes",
			&syntax.Attribute{
				Value: &syntax.Attribute{Value: &syntax.Name{ID: "a"}, Attr: "b"},
				Attr:  "c",
			},
			"a.b.c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FlattenName(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlattenNameRejectsNonNames(t *testing.T) {
	tests := []struct {
		name string
		node syntax.Node
	}{
		{"constant", &syntax.Constant{Value: "route"}},
		{"call base", &syntax.Attribute{
			Value: &syntax.Call{Func: &syntax.Name{ID: "make_app"}},
			Attr:  "route",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FlattenName(tt.node)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.MalformedDecoratorCode))
		})
	}
}

func TestFlattenCallWithArguments(t *testing.T) {
	// @app.route('/users', methods=['GET', 'POST'], strict_slashes=False)
	node := &syntax.Call{
		Func: &syntax.Attribute{Value: &syntax.Name{ID: "app"}, Attr: "route"},
		Args: []syntax.Node{
			&syntax.Constant{Value: "/users"},
			&syntax.Keyword{Name: "methods", Value: &syntax.List{Elts: []syntax.Node{
				&syntax.Constant{Value: "GET"},
				&syntax.Constant{Value: "POST"},
			}}},
			&syntax.Keyword{Name: "strict_slashes", Value: &syntax.Name{ID: "False"}},
		},
	}

	desc, err := Flatten(node, nil)
	require.NoError(t, err)
	assert.Equal(t, "app.route", desc.Name)
	assert.Equal(t, []any{"/users"}, desc.Positional)
	assert.Equal(t, map[string]any{
		"methods":        []any{"GET", "POST"},
		"strict_slashes": false,
	}, desc.Keyword)
}

func TestFlattenBareDecorator(t *testing.T) {
	desc, err := Flatten(&syntax.Name{ID: "headered"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "headered", desc.Name)
	assert.Empty(t, desc.Positional)
	assert.Empty(t, desc.Keyword)
}

func TestFlattenResolvesGlobals(t *testing.T) {
	globals := eval.Bindings{"PREFIX": "/api"}
	node := &syntax.Call{
		Func: &syntax.Name{ID: "route"},
		Args: []syntax.Node{&syntax.Name{ID: "PREFIX"}},
	}

	desc, err := Flatten(node, globals)
	require.NoError(t, err)
	assert.Equal(t, []any{"/api"}, desc.Positional)
}

func TestFlattenArgumentFailureKeepsCode(t *testing.T) {
	node := &syntax.Call{
		Func: &syntax.Name{ID: "route"},
		Args: []syntax.Node{&syntax.Name{ID: "undefined_name"}},
	}

	_, err := Flatten(node, nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.NameNotGlobalCode))
}

func TestFlattenSkipsNilChildren(t *testing.T) {
	node := &syntax.Call{
		Func: &syntax.Name{ID: "route"},
		Args: []syntax.Node{nil, &syntax.Constant{Value: "/x"}},
	}

	desc, err := Flatten(node, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"/x"}, desc.Positional)
}

func TestFlattenNonNameCalleeIsMalformed(t *testing.T) {
	node := &syntax.Call{
		Func: &syntax.Call{Func: &syntax.Name{ID: "factory"}},
	}

	_, err := Flatten(node, nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.MalformedDecoratorCode))
}
