package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{&Module{}, "module"},
		{&FunctionDef{}, "function definition"},
		{&ClassDef{}, "class definition"},
		{&Call{}, "call"},
		{&Keyword{}, "keyword argument"},
		{&Name{}, "name"},
		{&Attribute{}, "attribute access"},
		{&Constant{}, "constant"},
		{&Tuple{}, "tuple literal"},
		{&List{}, "list literal"},
		{&Dict{}, "dict literal"},
		{&BinOp{}, "binary operation"},
		{&Opaque{Kind: "lambda"}, "lambda"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.node))
	}
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "+", OpAdd.String())
	assert.Equal(t, "-", OpSub.String())
}
