// Package models holds the route entity produced by the extractor and
// its derived presentation views.
package models

import (
	"strings"

	"github.com/routelabel/routelabel/internal/decorator"
	"github.com/routelabel/routelabel/internal/rule"
)

// Route represents one discovered HTTP route handler. It is built once
// by the extractor and never mutated afterwards except for the first
// access to each lazily computed view.
type Route struct {
	// RawRule is the normalized URL pattern, always starting with '/'.
	RawRule string

	// Methods is the set of HTTP methods the route serves. Never empty;
	// defaults to GET when the decorator gave none.
	Methods []string

	// ExtraKwargs holds the route decorator's remaining keyword
	// arguments (methods removed), forwarded opaquely to formatters.
	ExtraKwargs map[string]any

	// OtherDecorators are the function's non-route decorators in source
	// order, available as formatter extension hooks.
	OtherDecorators []*decorator.CallDescriptor

	// HandlerName is the handler function's source identifier.
	HandlerName string

	// SourceFile and Line locate the handler for listings and
	// diagnostics.
	SourceFile string
	Line       int

	doc string // raw docstring as written

	// lazily derived, cached views
	path      *string
	pathTypes map[string]string
	docstring *string
	title     *string
}

// NewRoute constructs a route from the extractor's analysis of one
// handler function.
func NewRoute(rawRule string, methods []string, extraKwargs map[string]any,
	others []*decorator.CallDescriptor, handlerName, doc string) *Route {
	if len(methods) == 0 {
		methods = []string{"GET"}
	}
	if extraKwargs == nil {
		extraKwargs = map[string]any{}
	}
	return &Route{
		RawRule:         rawRule,
		Methods:         methods,
		ExtraKwargs:     extraKwargs,
		OtherDecorators: others,
		HandlerName:     handlerName,
		doc:             doc,
	}
}

// Path returns the rule with each typed placeholder rewritten to plain
// {name} form, e.g. /users/<int:id> becomes /users/{id}.
func (r *Route) Path() string {
	if r.path == nil {
		r.parseRule()
	}
	return *r.path
}

// PathTypes maps placeholder names to their converter specs, captured
// verbatim (so <int(min=3):id> yields "int(min=3)").
func (r *Route) PathTypes() map[string]string {
	if r.pathTypes == nil {
		r.parseRule()
	}
	return r.pathTypes
}

// parseRule derives path and pathTypes together from one traversal of
// the rule's fragments.
func (r *Route) parseRule() {
	types := map[string]string{}
	segments := rule.Split(r.RawRule)
	fragments := make([]string, len(segments))
	for i, seg := range segments {
		if seg.Param != nil {
			types[seg.Param.Name] = seg.Param.Type
			fragments[i] = "{" + seg.Param.Name + "}"
			continue
		}
		fragments[i] = seg.Raw
	}
	path := strings.Join(fragments, "/")
	r.path = &path
	r.pathTypes = types
}

// Docstring returns the handler's documentation text with common
// leading indentation removed; an absent docstring yields "".
func (r *Route) Docstring() string {
	if r.docstring == nil {
		cleaned := Cleandoc(r.doc)
		r.docstring = &cleaned
	}
	return *r.docstring
}

// Title returns the human-readable label derived from HandlerName.
func (r *Route) Title() string {
	if r.title == nil {
		t := deriveTitle(r.HandlerName)
		r.title = &t
	}
	return *r.title
}
