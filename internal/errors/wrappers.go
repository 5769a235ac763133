package errors

import "fmt"

// Constructors for the core analyzer failure kinds. They exist so the
// evaluator and flattener produce uniformly-worded errors.

// NameNotGlobal reports a name that is neither a built-in constant nor
// present in the module's global-bindings snapshot.
func NameNotGlobal(name string) *BaseError {
	return New(NameNotGlobalCode, "name %q is not a module global", name)
}

// UnsupportedOperation reports a binary operation the evaluator refuses
// to perform.
func UnsupportedOperation(op string) *BaseError {
	return New(UnsupportedOperationCode, "unsupported operation %q", op)
}

// UnsupportedExpression reports a node kind outside the evaluator's
// supported set.
func UnsupportedExpression(kind string) *BaseError {
	return New(UnsupportedExpressionCode, "cannot evaluate %s", kind)
}

// MalformedDecorator reports a decorator whose callee cannot be
// flattened to a dotted name.
func MalformedDecorator(detail string) *BaseError {
	return New(MalformedDecoratorCode, "malformed decorator: %s", detail)
}

// MalformedRoute reports a route decorator whose arguments do not form
// a usable rule.
func MalformedRoute(detail string) *BaseError {
	return New(MalformedRouteCode, "malformed route: %s", detail)
}

// WrapParse wraps a frontend parse failure.
func WrapParse(item string, cause error) *BaseError {
	return Wrap(ParseCode, fmt.Sprintf("failed to parse %s", item), cause)
}

// WrapFileSystem wraps a file system failure.
func WrapFileSystem(operation, path string, cause error) *BaseError {
	return Wrap(FileSystemCode, fmt.Sprintf("failed to %s %q", operation, path), cause)
}

// WrapConfiguration wraps a configuration loading failure.
func WrapConfiguration(item string, cause error) *BaseError {
	return Wrap(ConfigurationCode, fmt.Sprintf("failed to load %s", item), cause)
}

// WrapFormat wraps a documentation rendering failure.
func WrapFormat(target string, cause error) *BaseError {
	return Wrap(FormatCode, fmt.Sprintf("failed to render %s", target), cause)
}
