// Package eval evaluates expr-lang expressions against value trees.
//
// The document is bound to the name doc, with mappings as map[string]any,
// arrays as []any and numbers as int or float64:
//
//	v, err := eval.Query(doc, `filter(doc.items, .size > 10)`)
//
// Besides the expr-lang builtins, expressions may call
//
//   - getpath(p): the value at JSON Pointer p in doc
//   - getenv(name): an environment variable
//
// # Related Packages
//
//   - github.com/signadot/cram/value - Value trees
package eval
