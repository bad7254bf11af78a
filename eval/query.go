package eval

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/cram/debug"
	"github.com/signadot/cram/value"

	"github.com/expr-lang/expr"
)

var ErrResult = errors.New("unsupported expression result")

// Query compiles expression and runs it with doc bound to the name doc,
// converting the result back to a value.
func Query(doc *value.Value, expression string) (*value.Value, error) {
	env := map[string]any{"doc": value.ToAny(doc)}
	prg, err := expr.Compile(expression, append(exprOpts(doc), expr.Env(env))...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q returned %T\n", expression, res)
	}
	return FromAny(res)
}

// FromAny converts an expression result to a value. Results of types
// value.FromAny does not know, such as []string, are converted through
// JSON.
func FromAny(res any) (*value.Value, error) {
	v, err := value.FromAny(res)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, value.ErrUnsupported) {
		return nil, err
	}
	d, jErr := json.Marshal(res)
	if jErr != nil {
		return nil, fmt.Errorf("%w: %T", ErrResult, res)
	}
	return value.FromJSON(d)
}
