package eval

import (
	"os"

	"github.com/signadot/cram/value"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *value.Value) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			return value.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
