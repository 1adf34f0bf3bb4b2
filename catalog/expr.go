package catalog

import (
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/zero-day-ai/enumkit"
)

// Env returns the CEL environment of the catalog. It declares:
//
//	valueOf(type, name) -> int          ordinal of the constant, error on a miss
//	isConstant(type, name) -> bool      whether the constant is declared
//	constants(type) -> list(string)     declared names in order
//
// The environment is built once and shared.
func (c *Catalog) Env() (*cel.Env, error) {
	c.envOnce.Do(func() {
		c.env, c.envErr = cel.NewEnv(
			cel.Function("valueOf",
				cel.Overload("valueOf_string_string",
					[]*cel.Type{cel.StringType, cel.StringType}, cel.IntType,
					cel.BinaryBinding(c.celValueOf))),
			cel.Function("isConstant",
				cel.Overload("isConstant_string_string",
					[]*cel.Type{cel.StringType, cel.StringType}, cel.BoolType,
					cel.BinaryBinding(c.celIsConstant))),
			cel.Function("constants",
				cel.Overload("constants_string",
					[]*cel.Type{cel.StringType}, cel.ListType(cel.StringType),
					cel.UnaryBinding(c.celConstants))),
		)
	})
	return c.env, c.envErr
}

// Eval compiles and evaluates expr against the catalog and returns the
// result as a native Go value.
//
//	v, err := c.Eval(`valueOf("Color", "GREEN") > valueOf("Color", "RED")`) // true
func (c *Catalog) Eval(expr string) (any, error) {
	env, err := c.Env()
	if err != nil {
		return nil, enumkit.NewInternalError("catalog.Eval", err)
	}

	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, enumkit.NewInvalidArgumentError("catalog.Eval", iss.Err()).
			WithContext(map[string]any{"expr": expr})
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, enumkit.NewInternalError("catalog.Eval", err)
	}

	out, _, err := prg.Eval(map[string]any{})
	if err != nil {
		return nil, enumkit.NewInvalidArgumentError("catalog.Eval", err).
			WithContext(map[string]any{"expr": expr})
	}
	return out.Value(), nil
}

func (c *Catalog) celValueOf(typ, name ref.Val) ref.Val {
	k, err := c.Lookup(string(typ.(types.String)), string(name.(types.String)))
	if err != nil {
		return types.NewErr("%v", err)
	}
	return types.Int(k.Ordinal)
}

func (c *Catalog) celIsConstant(typ, name ref.Val) ref.Val {
	s, ok := c.Set(string(typ.(types.String)))
	if !ok {
		return types.False
	}
	return types.Bool(s.Contains(string(name.(types.String))))
}

func (c *Catalog) celConstants(typ ref.Val) ref.Val {
	s, err := c.set("catalog.constants", string(typ.(types.String)))
	if err != nil {
		return types.NewErr("%v", err)
	}
	return types.NewStringList(types.DefaultTypeAdapter, s.Names())
}
