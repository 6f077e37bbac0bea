// Package lua exposes the notation converter to gopher-lua scripts.
//
//	local notation = require("notation")
//	local out, err, kind = notation.convert("( 1 + 2 ) * 3", "infix", "postfix")
//
// Failing calls return nil, an error message and a short fault kind such as
// "insufficient operand" or "wrong format".
package lua

import (
	"errors"

	"github.com/alttpo/notation"
	"github.com/yuin/gopher-lua"
)

const ModuleName = "notation"

var exports = map[string]lua.LGFunction{
	"convert":  convert,
	"validate": validate,
	"tree":     tree,
	"sexpr":    sexpr,
	"formats":  formats,
}

// Preload registers the module so scripts can require("notation").
func Preload(L *lua.LState) {
	L.PreloadModule(ModuleName, Loader)
}

// Loader builds the module table.
func Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), exports)
	L.Push(mod)
	return 1
}

func checkFormat(L *lua.LState, n int) notation.Format {
	f, err := notation.ParseFormat(L.CheckString(n))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return f
}

func pushError(L *lua.LState, err error) int {
	L.Push(lua.LNil)
	L.Push(lua.LString(err.Error()))
	L.Push(lua.LString(Kind(err)))
	return 3
}

var kinds = []struct {
	err  error
	name string
}{
	{notation.ErrInvalidCharacter, "invalid character"},
	{notation.ErrUnbalancedParentheses, "unbalanced parentheses"},
	{notation.ErrIllegalParentheses, "illegal parentheses"},
	{notation.ErrInsufficientOperand, "insufficient operand"},
	{notation.ErrInsufficientOperator, "insufficient operator"},
	{notation.ErrWrongFormat, "wrong format"},
	{notation.ErrUnknownFormat, "unknown format"},
}

// Kind names the fault behind err.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "malformed"
}

func convert(L *lua.LState) int {
	expr := L.CheckString(1)
	from := checkFormat(L, 2)
	to := checkFormat(L, 3)

	c, err := notation.StrictConverter.Convert(expr, from, to)
	if err != nil {
		return pushError(L, err)
	}
	L.Push(lua.LString(c.Output))
	L.Push(lua.LBool(c.AlreadyInTargetForm))
	return 2
}

func validate(L *lua.LState) int {
	expr := L.CheckString(1)
	f := checkFormat(L, 2)

	L.Push(lua.LString(notation.IsValid(expr, f).String()))
	return 1
}

func tree(L *lua.LState) int {
	expr := L.CheckString(1)
	f := checkFormat(L, 2)

	n, err := notation.StrictConverter.Parse(expr, f)
	if err != nil {
		return pushError(L, err)
	}
	L.Push(toTable(L, n))
	return 1
}

// toTable converts operands to {operand="x"} and operators to
// {op="+", left=..., right=...}.
func toTable(L *lua.LState, n *notation.Node) *lua.LTable {
	t := L.NewTable()
	if n.IsLeaf() {
		t.RawSetString("operand", lua.LString(string(n.Value)))
		return t
	}
	t.RawSetString("op", lua.LString(string(n.Value)))
	t.RawSetString("left", toTable(L, n.Left))
	t.RawSetString("right", toTable(L, n.Right))
	return t
}

func sexpr(L *lua.LState) int {
	expr := L.CheckString(1)
	f := checkFormat(L, 2)

	n, err := notation.StrictConverter.Parse(expr, f)
	if err != nil {
		return pushError(L, err)
	}
	L.Push(lua.LString(n.SExpr()))
	return 1
}

func formats(L *lua.LState) int {
	t := L.NewTable()
	for _, f := range notation.Formats() {
		t.Append(lua.LString(f.String()))
	}
	L.Push(t)
	return 1
}
