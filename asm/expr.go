package asm

import (
	"fmt"
	"regexp"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/imemasm/imem"
)

var exprRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// parenEval does compile-time $(...) evaluations.
func parenEval(expr string, lineno int) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"DEPTH":  starlark.MakeInt(imem.DEPTH),
		"LINENO": starlark.MakeInt(lineno),
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrParseExpression{Expr: expr, Err: err}
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrParseExpression{Expr: expr}
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = &ErrParseExpression{Expr: expr}
		return
	}

	return
}

// operandEdge returns true if line[n] separates operands, or n is outside
// the line.
func operandEdge(line string, n int) bool {
	if n < 0 || n >= len(line) {
		return true
	}

	switch line[n] {
	case ' ', '\t', ',':
		return true
	}

	return false
}

// expandLine replaces every $(...) in line with its value as a hex literal.
// Each $(...) must be a whole operand: "r$(1)" or "0x$(1)" would have
// their digits reread in another base.
func expandLine(line string, lineno int) (expanded string, err error) {
	var out strings.Builder

	last := 0
	for _, loc := range exprRegexp.FindAllStringIndex(line, -1) {
		start, end := loc[0], loc[1]
		expr := line[start+2 : end-1]

		if !operandEdge(line, start-1) || !operandEdge(line, end) {
			err = &ErrParseExpression{Expr: expr, Err: ErrPartialOperand}
			return
		}

		var value int64
		value, err = parenEval(expr, lineno)
		if err != nil {
			return
		}

		out.WriteString(line[last:start])
		if value < 0 {
			fmt.Fprintf(&out, "-%#x", -value)
		} else {
			fmt.Fprintf(&out, "%#x", value)
		}
		last = end
	}
	out.WriteString(line[last:])

	expanded = out.String()
	return
}
