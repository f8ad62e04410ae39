// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package board

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Op is a stimulus instruction kind.
type Op int

const (
	OP_KEYS    = Op(0) // VALUE: replace the key state.
	OP_PRESS   = Op(1) // VALUE: hold the keys in the mask.
	OP_RELEASE = Op(2) // VALUE: release the keys in the mask.
	OP_TICK    = Op(3) // [COUNT]: run one or more board ticks.
	OP_RESET   = Op(4) // Reset the board.
)

var opNames = map[string]Op{
	"keys":    OP_KEYS,
	"press":   OP_PRESS,
	"release": OP_RELEASE,
	"tick":    OP_TICK,
	"reset":   OP_RESET,
}

// opArgs is the argument count per op; -1 marks an optional argument.
var opArgs = map[Op]int{
	OP_KEYS:    1,
	OP_PRESS:   1,
	OP_RELEASE: 1,
	OP_TICK:    -1,
	OP_RESET:   0,
}

// Step is one parsed stimulus instruction.
type Step struct {
	LineNo int    // Line number of the instruction.
	Op     Op     // Instruction kind.
	Arg    uint32 // Instruction argument, if any.
}

// Script is a parsed stimulus listing for a Board.
type Script struct {
	Steps    []Step
	MaxTicks int // Tick budget for Run; 0 is unlimited.
}

// parenEval does $(...) evaluations against the board defines.
func parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range Defines() {
		value64, perr := strconv.ParseUint(str, 0, 32)
		if perr != nil {
			continue
		}
		pred[key] = starlark.MakeInt(int(value64))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)

	return
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// parseLine parses one stimulus line into its step, expanding $(...)
// expressions first. A blank or comment-only line yields ok=false.
func parseLine(line string, lineno int) (step Step, ok bool, err error) {
	// Strip comments.
	if n := strings.IndexAny(line, "#;"); n >= 0 {
		line = line[:n]
	}

	// Do $() evaluations
	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
			return str
		}
		return strconv.FormatUint(uint64(value), 10)
	})
	if err != nil {
		return
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	op, found := opNames[strings.ToLower(words[0])]
	if !found {
		err = ErrOpInvalid
		return
	}

	args := opArgs[op]
	switch {
	case len(words)-1 > 1 || (args == 0 && len(words) > 1):
		err = ErrExtraArgs
		return
	case args == 1 && len(words) == 1:
		err = ErrArgMissing
		return
	}

	step = Step{LineNo: lineno, Op: op}
	if op == OP_TICK {
		step.Arg = 1
	}
	if len(words) == 2 {
		value, perr := strconv.ParseUint(words[1], 0, 32)
		if perr != nil {
			err = ErrParseNumber(words[1])
			return
		}
		step.Arg = uint32(value)
	}
	ok = true

	return
}

// ParseScript reads a stimulus listing: one instruction per line, '#'
// or ';' comments, $(...) compile-time expressions with the Defines()
// constants predefined.
func ParseScript(r io.Reader) (script *Script, err error) {
	script = &Script{}

	lineno := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		step, ok, perr := parseLine(line, lineno)
		if perr != nil {
			script = nil
			err = ErrScript{LineNo: lineno, Line: strings.TrimSpace(line), Err: perr}
			return
		}
		if !ok {
			continue
		}

		script.Steps = append(script.Steps, step)
	}
	if err = scanner.Err(); err != nil {
		script = nil
	}

	return
}

// Run applies the stimulus to brd. When observe is not nil it is called
// after every board tick.
func (script *Script) Run(brd *Board, observe func(brd *Board)) (err error) {
	for _, step := range script.Steps {
		switch step.Op {
		case OP_KEYS:
			brd.SetKeys(uint8(step.Arg))
		case OP_PRESS:
			brd.SetKeys(brd.Keys() | uint8(step.Arg))
		case OP_RELEASE:
			brd.SetKeys(brd.Keys() &^ uint8(step.Arg))
		case OP_RESET:
			brd.Reset()
		case OP_TICK:
			for n := uint32(0); n < step.Arg; n++ {
				if script.MaxTicks > 0 && brd.Ticks() >= script.MaxTicks {
					err = ErrScript{LineNo: step.LineNo, Err: ErrMaxTicks}
					return
				}
				if err = brd.Tick(); err != nil {
					err = ErrScript{LineNo: step.LineNo, Err: err}
					return
				}
				if observe != nil {
					observe(brd)
				}
			}
		}
	}

	return
}
