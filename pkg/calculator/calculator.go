// Package calculator implements the state machine behind the calculator
// widget: digit accumulation, a single pending operator and evaluation.
//
// Every operation is total. Division by zero produces 0 rather than an IEEE
// infinity, matching the widget this engine replaces.
package calculator

import (
	"fmt"
	"strings"
)

// Operator is a binary arithmetic operator
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// String returns the symbol for the operator
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return ""
	}
}

// MarshalText encodes the operator as its symbol
func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an operator symbol
func (o *Operator) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*o = OpNone
		return nil
	}
	op, err := ParseOperator(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}

// ParseOperator converts a symbol to an Operator
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSubtract, nil
	case "*", "x", "×":
		return OpMultiply, nil
	case "/", "÷":
		return OpDivide, nil
	default:
		return OpNone, fmt.Errorf("invalid operator: %q (must be one of + - * /)", s)
	}
}

// Computation records one evaluated operation
type Computation struct {
	Left     string   `json:"left" yaml:"left"`
	Operator Operator `json:"operator" yaml:"operator"`
	Right    string   `json:"right" yaml:"right"`
	Result   string   `json:"result" yaml:"result"`
}

// String renders the computation as "6 + 4 = 10"
func (c Computation) String() string {
	return fmt.Sprintf("%s %s %s = %s", c.Left, c.Operator, c.Right, c.Result)
}

// Option configures an Engine
type Option func(*Engine)

// WithObserver registers fn to be called after every computed result
func WithObserver(fn func(Computation)) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}

// Engine holds the calculator state. It is not safe for concurrent use; the
// UI layer that constructs it owns it.
type Engine struct {
	currentInput      string
	previousInput     *string
	operator          Operator
	waitingForOperand bool

	observer func(Computation)
}

// New creates an engine in its initial state
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	e.Clear()
	return e
}

// InputDigit types a single digit. Anything other than '0'-'9' is ignored.
func (e *Engine) InputDigit(d rune) {
	if d < '0' || d > '9' {
		return
	}

	switch {
	case e.waitingForOperand:
		e.currentInput = string(d)
		e.waitingForOperand = false
	case e.currentInput == "0":
		e.currentInput = string(d)
	default:
		e.currentInput += string(d)
	}
}

// InputDecimalPoint types a decimal point, at most once per number
func (e *Engine) InputDecimalPoint() {
	if e.waitingForOperand {
		e.currentInput = "0."
		e.waitingForOperand = false
		return
	}
	if !strings.Contains(e.currentInput, ".") {
		e.currentInput += "."
	}
}

// CommitOperator resolves any pending computation, then makes op the pending
// operator with the display value as its left operand.
func (e *Engine) CommitOperator(op Operator) {
	if op == OpNone {
		return
	}
	e.Evaluate()
	current := e.currentInput
	e.previousInput = &current
	e.operator = op
	e.waitingForOperand = true
}

// Evaluate applies the pending operator if both operands are present.
// Otherwise it captures the display value as the left operand.
func (e *Engine) Evaluate() {
	if e.previousInput == nil || e.operator == OpNone || e.waitingForOperand {
		current := e.currentInput
		e.previousInput = &current
		e.waitingForOperand = true
		return
	}

	left := *e.previousInput
	right := e.currentInput
	result := FormatNumber(apply(e.operator, ParseOperand(left), ParseOperand(right)))

	comp := Computation{Left: left, Operator: e.operator, Right: right, Result: result}

	e.currentInput = result
	e.previousInput = nil
	e.operator = OpNone
	e.waitingForOperand = true

	if e.observer != nil {
		e.observer(comp)
	}
}

// Clear resets the engine to its initial state
func (e *Engine) Clear() {
	e.currentInput = "0"
	e.previousInput = nil
	e.operator = OpNone
	e.waitingForOperand = false
}

// Backspace removes the last typed character
func (e *Engine) Backspace() {
	if len(e.currentInput) > 1 {
		e.currentInput = e.currentInput[:len(e.currentInput)-1]
		return
	}
	e.currentInput = "0"
}

// DisplayText returns the text shown on the display
func (e *Engine) DisplayText() string {
	return e.currentInput
}

// Pending returns the left operand and operator awaiting a right operand
func (e *Engine) Pending() (operand string, op Operator, ok bool) {
	if e.previousInput == nil || e.operator == OpNone {
		return "", OpNone, false
	}
	return *e.previousInput, e.operator, true
}

// Waiting reports whether the next digit starts a new number
func (e *Engine) Waiting() bool {
	return e.waitingForOperand
}

func apply(op Operator, left, right float64) float64 {
	switch op {
	case OpAdd:
		return left + right
	case OpSubtract:
		return left - right
	case OpMultiply:
		return left * right
	case OpDivide:
		if right == 0 {
			return 0
		}
		return left / right
	}
	return right
}
