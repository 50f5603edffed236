package calculator

import (
	"errors"
	"fmt"
	"sort"
	"unicode"
)

// Control ids understood by the keypad
const (
	ControlDecimal   = "decimal"
	ControlAdd       = "op-add"
	ControlSubtract  = "op-subtract"
	ControlMultiply  = "op-multiply"
	ControlDivide    = "op-divide"
	ControlEquals    = "equals"
	ControlClear     = "clear"
	ControlBackspace = "backspace"
)

// ErrUnknownControl is returned when a control id has no bound action
var ErrUnknownControl = errors.New("unknown control")

// DigitControl returns the control id for a digit key, e.g. "digit-7"
func DigitControl(d rune) string {
	return "digit-" + string(d)
}

// Keypad binds control ids to actions on a single engine. It replaces
// string-evaluated button handlers with a table of closures.
type Keypad struct {
	engine   *Engine
	controls map[string]func()
	keys     map[string]string
}

// NewKeypad builds the control table for e
func NewKeypad(e *Engine) *Keypad {
	k := &Keypad{
		engine:   e,
		controls: make(map[string]func()),
		keys:     make(map[string]string),
	}

	for d := '0'; d <= '9'; d++ {
		digit := d
		id := DigitControl(digit)
		k.bind(id, func() { e.InputDigit(digit) }, string(digit))
	}

	k.bind(ControlDecimal, e.InputDecimalPoint, ".", ",")
	k.bind(ControlAdd, func() { e.CommitOperator(OpAdd) }, "+")
	k.bind(ControlSubtract, func() { e.CommitOperator(OpSubtract) }, "-")
	k.bind(ControlMultiply, func() { e.CommitOperator(OpMultiply) }, "*", "x", "×")
	k.bind(ControlDivide, func() { e.CommitOperator(OpDivide) }, "/", "÷")
	k.bind(ControlEquals, e.Evaluate, "=", "enter")
	k.bind(ControlClear, e.Clear, "c", "C", "esc", "delete")
	k.bind(ControlBackspace, e.Backspace, "backspace", "<")

	return k
}

func (k *Keypad) bind(id string, action func(), keys ...string) {
	k.controls[id] = action
	for _, key := range keys {
		k.keys[key] = id
	}
}

// Engine returns the engine the keypad drives
func (k *Keypad) Engine() *Engine {
	return k.engine
}

// Press runs the action bound to id
func (k *Keypad) Press(id string) error {
	action, ok := k.controls[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownControl, id)
	}
	action()
	return nil
}

// Controls returns all control ids in sorted order
func (k *Keypad) Controls() []string {
	ids := make([]string, 0, len(k.controls))
	for id := range k.controls {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ControlForKey maps a key label (as reported by the terminal) to a control id
func (k *Keypad) ControlForKey(key string) (string, bool) {
	id, ok := k.keys[key]
	return id, ok
}

// Run presses one control per symbol of sequence, e.g. "6+4=" or "12.5/0=".
// Whitespace is skipped. The sequence is rejected before any key is pressed
// if it contains a symbol with no control.
func (k *Keypad) Run(sequence string) error {
	var ids []string
	for i, r := range sequence {
		if unicode.IsSpace(r) {
			continue
		}
		id, ok := k.keys[string(r)]
		if !ok {
			return fmt.Errorf("%w: %q at offset %d", ErrUnknownControl, r, i)
		}
		ids = append(ids, id)
	}

	for _, id := range ids {
		k.controls[id]()
	}
	return nil
}
