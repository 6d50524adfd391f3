package consola

import (
	"encoding/json"
	"strconv"
)

// ArgKind tags the variant held by an ArgValue.
type ArgKind uint8

const (
	KindString ArgKind = iota
	KindNumber
	KindBool
	KindError
	KindDebug
	KindJSON
)

// ArgValue is a closed tagged union over the argument types a log call may
// carry. Display of each variant is canonical and stable: it is used
// verbatim by the throttler's fingerprint, so it must never depend on
// locale, map iteration order, or other non-deterministic state.
type ArgValue struct {
	kind   ArgKind
	str    string
	num    float64
	bool_  bool
	raw    json.RawMessage
}

// String wraps a string argument.
func String(s string) ArgValue { return ArgValue{kind: KindString, str: s} }

// Number wraps a numeric argument.
func Number(n float64) ArgValue { return ArgValue{kind: KindNumber, num: n} }

// Bool wraps a boolean argument.
func Bool(b bool) ArgValue { return ArgValue{kind: KindBool, bool_: b} }

// Err wraps an error argument by its message, per spec.md §3 (ArgValue::Error
// carries a message, not the error value itself).
func Err(err error) ArgValue {
	if err == nil {
		return ArgValue{kind: KindError, str: ""}
	}
	return ArgValue{kind: KindError, str: err.Error()}
}

// Debug wraps an already-rendered debug string for values with no more
// specific ArgValue representation.
func Debug(rendered string) ArgValue { return ArgValue{kind: KindDebug, str: rendered} }

// JSON wraps pre-marshaled JSON for the (out-of-scope) JSON renderer
// collaborator; the core stores and displays it but never parses it.
func JSON(raw json.RawMessage) ArgValue { return ArgValue{kind: KindJSON, raw: raw} }

// Kind reports which variant is held.
func (a ArgValue) Kind() ArgKind { return a.kind }

// FromInt64 converts a signed integer to a Number ArgValue.
func FromInt64(n int64) ArgValue { return Number(float64(n)) }

// FromUint64 converts an unsigned integer to a Number ArgValue.
func FromUint64(n uint64) ArgValue { return Number(float64(n)) }

// Display renders the canonical, stable string form of the variant.
func (a ArgValue) Display() string {
	switch a.kind {
	case KindString, KindError, KindDebug:
		return a.str
	case KindNumber:
		return strconv.FormatFloat(a.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(a.bool_)
	case KindJSON:
		return string(a.raw)
	default:
		return ""
	}
}

// String implements fmt.Stringer so ArgValue composes naturally with
// fmt-based reporters.
func (a ArgValue) String() string { return a.Display() }

// buildMessage space-joins the Display of each arg, or returns ("", false)
// when args is empty.
func buildMessage(args []ArgValue) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	out := args[0].Display()
	for _, a := range args[1:] {
		out += " " + a.Display()
	}
	return out, true
}
