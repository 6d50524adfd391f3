package consola

import "reflect"

// causer is the github.com/pkg/errors convention for exposing the wrapped
// error; stdlib chains built with fmt.Errorf("%w") use the standard
// Unwrap() error method instead. WalkErrorChain accepts either so callers are not forced
// onto one wrapping convention.
type causer interface {
	Cause() error
}

type unwrapper interface {
	Unwrap() error
}

// WalkErrorChain walks err's causal chain and returns the Error() string of
// every link, starting with err itself. The walk stops the first time it
// would revisit an error value it has already seen (identity, not value,
// equality), which makes it terminate even on a legal but cyclic chain.
func WalkErrorChain(err error) []string {
	if err == nil {
		return nil
	}
	var out []string
	seen := make(map[uintptr]struct{})
	cur := err
	for cur != nil {
		id, ok := identity(cur)
		if ok {
			if _, dup := seen[id]; dup {
				break
			}
			seen[id] = struct{}{}
		}
		out = append(out, cur.Error())
		cur = next(cur)
	}
	return out
}

// next returns the wrapped error one level down the chain, preferring the
// stdlib Unwrap convention and falling back to pkg/errors' Cause.
func next(err error) error {
	if u, ok := err.(unwrapper); ok {
		return u.Unwrap()
	}
	if c, ok := err.(causer); ok {
		return c.Cause()
	}
	return nil
}

// identity extracts a stable address-based identity for err when it is
// backed by a pointer, so the cycle guard compares object addresses rather
// than error values (two distinct errors may legitimately format to the
// same string). Value-typed errors have no stable address and are not
// tracked; a chain built entirely of value types cannot cycle back to an
// earlier link without also being infinite in a way Unwrap/Cause cannot
// express, since each Unwrap call allocates a fresh value.
func identity(err error) (uintptr, bool) {
	v := reflect.ValueOf(err)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return 0, false
	}
	return v.Pointer(), true
}
