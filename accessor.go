package typingargs

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/team23/typing-arguments/errors"
)

// Accessor resolves one type variable, on read, to the concrete type bound
// to it in the typing arguments of whatever class it is read against. It is
// read-only and stateless beyond the referenced variable.
type Accessor struct {
	v *TypeVar
}

// Arg creates an accessor for the given type variable. Declare it as a
// named class attribute with WithArg, or use it standalone against any
// class, alias, or instance.
func Arg(v *TypeVar) *Accessor {
	if v == nil {
		panic("typingargs: Arg: type variable must not be nil")
	}
	return &Accessor{v: v}
}

// Var returns the type variable this accessor resolves.
func (a *Accessor) Var() *TypeVar { return a.v }

// Resolve looks the accessor's variable up in owner's typing arguments.
// It fails with ErrNoTypingArguments if owner's class never captured any
// bindings (the capture mixin is missing from its ancestry), and with
// ErrTypeVarNotBound if bindings exist but this variable is not among them,
// e.g. when the class was used unparameterized.
func (a *Accessor) Resolve(owner Typed) (reflect.Type, error) {
	ta := owner.TypingArguments()
	if ta == nil {
		return nil, errorc.With(
			errors.ErrNoTypingArguments,
			errorc.String(errors.ErrorFieldClassName, owner.Name()),
			errorc.String(errors.ErrorFieldVarName, a.v.String()),
		)
	}
	t, ok := ta[a.v]
	if !ok {
		return nil, errorc.With(
			errors.ErrTypeVarNotBound,
			errorc.String(errors.ErrorFieldClassName, owner.Name()),
			errorc.String(errors.ErrorFieldVarName, a.v.String()),
		)
	}
	return t, nil
}
