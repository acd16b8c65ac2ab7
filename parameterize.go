package typingargs

import (
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/ygrebnov/errorc"

	"github.com/team23/typing-arguments/constants"
	"github.com/team23/typing-arguments/errors"
)

// Parameterize substitutes concrete types for the class's declared type
// variables, in declaration order. Precondition failures, each a returned
// error:
//  1. The receiver is the root Mixin and arguments were supplied.
//  2. The receiver does not directly declare Generic(...). Subclasses and
//     synthesized bound classes never carry the marker, so a class cannot be
//     re-parameterized through a descendant.
//  3. The argument count differs from the declared parameter count.
//
// On success the declared variables are zipped with the arguments into
// fresh bindings, which overlay any bindings inherited from the ancestry
// (fresh bindings win on collision), and a new bound class is synthesized
// carrying the merged map. Record-backed classes return the bound class
// itself; plain classes return an *Alias wrapping it.
//
// Results are memoized process-wide by class identity and the exact ordered
// argument types, so repeated identical parameterization returns the same
// object. Failed calls are not cached.
func (c *Class) Parameterize(args ...reflect.Type) (Type, error) {
	if c.root && len(args) > 0 {
		return nil, errorc.With(
			errors.ErrMixinParameterized,
			errorc.String(errors.ErrorFieldClassName, c.name),
		)
	}
	if !c.generic {
		return nil, errorc.With(
			errors.ErrNotGeneric,
			errorc.String(errors.ErrorFieldClassName, c.name),
		)
	}
	if len(args) != len(c.params) {
		return nil, errorc.With(
			errors.ErrParameterCount,
			errorc.String(errors.ErrorFieldClassName, c.name),
			errorc.String(errors.ErrorFieldWantParams, strconv.Itoa(len(c.params))),
			errorc.String(errors.ErrorFieldGotParams, strconv.Itoa(len(args))),
		)
	}
	return boundResults.resolve(c, args, c.bind), nil
}

// bind captures the variable->type bindings for args and synthesizes the
// bound class. Capture only happens for classes with the capture
// capability; a generic class that never inherited the mixin still
// parameterizes, but its result carries no bindings and accessor reads on
// it fail with the unbound-context error.
func (c *Class) bind(args []reflect.Type) Type {
	var captured Bindings
	if c.capability {
		captured = make(Bindings, len(c.params))
		for i, v := range c.params {
			captured[v] = args[i]
		}
	}
	bound := &Class{
		name:       constants.TypedClassNamePrefix + c.name,
		bases:      []*Class{c},
		attrs:      make(map[string]*Accessor),
		recordType: c.recordType,
	}
	finish(bound, captured)
	if c.recordType != nil {
		return bound
	}
	return &Alias{class: bound, origin: c, args: slices.Clone(args)}
}

// Alias is the parameterization result for plain classes: a type-alias-like
// wrapper around the synthesized bound class, usable as a base and exposing
// the same typing arguments. It displays as "Name[arg, ...]".
type Alias struct {
	class  *Class
	origin *Class
	args   []reflect.Type
}

func (a *Alias) Name() string {
	var sb strings.Builder
	sb.WriteString(a.origin.name)
	sb.WriteByte('[')
	for i, t := range a.args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// TypingArguments returns the merged typing arguments of the synthesized
// bound class this alias wraps. The returned map is a copy.
func (a *Alias) TypingArguments() Bindings { return a.class.bindings.clone() }

// Attr resolves an accessor attribute through the synthesized bound class.
func (a *Alias) Attr(name string) (reflect.Type, error) { return a.class.Attr(name) }

// New creates an instance of the synthesized bound class.
func (a *Alias) New() *Instance { return a.class.New() }

func (a *Alias) base() *Class { return a.class }

// boundCache memoizes parameterization results for the process lifetime.
// It starts empty and is never evicted: the key space, classes crossed with
// the argument tuples a program actually uses, is small and static.
type boundCache struct {
	mu      sync.Mutex
	entries map[*Class][]boundEntry
}

// boundEntry pins one exact ordered argument tuple to its result. Argument
// types are compared with ==, which for reflect.Type is exact-type
// identity, not mere equality of representation.
type boundEntry struct {
	args   []reflect.Type
	result Type
}

var boundResults = &boundCache{entries: make(map[*Class][]boundEntry)}

// resolve returns the cached result for (cls, args) or creates, stores, and
// returns a new one. The lock is held across creation so concurrent
// first-time parameterization of the same class yields a single result.
func (bc *boundCache) resolve(cls *Class, args []reflect.Type, create func([]reflect.Type) Type) Type {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	for _, e := range bc.entries[cls] {
		if sameTypes(e.args, args) {
			return e.result
		}
	}
	result := create(args)
	bc.entries[cls] = append(bc.entries[cls], boundEntry{args: slices.Clone(args), result: result})
	return result
}

func sameTypes(a, b []reflect.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
