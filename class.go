package typingargs

import (
	"fmt"
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/team23/typing-arguments/errors"
)

// Typed is anything that carries captured typing arguments: a class, a
// parameterization result, or an instance.
type Typed interface {
	Name() string
	// TypingArguments returns the merged type-variable bindings captured
	// for the underlying class. A nil map means the class never opted into
	// capture; an empty non-nil map means the class has the capture
	// capability but no arguments were provided yet.
	TypingArguments() Bindings
}

// Type is a class-like parameterization result: the synthesized bound class
// itself for record-backed classes, or a type alias wrapping it for plain
// classes. Classes are Types too, so both forms can serve as bases.
type Type interface {
	Typed
	Attr(name string) (reflect.Type, error)
	New() *Instance
	base() *Class
}

// Class is an explicit metadata record standing for one declared class: its
// formal type-variable parameters, its direct bases, the accessor
// attributes declared on its body, and the typing arguments merged from its
// ancestry. Classes are created by NewClass or NewRecordClass and by
// parameterization; they are never mutated afterwards.
type Class struct {
	name       string
	root       bool // the capture mixin itself
	capability bool // Mixin somewhere in the ancestry
	generic    bool // declared Generic(...) directly
	params     []*TypeVar
	bases      []*Class
	attrs      map[string]*Accessor
	bindings   Bindings     // nil until the class opts into capture
	recordType reflect.Type // backing struct type for record-backed classes
}

// Mixin is the root capture mixin. Classes opt into typing-argument capture
// by listing it (or any class descending from it) among their bases. The
// mixin itself is not generic: parameterizing it directly is an error.
var Mixin = &Class{name: "Mixin", root: true, capability: true}

// Option configures a class declaration.
type Option func(*Class)

// Generic declares the ordered formal type-variable parameters of the
// class. A class must carry this marker directly to be parameterizable;
// subclasses and synthesized bound classes do not inherit it.
func Generic(vars ...*TypeVar) Option {
	return func(c *Class) {
		if len(vars) == 0 {
			panic("typingargs: Generic requires at least one type variable")
		}
		seen := make(map[*TypeVar]struct{}, len(vars))
		for _, v := range vars {
			if v == nil {
				panic("typingargs: Generic: type variable must not be nil")
			}
			if _, ok := seen[v]; ok {
				panic(fmt.Sprintf("typingargs: Generic: duplicate type variable %s", v))
			}
			seen[v] = struct{}{}
		}
		c.generic = true
		c.params = append([]*TypeVar(nil), vars...)
	}
}

// WithBases declares direct bases in declaration order. A base may be a
// plain class, a synthesized bound class, or a parameterization alias.
func WithBases(bases ...Type) Option {
	return func(c *Class) {
		for _, b := range bases {
			if b == nil {
				panic("typingargs: WithBases: base must not be nil")
			}
			c.bases = append(c.bases, b.base())
		}
	}
}

// WithArg declares a named accessor attribute on the class body, bound to
// the given type variable. Reading the attribute resolves the variable
// against the typing arguments of the class it is read from, so subclasses
// inherit the attribute and resolve it against their own merged bindings.
func WithArg(name string, v *TypeVar) Option {
	return func(c *Class) {
		if name == "" {
			panic("typingargs: WithArg: attribute name must not be empty")
		}
		c.attrs[name] = Arg(v)
	}
}

// NewClass declares a plain class. Declaration misuse (empty name, nil or
// duplicate type variables, nil bases, empty attribute names) panics;
// parameterization and accessor failures are returned errors.
func NewClass(name string, opts ...Option) *Class {
	return declare(name, nil, opts)
}

// NewRecordClass declares a class backed by the struct type S, the
// counterpart of a plain class for record-like models. Parameterizing a
// record-backed class returns the synthesized bound class itself rather
// than an alias, and instances of it allocate a fresh S.
func NewRecordClass[S any](name string, opts ...Option) *Class {
	rt := TypeOf[S]()
	if rt.Kind() != reflect.Struct {
		panic(fmt.Sprintf("typingargs: record class %s: backing type must be a struct; got %s", name, rt.Kind()))
	}
	return declare(name, rt, opts)
}

func declare(name string, recordType reflect.Type, opts []Option) *Class {
	if name == "" {
		panic("typingargs: class name must not be empty")
	}
	c := &Class{name: name, recordType: recordType, attrs: make(map[string]*Accessor)}
	for _, opt := range opts {
		opt(c)
	}
	finish(c, nil)
	return c
}

// finish completes class registration: it derives the capture capability
// from the bases and publishes the merged typing arguments. Direct bases
// are folded in reverse declaration order, each base's map overlaying the
// running merge, then the class's own freshly captured bindings overlay the
// result last. Classes without the capability keep a nil map, which
// accessors report as the unbound-context error.
func finish(c *Class, own Bindings) {
	for _, b := range c.bases {
		if b.capability {
			c.capability = true
			break
		}
	}
	if !c.capability {
		return
	}
	merged := Bindings{}
	for i := len(c.bases) - 1; i >= 0; i-- {
		if tb := c.bases[i].bindings; tb != nil {
			merged.overlay(tb)
		}
	}
	merged.overlay(own)
	c.bindings = merged
}

// Name returns the declared class name. Synthesized bound classes are named
// after the class they parameterize, e.g. "TypedSomething".
func (c *Class) Name() string { return c.name }

// Params returns the declared formal type-variable parameters in order, or
// nil for non-generic classes.
func (c *Class) Params() []*TypeVar {
	return append([]*TypeVar(nil), c.params...)
}

// TypingArguments returns the class's merged typing arguments. The returned
// map is a copy; mutating it does not affect the class. It is nil if the
// class never opted into capture and empty if the capability is present but
// no arguments were provided yet.
func (c *Class) TypingArguments() Bindings { return c.bindings.clone() }

// Attr resolves the accessor attribute declared under name on this class or
// an ancestor against this class's own typing arguments.
func (c *Class) Attr(name string) (reflect.Type, error) {
	acc := c.findAttr(name)
	if acc == nil {
		return nil, errorc.With(
			errors.ErrAttributeNotFound,
			errorc.String(errors.ErrorFieldAttrName, name),
			errorc.String(errors.ErrorFieldClassName, c.name),
		)
	}
	return acc.Resolve(c)
}

// findAttr looks the attribute up on the class itself first, then
// depth-first through the bases in declaration order.
func (c *Class) findAttr(name string) *Accessor {
	if a, ok := c.attrs[name]; ok {
		return a
	}
	for _, b := range c.bases {
		if a := b.findAttr(name); a != nil {
			return a
		}
	}
	return nil
}

func (c *Class) base() *Class { return c }
