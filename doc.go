// Package typingargs recovers the concrete types substituted for a generic
// class's type variables and exposes them at runtime, both as a lookup
// table and as individually named attributes.
//
// Go erases the type arguments of a generic instantiation, so a
// parameterized abstraction cannot normally tell which type was substituted
// for each of its slots. This package models classes as explicit metadata
// records instead: a class declares its formal parameters as type
// variables, opts into capture by listing Mixin among its bases, and is
// parameterized with reflect.Type arguments. Parameterization synthesizes a
// new bound class carrying the variable->type bindings merged across the
// whole inheritance chain, memoized so identical parameterizations return
// the same object.
//
//	var (
//		T1 = typingargs.NewVar("T1")
//		T2 = typingargs.NewVar("T2")
//	)
//
//	var Something = typingargs.NewClass("Something",
//		typingargs.WithBases(typingargs.Mixin),
//		typingargs.Generic(T1, T2),
//		typingargs.WithArg("t1", T1),
//		typingargs.WithArg("t2", T2),
//	)
//
//	concrete, err := Something.Parameterize(typingargs.TypeOf[string](), typingargs.TypeOf[int]())
//	// concrete.Attr("t1") == reflect.Type for string
//	// concrete.Attr("t2") == reflect.Type for int
//	// concrete.TypingArguments() == Bindings{T1: string, T2: int}
//
// Subclassing without re-parameterization inherits the full merged
// bindings, including across several levels and across multiple bases:
//
//	var Child = typingargs.NewClass("Child", typingargs.WithBases(concrete))
//	// Child.Attr("t1") still resolves to string
//
// Record-backed classes, declared with NewRecordClass over a struct type,
// follow the same contract; their parameterization result is the bound
// class itself and their instances allocate the backing struct.
//
// All misuse surfaces as errors matched with errors.Is against the
// sentinels in the errors subpackage: parameterizing the mixin itself or a
// class without declared type parameters, supplying the wrong number of
// arguments, or reading an accessor whose variable was never bound.
package typingargs
