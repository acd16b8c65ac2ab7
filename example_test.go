package typingargs

import (
	"errors"
	"fmt"

	typingErrors "github.com/team23/typing-arguments/errors"
)

func ExampleClass_Parameterize() {
	v1 := NewVar("T1")
	v2 := NewVar("T2")

	something := NewClass("Something",
		WithBases(Mixin),
		Generic(v1, v2),
		WithArg("t1", v1),
		WithArg("t2", v2),
	)

	concrete, err := something.Parameterize(TypeOf[string](), TypeOf[int]())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	t1, _ := concrete.Attr("t1")
	t2, _ := concrete.Attr("t2")
	fmt.Println(concrete.Name(), "->", t1, t2)

	// Output: Something[string, int] -> string int
}

func ExampleClass_Parameterize_subclass() {
	v := NewVar("T")

	base := NewClass("Repository", WithBases(Mixin), Generic(v), WithArg("entity", v))
	users, err := base.Parameterize(TypeOf[struct{ ID int }]())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Subclassing without re-parameterization inherits the bindings.
	audited := NewClass("AuditedRepository", WithBases(users))
	entity, err := audited.Attr("entity")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("entity type:", entity)

	// Output: entity type: struct { ID int }
}

func ExampleArg() {
	v := NewVar("T")
	cls := NewClass("Box", WithBases(Mixin), Generic(v))

	// Reading the accessor before any arguments were provided fails.
	if _, err := Arg(v).Resolve(cls); errors.Is(err, typingErrors.ErrTypeVarNotBound) {
		fmt.Println("unparameterized: not bound")
	}

	boxed, err := cls.Parameterize(TypeOf[float64]())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	t, err := Arg(v).Resolve(boxed)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("bound:", t)

	// Output: unparameterized: not bound
	// bound: float64
}
