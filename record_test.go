package typingargs

import (
	"reflect"
	"testing"
)

type userRecord struct {
	Name string
	Age  int
}

func TestRecordClass(t *testing.T) {
	v1 := NewVar("T1")
	v2 := NewVar("T2")
	model := NewRecordClass[userRecord]("UserModel",
		WithBases(Mixin),
		Generic(v1, v2),
		WithArg("t1", v1),
		WithArg("t2", v2),
	)

	t.Run("parameterization returns the bound class itself", func(t *testing.T) {
		result := mustParameterize(t, model, TypeOf[string](), TypeOf[int]())
		bound, ok := result.(*Class)
		if !ok {
			t.Fatalf("result is %T, want *Class", result)
		}
		if got, want := bound.Name(), "TypedUserModel"; got != want {
			t.Fatalf("Name = %q, want %q", got, want)
		}

		want := Bindings{v1: TypeOf[string](), v2: TypeOf[int]()}
		if got := bound.TypingArguments(); !reflect.DeepEqual(got, want) {
			t.Fatalf("TypingArguments = %v, want %v", got, want)
		}
		got, err := bound.Attr("t1")
		if err != nil {
			t.Fatalf("Attr(t1) unexpected error: %v", err)
		}
		if got != TypeOf[string]() {
			t.Fatalf("Attr(t1) = %s, want string", got)
		}
	})

	t.Run("parameterization is memoized", func(t *testing.T) {
		first := mustParameterize(t, model, TypeOf[string](), TypeOf[int]())
		second := mustParameterize(t, model, TypeOf[string](), TypeOf[int]())
		if first != second {
			t.Fatalf("expected memoized result, got distinct objects")
		}
	})

	t.Run("subclassing follows the same contract", func(t *testing.T) {
		bound := mustParameterize(t, model, TypeOf[string](), TypeOf[int]())
		child := NewClass("UserModelChild", WithBases(bound))

		want := Bindings{v1: TypeOf[string](), v2: TypeOf[int]()}
		if got := child.TypingArguments(); !reflect.DeepEqual(got, want) {
			t.Fatalf("TypingArguments = %v, want %v", got, want)
		}
		got, err := child.Attr("t2")
		if err != nil {
			t.Fatalf("Attr(t2) unexpected error: %v", err)
		}
		if got != TypeOf[int]() {
			t.Fatalf("Attr(t2) = %s, want int", got)
		}
	})

	t.Run("instances allocate the backing struct", func(t *testing.T) {
		bound := mustParameterize(t, model, TypeOf[string](), TypeOf[int]())
		inst := bound.New()

		rec, ok := inst.Interface().(*userRecord)
		if !ok {
			t.Fatalf("Interface() is %T, want *userRecord", inst.Interface())
		}
		rec.Name = "alice"
		if inst.Value().Elem().FieldByName("Name").String() != "alice" {
			t.Fatalf("instance value not backed by the allocated struct")
		}

		got, err := inst.Attr("t1")
		if err != nil {
			t.Fatalf("instance Attr(t1) unexpected error: %v", err)
		}
		if got != TypeOf[string]() {
			t.Fatalf("instance Attr(t1) = %s, want string", got)
		}
	})

	t.Run("plain class instances carry no value", func(t *testing.T) {
		v := NewVar("T")
		cls := NewClass("Plain", WithBases(Mixin), Generic(v))
		if got := cls.New().Interface(); got != nil {
			t.Fatalf("Interface() = %v, want nil", got)
		}
	})

	t.Run("non-struct backing type panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic for non-struct backing type")
			}
		}()
		NewRecordClass[int]("Bad")
	})
}
