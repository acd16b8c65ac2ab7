package typingargs

import "reflect"

// Instance is a value of a class. It resolves accessor attributes exactly
// like the class itself does; for record-backed classes it additionally
// carries a freshly allocated value of the backing struct.
type Instance struct {
	class *Class
	value reflect.Value
}

// New creates an instance of the class. Instances of record-backed classes
// allocate a new value of the backing struct type.
func (c *Class) New() *Instance {
	i := &Instance{class: c}
	if c.recordType != nil {
		i.value = reflect.New(c.recordType)
	}
	return i
}

func (i *Instance) Name() string { return i.class.name }

// TypingArguments returns the typing arguments of the instance's class.
func (i *Instance) TypingArguments() Bindings { return i.class.TypingArguments() }

// Attr resolves an accessor attribute through the instance's class.
func (i *Instance) Attr(name string) (reflect.Type, error) { return i.class.Attr(name) }

// Interface returns a pointer to the backing struct value for instances of
// record-backed classes, or nil for plain classes.
func (i *Instance) Interface() any {
	if !i.value.IsValid() {
		return nil
	}
	return i.value.Interface()
}

// Value returns the backing struct value; it is the zero Value for plain
// classes.
func (i *Instance) Value() reflect.Value { return i.value }
