package constants

const Namespace = "typingargs"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// TypedClassNamePrefix is prepended to a parameterized class's name when
// naming the synthesized bound class.
const TypedClassNamePrefix = "Typed"
