package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/team23/typing-arguments/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors for parameterization and accessor misuses. Use errors.Is to match.
var (
	ErrMixinParameterized = namespace.NewError("type parameters must be placed on the generic class, not on the capture mixin")
	ErrNotGeneric         = namespace.NewError("cannot provide type arguments to a class without declared type parameters")
	ErrParameterCount     = namespace.NewError("wrong number of type arguments")
	ErrNoTypingArguments  = namespace.NewError("class does not capture typing arguments; capture mixin missing or no arguments were provided")
	ErrTypeVarNotBound    = namespace.NewError("type variable is not bound")
	ErrAttributeNotFound  = namespace.NewError("no typing argument attribute declared under this name")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentClass = "class"
	keySegmentVar   = "var"
	keySegmentAttr  = "attr"
)

// Exported structured error field keys
var (
	ErrorFieldClassName  = newKey("name", keySegmentClass)        // typingargs.class.name
	ErrorFieldWantParams = newKey("want_params", keySegmentClass) // typingargs.class.want_params
	ErrorFieldGotParams  = newKey("got_params", keySegmentClass)  // typingargs.class.got_params
)

var (
	ErrorFieldVarName = newKey("name", keySegmentVar) // typingargs.var.name
)

var (
	ErrorFieldAttrName = newKey("name", keySegmentAttr) // typingargs.attr.name
)
