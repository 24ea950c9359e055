package gen

import (
	"fmt"

	"github.com/syssam/vergen/schema/field"
)

// Validation is the check an attribute setter runs before storing a value.
type Validation uint8

// Setter validations.
const (
	NoValidation Validation = iota
	// SyntaxValidation checks an identifier reference against its syntax.
	SyntaxValidation
	// MembershipValidation checks an enum value against its table.
	MembershipValidation
)

// KindContract is the accessor contract of one attribute kind: the Go type
// the value is stored as, the sentinel meaning "unset", the validation run
// on set and the runtime helpers used to read and write the attribute.
type KindContract struct {
	Kind field.Kind
	// GoType is the Go type of the stored value. Enum attributes are stored
	// as their generated enum type and leave it empty.
	GoType string
	// Sentinel is the Go expression of the unset value. Enum attributes use
	// the Invalid constant of their enum.
	Sentinel string
	// IsSetFlag reports whether the set state is tracked by a separate
	// boolean field instead of comparing against the sentinel.
	IsSetFlag  bool
	Validation Validation
	// ValidateFunc is the docmodel function implementing SyntaxValidation.
	ValidateFunc string
	// StoreSentinelOnInvalid reports whether a rejected value resets the
	// stored value to the sentinel.
	StoreSentinelOnInvalid bool
	// ReadMethod and WriteMethod are the docmodel.Attributes and
	// docmodel.AttributeWriter methods for the kind.
	ReadMethod  string
	WriteMethod string
	// ErrorSuffix names the expected kind in "<Class><Attr>MustBe<Suffix>"
	// diagnostics. Empty when values of the kind never fail to parse.
	ErrorSuffix string
}

// registry is populated once at init and only read afterwards.
var registry = map[field.Kind]KindContract{
	field.TypeBool: {
		Kind:        field.TypeBool,
		GoType:      "bool",
		Sentinel:    "false",
		IsSetFlag:   true,
		ReadMethod:  "ReadBool",
		WriteMethod: "WriteBool",
		ErrorSuffix: "Bool",
	},
	field.TypeInt: {
		Kind:        field.TypeInt,
		GoType:      "int",
		Sentinel:    "math.MaxInt",
		IsSetFlag:   true,
		ReadMethod:  "ReadInt",
		WriteMethod: "WriteInt",
		ErrorSuffix: "Int",
	},
	field.TypeDouble: {
		Kind:        field.TypeDouble,
		GoType:      "float64",
		Sentinel:    "math.NaN()",
		IsSetFlag:   true,
		ReadMethod:  "ReadDouble",
		WriteMethod: "WriteDouble",
		ErrorSuffix: "Double",
	},
	field.TypeString: {
		Kind:        field.TypeString,
		GoType:      "string",
		Sentinel:    `""`,
		ReadMethod:  "ReadString",
		WriteMethod: "WriteString",
	},
	field.TypeEnum: {
		Kind:                   field.TypeEnum,
		Validation:             MembershipValidation,
		StoreSentinelOnInvalid: true,
		ReadMethod:             "ReadString",
		WriteMethod:            "WriteString",
	},
	field.TypeIDRef: {
		Kind:         field.TypeIDRef,
		GoType:       "string",
		Sentinel:     `""`,
		Validation:   SyntaxValidation,
		ValidateFunc: "IsValidSId",
		ReadMethod:   "ReadString",
		WriteMethod:  "WriteString",
		ErrorSuffix:  "IDRef",
	},
	field.TypeUnitIDRef: {
		Kind:         field.TypeUnitIDRef,
		GoType:       "string",
		Sentinel:     `""`,
		Validation:   SyntaxValidation,
		ValidateFunc: "IsValidUnitSId",
		ReadMethod:   "ReadString",
		WriteMethod:  "WriteString",
		ErrorSuffix:  "UnitIDRef",
	},
}

// Contract returns the accessor contract of the given kind.
func Contract(k field.Kind) (KindContract, error) {
	c, ok := registry[k]
	if !ok {
		return KindContract{}, fmt.Errorf("%w: no contract for attribute kind %q", ErrInvalidSchema, k)
	}
	return c, nil
}

// MustContract is like Contract but panics if the kind is unknown.
func MustContract(k field.Kind) KindContract {
	c, err := Contract(k)
	if err != nil {
		panic(err)
	}
	return c
}
