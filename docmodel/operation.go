package docmodel

import "strconv"

// OperationReturn is the result code of mutating operations on generated
// objects.
type OperationReturn int

// Operation results.
const (
	// OperationSuccess indicates the operation succeeded.
	OperationSuccess OperationReturn = 0
	// IndexExceedsSize indicates an index outside of a list.
	IndexExceedsSize OperationReturn = -1
	// UnexpectedAttribute indicates an attribute that is valid for the
	// class but not for the instance's version.
	UnexpectedAttribute OperationReturn = -2
	// OperationFailed is a generic failure that is not value-specific.
	OperationFailed OperationReturn = -3
	// InvalidAttributeValue indicates a value that fails kind validation.
	InvalidAttributeValue OperationReturn = -4
	// InvalidObject indicates an object missing required attributes or
	// elements.
	InvalidObject OperationReturn = -5
	// DuplicateObjectID indicates an identifier collision on add.
	DuplicateObjectID OperationReturn = -6
	// LevelMismatch indicates a child with a different core level.
	LevelMismatch OperationReturn = -7
	// VersionMismatch indicates a child with a different core version.
	VersionMismatch OperationReturn = -8
	// NamespacesMismatch indicates a child whose namespaces do not include
	// the namespace required by the parent.
	NamespacesMismatch OperationReturn = -10
)

var operationNames = map[OperationReturn]string{
	OperationSuccess:      "OperationSuccess",
	IndexExceedsSize:      "IndexExceedsSize",
	UnexpectedAttribute:   "UnexpectedAttribute",
	OperationFailed:       "OperationFailed",
	InvalidAttributeValue: "InvalidAttributeValue",
	InvalidObject:         "InvalidObject",
	DuplicateObjectID:     "DuplicateObjectID",
	LevelMismatch:         "LevelMismatch",
	VersionMismatch:       "VersionMismatch",
	NamespacesMismatch:    "NamespacesMismatch",
}

// String implements fmt.Stringer.
func (r OperationReturn) String() string {
	if s, ok := operationNames[r]; ok {
		return s
	}
	return "OperationReturn(" + strconv.Itoa(int(r)) + ")"
}

// Ok reports whether r is OperationSuccess.
func (r OperationReturn) Ok() bool { return r == OperationSuccess }
