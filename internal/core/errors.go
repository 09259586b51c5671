package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

const (
	msgDuplicateType       = "duplicate type"
	msgUnresolvedReference = "unresolved reference"
	msgFrozenTypeMutation  = "frozen type mutation"
	msgFieldOrder          = "field order violation"
	msgOptionalOverflow    = "too many optional fields"
)

func duplicateTypeError(fqn string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeAlreadyExists).
		WithMsg(fmt.Sprintf("%s: %s is declared more than once", msgDuplicateType, fqn))
}

func unresolvedReferenceError(ref string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("%s: %s is neither a primitive nor a declared type", msgUnresolvedReference, ref))
}

func frozenTypeMutationError(fqn string, detail string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("%s: %s %s", msgFrozenTypeMutation, fqn, detail))
}

func fieldOrderError(fqn string, detail string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("%s: %s %s", msgFieldOrder, fqn, detail))
}

func invalidDeclarationError(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
}

// IsDuplicateType reports whether err was raised for two types sharing a
// name within one namespace.
func IsDuplicateType(err error) bool {
	return hasKind(err, errbuilder.CodeAlreadyExists, msgDuplicateType)
}

// IsUnresolvedReference reports whether err was raised for an unknown
// primitive or fqn.
func IsUnresolvedReference(err error) bool {
	return hasKind(err, errbuilder.CodeNotFound, msgUnresolvedReference)
}

// IsFrozenTypeMutation reports whether err was raised because a compact
// type would have changed shape.
func IsFrozenTypeMutation(err error) bool {
	return hasKind(err, errbuilder.CodeFailedPrecondition, msgFrozenTypeMutation)
}

// IsFieldOrderViolation reports whether err was raised because fields
// were removed or renamed without announcement.
func IsFieldOrderViolation(err error) bool {
	return hasKind(err, errbuilder.CodeFailedPrecondition, msgFieldOrder)
}

func hasKind(err error, code errbuilder.ErrCode, prefix string) bool {
	if err == nil || errbuilder.CodeOf(err) != code {
		return false
	}
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) {
		return strings.HasPrefix(builder.Msg, prefix)
	}
	return strings.HasPrefix(err.Error(), prefix)
}
