package apidoc

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	// ErrConfiguration is matched by every error caused by operator input:
	// bad dotted names, unknown classes, invalid options.
	ErrConfiguration = errors.New("configuration error")

	// Class resolution errors, one per failed step.
	ErrInvalidDottedName = errors.New("invalid dotted name")
	ErrModuleNotFound    = errors.New("module not found")
	ErrAttributeNotFound = errors.New("attribute not found")
	ErrNotAClass         = errors.New("not a class")
	ErrWrongBaseType     = errors.New("wrong base type")

	// Registry errors.
	ErrDuplicateSymbol = errors.New("symbol already registered")

	// Option validation errors.
	ErrInvalidPrivacyRule = errors.New("invalid privacy rule")
	ErrInvalidMemberOrder = errors.New("invalid member order")
	ErrInvalidDocFormat   = errors.New("invalid docformat")

	// Model errors.
	ErrInvalidModel = errors.New("invalid object model")
	ErrUnknownKind  = errors.New("unknown object kind")

	// Rendering errors.
	ErrTemplateParse  = errors.New("template parsing failed")
	ErrTemplateRender = errors.New("template rendering failed")
	ErrDocstring      = errors.New("docstring rendering failed")
	ErrOutputDir      = errors.New("cannot prepare output directory")
)

// ResolutionReason identifies the class-loading step that failed.
type ResolutionReason int

const (
	ReasonInvalidName ResolutionReason = iota + 1
	ReasonModuleNotFound
	ReasonAttributeNotFound
	ReasonNotAClass
	ReasonWrongBaseType
)

func (r ResolutionReason) String() string {
	switch r {
	case ReasonInvalidName:
		return "invalid-name"
	case ReasonModuleNotFound:
		return "module-not-found"
	case ReasonAttributeNotFound:
		return "attribute-not-found"
	case ReasonNotAClass:
		return "not-a-class"
	case ReasonWrongBaseType:
		return "wrong-base-type"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// sentinel returns the error matched by errors.Is for the reason.
func (r ResolutionReason) sentinel() error {
	switch r {
	case ReasonInvalidName:
		return ErrInvalidDottedName
	case ReasonModuleNotFound:
		return ErrModuleNotFound
	case ReasonAttributeNotFound:
		return ErrAttributeNotFound
	case ReasonNotAClass:
		return ErrNotAClass
	case ReasonWrongBaseType:
		return ErrWrongBaseType
	default:
		return nil
	}
}

// ClassResolutionError reports which step of loading a dotted class name failed.
type ClassResolutionError struct {
	Name   string // dotted name as given by the operator
	Base   string // expected capability, "system" or "writer"
	Reason ResolutionReason
	Detail string // optional extra context, e.g. the concrete type
	Hint   string // formatted hint, appended to Error()
}

func (e *ClassResolutionError) Error() string {
	msg := fmt.Sprintf("cannot load %s class %q: %s", e.Base, e.Name, e.Reason)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg + e.Hint
}

// Is matches ErrConfiguration and the sentinel of the failed step.
func (e *ClassResolutionError) Is(target error) bool {
	if target == ErrConfiguration {
		return true
	}
	s := e.Reason.sentinel()
	return s != nil && target == s
}
