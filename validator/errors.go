package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind names the rule a ValidationError reports.
type Kind int

const (
	KindLengthOutOfRange Kind = iota + 1
	KindTooManyChoices
	KindIllegalNesting
	KindFieldNotApplicableForType
	KindMutuallyExclusiveFields
	KindChoiceValueTypeMismatch
	KindNumericRangeInverted
	KindInvalidName
	KindUnknownLocale
	KindUnknownType
	KindMalformedPermissions
	KindTooManyOptions
	KindDuplicateName
	KindRequiredAfterOptional
	KindTooManyCommands
	KindInvalidEncoding
)

var kindNames = map[Kind]string{
	KindLengthOutOfRange:          "length out of range",
	KindTooManyChoices:            "too many choices",
	KindIllegalNesting:            "illegal nesting",
	KindFieldNotApplicableForType: "field not applicable for type",
	KindMutuallyExclusiveFields:   "mutually exclusive fields",
	KindChoiceValueTypeMismatch:   "choice value type mismatch",
	KindNumericRangeInverted:      "numeric range inverted",
	KindInvalidName:               "invalid name",
	KindUnknownLocale:             "unknown locale",
	KindUnknownType:               "unknown type",
	KindMalformedPermissions:      "malformed permissions",
	KindTooManyOptions:            "too many options",
	KindDuplicateName:             "duplicate name",
	KindRequiredAfterOptional:     "required option after optional option",
	KindTooManyCommands:           "too many commands",
	KindInvalidEncoding:           "invalid utf-8 encoding",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Sentinels for errors.Is, one per Kind.
var (
	ErrLengthOutOfRange          = errors.New(KindLengthOutOfRange.String())
	ErrTooManyChoices            = errors.New(KindTooManyChoices.String())
	ErrIllegalNesting            = errors.New(KindIllegalNesting.String())
	ErrFieldNotApplicableForType = errors.New(KindFieldNotApplicableForType.String())
	ErrMutuallyExclusiveFields   = errors.New(KindMutuallyExclusiveFields.String())
	ErrChoiceValueTypeMismatch   = errors.New(KindChoiceValueTypeMismatch.String())
	ErrNumericRangeInverted      = errors.New(KindNumericRangeInverted.String())
	ErrInvalidName               = errors.New(KindInvalidName.String())
	ErrUnknownLocale             = errors.New(KindUnknownLocale.String())
	ErrUnknownType               = errors.New(KindUnknownType.String())
	ErrMalformedPermissions      = errors.New(KindMalformedPermissions.String())
	ErrTooManyOptions            = errors.New(KindTooManyOptions.String())
	ErrDuplicateName             = errors.New(KindDuplicateName.String())
	ErrRequiredAfterOptional     = errors.New(KindRequiredAfterOptional.String())
	ErrTooManyCommands           = errors.New(KindTooManyCommands.String())
	ErrInvalidEncoding           = errors.New(KindInvalidEncoding.String())
)

var sentinels = map[Kind]error{
	KindLengthOutOfRange:          ErrLengthOutOfRange,
	KindTooManyChoices:            ErrTooManyChoices,
	KindIllegalNesting:            ErrIllegalNesting,
	KindFieldNotApplicableForType: ErrFieldNotApplicableForType,
	KindMutuallyExclusiveFields:   ErrMutuallyExclusiveFields,
	KindChoiceValueTypeMismatch:   ErrChoiceValueTypeMismatch,
	KindNumericRangeInverted:      ErrNumericRangeInverted,
	KindInvalidName:               ErrInvalidName,
	KindUnknownLocale:             ErrUnknownLocale,
	KindUnknownType:               ErrUnknownType,
	KindMalformedPermissions:      ErrMalformedPermissions,
	KindTooManyOptions:            ErrTooManyOptions,
	KindDuplicateName:             ErrDuplicateName,
	KindRequiredAfterOptional:     ErrRequiredAfterOptional,
	KindTooManyCommands:           ErrTooManyCommands,
	KindInvalidEncoding:           ErrInvalidEncoding,
}

// ValidationError reports the first rule a command definition breaks.
//
// Only the detail fields that make sense for Kind are set:
//   - LengthOutOfRange, TooManyChoices, TooManyOptions, TooManyCommands: Actual, Allowed
//   - IllegalNesting: Depth
//   - FieldNotApplicableForType: Field, Type
//   - MutuallyExclusiveFields: Field, OtherField
//   - ChoiceValueTypeMismatch: Expected, Actual
//   - NumericRangeInverted: Min, Max
//   - InvalidName, UnknownLocale, UnknownType, MalformedPermissions, DuplicateName: Actual
//   - InvalidEncoding: Path only
type ValidationError struct {
	// Path of the offending field, e.g. "options[2].choices".
	Path string
	Kind Kind

	Field      string
	OtherField string
	Type       string
	Expected   string
	Actual     string
	Allowed    string
	Depth      int
	Min        float64
	Max        float64
}

func (e *ValidationError) Error() string {
	var details []string
	add := func(k, v string) {
		if v != "" {
			details = append(details, k+"="+v)
		}
	}
	switch e.Kind {
	case KindIllegalNesting:
		add("depth", strconv.Itoa(e.Depth))
	case KindFieldNotApplicableForType:
		add("field", e.Field)
		add("type", e.Type)
	case KindMutuallyExclusiveFields:
		add("fields", e.Field+","+e.OtherField)
	case KindChoiceValueTypeMismatch:
		add("expected", e.Expected)
		add("actual", e.Actual)
	case KindNumericRangeInverted:
		add("min", strconv.FormatFloat(e.Min, 'g', -1, 64))
		add("max", strconv.FormatFloat(e.Max, 'g', -1, 64))
	default:
		add("actual", e.Actual)
		add("allowed", e.Allowed)
	}
	msg := e.Kind.String()
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if len(details) > 0 {
		msg += " (" + strings.Join(details, ", ") + ")"
	}
	return msg
}

// Is matches the sentinel for e.Kind.
func (e *ValidationError) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// KindOf returns the Kind carried by err, or 0 when err is not a ValidationError.
func KindOf(err error) Kind {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Kind
	}
	return 0
}

func lengthError(path string, actual, lo, hi int) *ValidationError {
	return &ValidationError{
		Path:    path,
		Kind:    KindLengthOutOfRange,
		Actual:  strconv.Itoa(actual),
		Allowed: fmt.Sprintf("%d-%d", lo, hi),
	}
}

func notApplicable(path, field, typ string) *ValidationError {
	return &ValidationError{
		Path:  join(path, field),
		Kind:  KindFieldNotApplicableForType,
		Field: field,
		Type:  typ,
	}
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func index(path, field string, i int) string {
	return join(path, field) + "[" + strconv.Itoa(i) + "]"
}
