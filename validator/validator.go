// Package validator checks application command definitions against the
// rules Discord enforces on registration, so a bad definition fails locally
// with a typed error instead of as a 400 from the API.
//
// Validation stops at the first broken rule. Inputs are never modified.
package validator

import (
	"errors"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/wosher-co/discordinteractions/models"
	"github.com/wosher-co/discordinteractions/registry"
)

const (
	MaxNameLength          = 32
	MaxDescriptionLength   = 100
	MaxChoices             = 25
	MaxOptions             = 25
	MaxChoiceNameLength    = 100
	MaxChoiceValueLength   = 100
	MaxStringLength        = 6000
	MaxChatInputCommands   = 100
	MaxContextMenuCommands = 5
)

var slugPattern = regexp.MustCompile(`^[-_\p{L}\p{N}\p{Devanagari}\p{Thai}]{1,32}$`)

// Validate checks c and its whole option tree.
func Validate(c *models.Command) error {
	if c == nil {
		return lengthError("name", 0, 1, MaxNameLength)
	}

	if c.Type != nil && !c.Type.Valid() {
		return &ValidationError{Path: "type", Kind: KindUnknownType, Actual: strconv.Itoa(int(c.Type.Code()))}
	}
	t := c.EffectiveType()
	slug := t == registry.ChatInput

	if err := checkName("name", c.Name, slug); err != nil {
		return err
	}
	if err := checkLocalizations("name_localizations", c.NameLocalizations, 1, MaxNameLength, slug); err != nil {
		return err
	}

	if t.IsContextMenu() {
		if c.DescriptionText() != "" {
			return notApplicable("", "description", t.String())
		}
		if len(c.DescriptionLocalizations) > 0 {
			return notApplicable("", "description_localizations", t.String())
		}
		if len(c.Options) > 0 {
			return notApplicable("", "options", t.String())
		}
	} else {
		if err := checkLength("description", c.DescriptionText(), 1, MaxDescriptionLength); err != nil {
			return err
		}
		if err := checkLocalizations("description_localizations", c.DescriptionLocalizations, 1, MaxDescriptionLength, false); err != nil {
			return err
		}
		if err := validateOptions("", c.Options, 1, nil); err != nil {
			return err
		}
	}

	if p := c.DefaultMemberPermissions; p != nil {
		if _, err := strconv.ParseUint(*p, 10, 64); err != nil {
			return &ValidationError{Path: "default_member_permissions", Kind: KindMalformedPermissions, Actual: *p}
		}
	}
	return nil
}

// ValidateOption checks o as if it were a top-level option of a chat input command.
func ValidateOption(o *models.Option) error {
	if o == nil {
		return lengthError("name", 0, 1, MaxNameLength)
	}
	return validateOption("", o, 1, nil)
}

// ValidateAll checks every command plus the limits that apply to a whole
// registration: unique names per command type and per-type counts.
func ValidateAll(cmds []models.Command) error {
	type key struct {
		t    registry.InteractionType
		name string
	}
	seen := make(map[key]struct{}, len(cmds))
	counts := make(map[registry.InteractionType]int)

	for i := range cmds {
		c := &cmds[i]
		prefix := "commands[" + strconv.Itoa(i) + "]"
		if err := Validate(c); err != nil {
			return withPrefix(prefix, err)
		}

		t := c.EffectiveType()
		k := key{t, c.Name}
		if _, dup := seen[k]; dup {
			return &ValidationError{Path: prefix + ".name", Kind: KindDuplicateName, Actual: c.Name}
		}
		seen[k] = struct{}{}

		counts[t]++
		limit := MaxContextMenuCommands
		if t == registry.ChatInput {
			limit = MaxChatInputCommands
		}
		if counts[t] > limit {
			return &ValidationError{
				Path:    prefix,
				Kind:    KindTooManyCommands,
				Actual:  strconv.Itoa(counts[t]),
				Allowed: "0-" + strconv.Itoa(limit),
			}
		}
	}
	return nil
}

func withPrefix(prefix string, err error) error {
	var v *ValidationError
	if !errors.As(err, &v) {
		return err
	}
	out := *v
	out.Path = join(prefix, v.Path)
	return &out
}

func validateOptions(path string, opts []models.Option, depth int, parent *registry.OptionType) error {
	if len(opts) > MaxOptions {
		return &ValidationError{
			Path:    join(path, "options"),
			Kind:    KindTooManyOptions,
			Actual:  strconv.Itoa(len(opts)),
			Allowed: "0-" + strconv.Itoa(MaxOptions),
		}
	}

	seen := make(map[string]struct{}, len(opts))
	subs, plain := 0, 0
	sawOptional := false
	for i := range opts {
		o := &opts[i]
		p := index(path, "options", i)
		if err := validateOption(p, o, depth, parent); err != nil {
			return err
		}

		if o.Type.IsSubCommand() {
			subs++
		} else {
			plain++
			if o.IsRequired() && sawOptional {
				return &ValidationError{Path: p, Kind: KindRequiredAfterOptional, Actual: o.Name}
			}
			if !o.IsRequired() {
				sawOptional = true
			}
		}
		if subs > 0 && plain > 0 {
			return &ValidationError{Path: p, Kind: KindIllegalNesting, Depth: depth}
		}

		if _, dup := seen[o.Name]; dup {
			return &ValidationError{Path: join(p, "name"), Kind: KindDuplicateName, Actual: o.Name}
		}
		seen[o.Name] = struct{}{}
	}
	return nil
}

func validateOption(p string, o *models.Option, depth int, parent *registry.OptionType) error {
	if !o.Type.Valid() {
		return &ValidationError{Path: join(p, "type"), Kind: KindUnknownType, Actual: strconv.Itoa(int(o.Type.Code()))}
	}
	if err := checkNesting(p, o.Type, depth, parent); err != nil {
		return err
	}

	if err := checkName(join(p, "name"), o.Name, true); err != nil {
		return err
	}
	if err := checkLocalizations(join(p, "name_localizations"), o.NameLocalizations, 1, MaxNameLength, true); err != nil {
		return err
	}
	if err := checkLength(join(p, "description"), o.Description, 1, MaxDescriptionLength); err != nil {
		return err
	}
	if err := checkLocalizations(join(p, "description_localizations"), o.DescriptionLocalizations, 1, MaxDescriptionLength, false); err != nil {
		return err
	}

	typ := o.Type.String()
	if o.Required != nil && o.Type.IsSubCommand() {
		return notApplicable(p, "required", typ)
	}

	if o.Choices != nil {
		if !o.Type.TakesChoices() {
			return notApplicable(p, "choices", typ)
		}
		if len(o.Choices) > MaxChoices {
			return &ValidationError{
				Path:    join(p, "choices"),
				Kind:    KindTooManyChoices,
				Actual:  strconv.Itoa(len(o.Choices)),
				Allowed: "0-" + strconv.Itoa(MaxChoices),
			}
		}
		if len(o.Choices) > 0 && o.AutocompleteEnabled() {
			return &ValidationError{Path: p, Kind: KindMutuallyExclusiveFields, Field: "choices", OtherField: "autocomplete"}
		}
		for j := range o.Choices {
			if err := validateChoice(index(p, "choices", j), &o.Choices[j], o.Type); err != nil {
				return err
			}
		}
	}

	if o.Options != nil {
		if !o.Type.TakesOptions() {
			return notApplicable(p, "options", typ)
		}
		parentType := o.Type
		if err := validateOptions(p, o.Options, depth+1, &parentType); err != nil {
			return err
		}
	}

	if o.ChannelTypes != nil {
		if !o.Type.TakesChannelTypes() {
			return notApplicable(p, "channel_types", typ)
		}
		for k, ct := range o.ChannelTypes {
			if !ct.Valid() {
				return &ValidationError{Path: index(p, "channel_types", k), Kind: KindUnknownType, Actual: strconv.Itoa(int(ct.Code()))}
			}
		}
	}

	if o.MinValue != nil && !o.Type.TakesValueBounds() {
		return notApplicable(p, "min_value", typ)
	}
	if o.MaxValue != nil && !o.Type.TakesValueBounds() {
		return notApplicable(p, "max_value", typ)
	}
	if o.MinValue != nil && o.MaxValue != nil && *o.MinValue > *o.MaxValue {
		return &ValidationError{Path: p, Kind: KindNumericRangeInverted, Min: *o.MinValue, Max: *o.MaxValue}
	}

	if o.MinLength != nil {
		if !o.Type.TakesLengthBounds() {
			return notApplicable(p, "min_length", typ)
		}
		if *o.MinLength > MaxStringLength {
			return lengthError(join(p, "min_length"), int(*o.MinLength), 0, MaxStringLength)
		}
	}
	if o.MaxLength != nil {
		if !o.Type.TakesLengthBounds() {
			return notApplicable(p, "max_length", typ)
		}
		if *o.MaxLength < 1 || *o.MaxLength > MaxStringLength {
			return lengthError(join(p, "max_length"), int(*o.MaxLength), 1, MaxStringLength)
		}
	}
	if o.MinLength != nil && o.MaxLength != nil && *o.MinLength > *o.MaxLength {
		return &ValidationError{Path: p, Kind: KindNumericRangeInverted, Min: float64(*o.MinLength), Max: float64(*o.MaxLength)}
	}

	if o.Autocomplete != nil && !o.Type.TakesAutocomplete() {
		return notApplicable(p, "autocomplete", typ)
	}
	return nil
}

// checkNesting enforces the two-level sub-command structure: groups only at
// the top, sub-commands at the top or directly inside a group.
func checkNesting(p string, t registry.OptionType, depth int, parent *registry.OptionType) error {
	inGroup := parent != nil && *parent == registry.OptionSubCommandGroup
	legal := true
	switch {
	case t == registry.OptionSubCommandGroup:
		legal = depth == 1
	case t == registry.OptionSubCommand:
		legal = depth == 1 || (depth == 2 && inGroup)
	case inGroup:
		legal = false
	}
	if !legal {
		return &ValidationError{Path: p, Kind: KindIllegalNesting, Depth: depth}
	}
	return nil
}

func validateChoice(p string, ch *models.Choice, optType registry.OptionType) error {
	if err := checkLength(join(p, "name"), ch.Name, 1, MaxChoiceNameLength); err != nil {
		return err
	}
	if err := checkLocalizations(join(p, "name_localizations"), ch.NameLocalizations, 1, MaxChoiceNameLength, false); err != nil {
		return err
	}

	want := expectedChoiceKind(optType)
	if got := ch.Value.Kind(); got != want {
		return &ValidationError{
			Path:     join(p, "value"),
			Kind:     KindChoiceValueTypeMismatch,
			Expected: want.String(),
			Actual:   got.String(),
		}
	}
	if s, ok := ch.Value.Str(); ok {
		if !utf8.ValidString(s) {
			return &ValidationError{Path: join(p, "value"), Kind: KindInvalidEncoding}
		}
		if n := utf8.RuneCountInString(s); n > MaxChoiceValueLength {
			return lengthError(join(p, "value"), n, 0, MaxChoiceValueLength)
		}
	}
	return nil
}

func expectedChoiceKind(t registry.OptionType) models.ChoiceKind {
	switch t {
	case registry.OptionString:
		return models.ChoiceString
	case registry.OptionInteger:
		return models.ChoiceInteger
	case registry.OptionNumber:
		return models.ChoiceFloat
	default:
		return models.ChoiceUnset
	}
}

// checkLength also rejects text that is not valid UTF-8, since the encoder
// would copy such bytes into the output unchanged.
func checkLength(path, s string, lo, hi int) error {
	if !utf8.ValidString(s) {
		return &ValidationError{Path: path, Kind: KindInvalidEncoding}
	}
	if n := utf8.RuneCountInString(s); n < lo || n > hi {
		return lengthError(path, n, lo, hi)
	}
	return nil
}

func checkName(path, name string, slug bool) error {
	if err := checkLength(path, name, 1, MaxNameLength); err != nil {
		return err
	}
	if slug && !IsSlug(name) {
		return &ValidationError{Path: path, Kind: KindInvalidName, Actual: name}
	}
	return nil
}

func checkLocalizations(field string, locs models.Localizations, lo, hi int, slug bool) error {
	if len(locs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(locs))
	for k := range locs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		p := field + "[" + k + "]"
		if !IsLocale(k) {
			return &ValidationError{Path: p, Kind: KindUnknownLocale, Actual: k}
		}
		if err := checkLength(p, locs[k], lo, hi); err != nil {
			return err
		}
		if slug && !IsSlug(locs[k]) {
			return &ValidationError{Path: p, Kind: KindInvalidName, Actual: locs[k]}
		}
	}
	return nil
}

// IsSlug reports whether name is a legal chat input command or option name.
func IsSlug(name string) bool {
	return slugPattern.MatchString(name) && strings.ToLower(name) == name
}

// IsLocale reports whether code is a locale Discord accepts as a localization key.
func IsLocale(code string) bool {
	if code == "" {
		return false
	}
	_, ok := discordgo.Locales[discordgo.Locale(code)]
	return ok
}
