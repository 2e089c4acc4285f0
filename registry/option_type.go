package registry

// OptionType is the type of an application command option.
type OptionType uint8

const (
	OptionSubCommand      OptionType = 1
	OptionSubCommandGroup OptionType = 2
	OptionString          OptionType = 3
	OptionInteger         OptionType = 4
	OptionBoolean         OptionType = 5
	OptionUser            OptionType = 6
	OptionChannel         OptionType = 7
	OptionRole            OptionType = 8
	OptionMentionable     OptionType = 9
	OptionNumber          OptionType = 10
)

var optionTypes = table[OptionType]{
	{OptionSubCommand, "sub_command"},
	{OptionSubCommandGroup, "sub_command_group"},
	{OptionString, "string"},
	{OptionInteger, "integer"},
	{OptionBoolean, "boolean"},
	{OptionUser, "user"},
	{OptionChannel, "channel"},
	{OptionRole, "role"},
	{OptionMentionable, "mentionable"},
	{OptionNumber, "number"},
}

// Code returns the wire code of t.
func (t OptionType) Code() uint8 { return uint8(t) }

// Valid reports whether t is a declared variant.
func (t OptionType) Valid() bool {
	_, ok := optionTypes.name(t)
	return ok
}

func (t OptionType) String() string { return optionTypes.str("OptionType", t) }

// OptionTypeFromCode is the reverse of Code.
func OptionTypeFromCode(code uint8) (OptionType, bool) { return optionTypes.fromCode(code) }

// ParseOptionType looks up an option type by its snake_case name, e.g. "sub_command".
func ParseOptionType(name string) (OptionType, error) { return optionTypes.parse("option type", name) }

// AllOptionTypes returns every option type in code order.
func AllOptionTypes() []OptionType { return optionTypes.all() }

// IsSubCommand reports whether t is SubCommand or SubCommandGroup.
func (t OptionType) IsSubCommand() bool {
	return t == OptionSubCommand || t == OptionSubCommandGroup
}

// TakesOptions reports whether options of type t may carry nested options.
func (t OptionType) TakesOptions() bool { return t.IsSubCommand() }

// TakesChoices reports whether options of type t may carry a choice list.
func (t OptionType) TakesChoices() bool {
	return t == OptionString || t == OptionInteger || t == OptionNumber
}

// TakesAutocomplete has the same answer as TakesChoices; the two fields are
// still mutually exclusive on a single option.
func (t OptionType) TakesAutocomplete() bool { return t.TakesChoices() }

// TakesValueBounds reports whether min_value/max_value apply.
func (t OptionType) TakesValueBounds() bool {
	return t == OptionInteger || t == OptionNumber
}

// TakesLengthBounds reports whether min_length/max_length apply.
func (t OptionType) TakesLengthBounds() bool { return t == OptionString }

// TakesChannelTypes reports whether channel_types applies.
func (t OptionType) TakesChannelTypes() bool { return t == OptionChannel }
