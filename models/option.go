package models

import "github.com/wosher-co/discordinteractions/registry"

// Option is a parameter of a command. Sub-command and sub-command group
// options carry nested options of their own.
type Option struct {
	Type registry.OptionType

	Name                     string
	NameLocalizations        Localizations
	Description              string
	DescriptionLocalizations Localizations

	// Not allowed on sub-commands and groups.
	Required *bool

	// String, Integer and Number only, at most 25.
	Choices []Choice

	// SubCommand and SubCommandGroup only.
	Options []Option

	// Channel only.
	ChannelTypes []registry.ChannelType

	// Integer and Number only.
	MinValue *float64
	MaxValue *float64

	// String only, 0-6000 and 1-6000.
	MinLength *uint32
	MaxLength *uint32

	// String, Integer and Number only. Excludes Choices.
	Autocomplete *bool
}

// IsRequired reports the effective value of Required.
func (o *Option) IsRequired() bool {
	return o.Required != nil && *o.Required
}

// AutocompleteEnabled reports the effective value of Autocomplete.
func (o *Option) AutocompleteEnabled() bool {
	return o.Autocomplete != nil && *o.Autocomplete
}
