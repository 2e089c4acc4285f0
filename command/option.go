package command

import (
	"maps"
	"slices"

	"github.com/wosher-co/discordinteractions/models"
	"github.com/wosher-co/discordinteractions/registry"
)

// OptionBuilder assembles a models.Option.
type OptionBuilder struct {
	opt      models.Option
	children []*OptionBuilder
}

func newOption(t registry.OptionType, name, description string) *OptionBuilder {
	return &OptionBuilder{opt: models.Option{Type: t, Name: name, Description: description}}
}

// StringOption starts a free text option.
func StringOption(name, description string) *OptionBuilder {
	return newOption(registry.OptionString, name, description)
}

// IntegerOption starts a whole number option.
func IntegerOption(name, description string) *OptionBuilder {
	return newOption(registry.OptionInteger, name, description)
}

// NumberOption starts a floating point option.
func NumberOption(name, description string) *OptionBuilder {
	return newOption(registry.OptionNumber, name, description)
}

// BooleanOption starts a true/false option.
func BooleanOption(name, description string) *OptionBuilder {
	return newOption(registry.OptionBoolean, name, description)
}

// UserOption starts an option that picks a user.
func UserOption(name, description string) *OptionBuilder {
	return newOption(registry.OptionUser, name, description)
}

// ChannelOption starts an option that picks a channel.
func ChannelOption(name, description string) *OptionBuilder {
	return newOption(registry.OptionChannel, name, description)
}

// RoleOption starts an option that picks a role.
func RoleOption(name, description string) *OptionBuilder {
	return newOption(registry.OptionRole, name, description)
}

// MentionableOption starts an option that picks a user or a role.
func MentionableOption(name, description string) *OptionBuilder {
	return newOption(registry.OptionMentionable, name, description)
}

// SubCommand groups opts under a sub-command.
func SubCommand(name, description string, opts ...*OptionBuilder) *OptionBuilder {
	b := newOption(registry.OptionSubCommand, name, description)
	b.children = opts
	return b
}

// SubCommandGroup groups sub-commands.
func SubCommandGroup(name, description string, subs ...*OptionBuilder) *OptionBuilder {
	b := newOption(registry.OptionSubCommandGroup, name, description)
	b.children = subs
	return b
}

// Required marks the option as required.
func (b *OptionBuilder) Required() *OptionBuilder {
	b.opt.Required = models.Bool(true)
	return b
}

// Autocomplete enables autocomplete interactions for the option.
func (b *OptionBuilder) Autocomplete() *OptionBuilder {
	b.opt.Autocomplete = models.Bool(true)
	return b
}

// Choice appends a predefined choice.
func (b *OptionBuilder) Choice(c models.Choice) *OptionBuilder {
	b.opt.Choices = append(b.opt.Choices, c)
	return b
}

// StringChoice appends a choice for a string option.
func (b *OptionBuilder) StringChoice(name, value string) *OptionBuilder {
	return b.Choice(models.Choice{Name: name, Value: models.StringValue(value)})
}

// IntChoice appends a choice for an integer option.
func (b *OptionBuilder) IntChoice(name string, value int32) *OptionBuilder {
	return b.Choice(models.Choice{Name: name, Value: models.IntValue(value)})
}

// FloatChoice appends a choice for a number option.
func (b *OptionBuilder) FloatChoice(name string, value float64) *OptionBuilder {
	return b.Choice(models.Choice{Name: name, Value: models.FloatValue(value)})
}

// MinValue sets the smallest value an integer or number option accepts.
func (b *OptionBuilder) MinValue(v float64) *OptionBuilder {
	b.opt.MinValue = models.Float(v)
	return b
}

// MaxValue sets the largest value an integer or number option accepts.
func (b *OptionBuilder) MaxValue(v float64) *OptionBuilder {
	b.opt.MaxValue = models.Float(v)
	return b
}

// MinLength sets the shortest text a string option accepts.
func (b *OptionBuilder) MinLength(n uint32) *OptionBuilder {
	b.opt.MinLength = models.Uint32(n)
	return b
}

// MaxLength sets the longest text a string option accepts.
func (b *OptionBuilder) MaxLength(n uint32) *OptionBuilder {
	b.opt.MaxLength = models.Uint32(n)
	return b
}

// ChannelTypes restricts a channel option to the given channel types.
func (b *OptionBuilder) ChannelTypes(types ...registry.ChannelType) *OptionBuilder {
	b.opt.ChannelTypes = append(b.opt.ChannelTypes, types...)
	return b
}

// LocalizeName adds a localized name for locale.
func (b *OptionBuilder) LocalizeName(locale, name string) *OptionBuilder {
	if b.opt.NameLocalizations == nil {
		b.opt.NameLocalizations = models.Localizations{}
	}
	b.opt.NameLocalizations[locale] = name
	return b
}

// LocalizeDescription adds a localized description for locale.
func (b *OptionBuilder) LocalizeDescription(locale, description string) *OptionBuilder {
	if b.opt.DescriptionLocalizations == nil {
		b.opt.DescriptionLocalizations = models.Localizations{}
	}
	b.opt.DescriptionLocalizations[locale] = description
	return b
}

// Build returns an independent copy of the option and its children.
func (b *OptionBuilder) Build() models.Option {
	o := b.opt
	o.NameLocalizations = maps.Clone(b.opt.NameLocalizations)
	o.DescriptionLocalizations = maps.Clone(b.opt.DescriptionLocalizations)
	o.Choices = slices.Clone(b.opt.Choices)
	o.ChannelTypes = slices.Clone(b.opt.ChannelTypes)
	o.Options = buildOptions(b.children)
	return o
}
