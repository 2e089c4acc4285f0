// Package command builds application command definitions and collects them
// into a set ready for registration.
package command

import (
	"maps"
	"strconv"

	"github.com/wosher-co/discordinteractions/models"
	"github.com/wosher-co/discordinteractions/registry"
	"github.com/wosher-co/discordinteractions/serializer"
	"github.com/wosher-co/discordinteractions/validator"
)

// Builder assembles a models.Command. It starts with default_permission set
// to true and nsfw set to false.
type Builder struct {
	cmd     models.Command
	options []*OptionBuilder
}

// NewChatInput starts a slash command. The type field is left absent, which
// the API reads as chat input.
func NewChatInput(name, description string) *Builder {
	return &Builder{cmd: models.Command{
		Name:              name,
		Description:       models.String(description),
		DefaultPermission: true,
	}}
}

// NewUserCommand starts a context menu command shown on users.
func NewUserCommand(name string) *Builder {
	return &Builder{cmd: models.Command{
		Name:              name,
		Type:              models.Interaction(registry.User),
		DefaultPermission: true,
	}}
}

// NewMessageCommand starts a context menu command shown on messages.
func NewMessageCommand(name string) *Builder {
	return &Builder{cmd: models.Command{
		Name:              name,
		Type:              models.Interaction(registry.Message),
		DefaultPermission: true,
	}}
}

// LocalizeName adds a localized name for locale.
func (b *Builder) LocalizeName(locale, name string) *Builder {
	if b.cmd.NameLocalizations == nil {
		b.cmd.NameLocalizations = models.Localizations{}
	}
	b.cmd.NameLocalizations[locale] = name
	return b
}

// LocalizeDescription adds a localized description for locale.
func (b *Builder) LocalizeDescription(locale, description string) *Builder {
	if b.cmd.DescriptionLocalizations == nil {
		b.cmd.DescriptionLocalizations = models.Localizations{}
	}
	b.cmd.DescriptionLocalizations[locale] = description
	return b
}

// Options appends options in display order.
func (b *Builder) Options(opts ...*OptionBuilder) *Builder {
	b.options = append(b.options, opts...)
	return b
}

// DefaultMemberPermissions sets the permission bitfield members need by default.
func (b *Builder) DefaultMemberPermissions(perms int64) *Builder {
	b.cmd.DefaultMemberPermissions = models.String(strconv.FormatInt(perms, 10))
	return b
}

// DMPermission sets whether the command is available in DMs with the app.
func (b *Builder) DMPermission(allowed bool) *Builder {
	b.cmd.DMPermission = models.Bool(allowed)
	return b
}

// DefaultPermission sets the legacy default_permission flag.
func (b *Builder) DefaultPermission(enabled bool) *Builder {
	b.cmd.DefaultPermission = enabled
	return b
}

// NSFW marks the command as age-restricted.
func (b *Builder) NSFW(nsfw bool) *Builder {
	b.cmd.NSFW = nsfw
	return b
}

// Build returns an independent copy of the command built so far.
func (b *Builder) Build() models.Command {
	c := b.cmd
	c.NameLocalizations = maps.Clone(b.cmd.NameLocalizations)
	c.DescriptionLocalizations = maps.Clone(b.cmd.DescriptionLocalizations)
	c.Options = buildOptions(b.options)
	return c
}

// Definition makes a Builder usable as a Command.
func (b *Builder) Definition() models.Command { return b.Build() }

// Validate checks the built command.
func (b *Builder) Validate() error {
	c := b.Build()
	return validator.Validate(&c)
}

// JSON validates the command and renders it.
func (b *Builder) JSON() (string, error) {
	c := b.Build()
	if err := validator.Validate(&c); err != nil {
		return "", err
	}
	return serializer.Serialize(&c)
}

func buildOptions(opts []*OptionBuilder) []models.Option {
	if len(opts) == 0 {
		return nil
	}
	out := make([]models.Option, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Build())
	}
	return out
}
