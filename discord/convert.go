// Package discord connects command definitions to the Discord API through
// discordgo.
package discord

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/wosher-co/discordinteractions/models"
)

// ToApplicationCommand maps c onto discordgo's command type, for callers that
// register through discordgo's own helpers.
func ToApplicationCommand(c models.Command) (*discordgo.ApplicationCommand, error) {
	out := &discordgo.ApplicationCommand{
		Type:                     discordgo.ApplicationCommandType(c.EffectiveType().Code()),
		Name:                     c.Name,
		NameLocalizations:        localesPtr(c.NameLocalizations),
		Description:              c.DescriptionText(),
		DescriptionLocalizations: localesPtr(c.DescriptionLocalizations),
		DMPermission:             c.DMPermission,
		DefaultPermission:        models.Bool(c.DefaultPermission),
		NSFW:                     models.Bool(c.NSFW),
	}
	if c.DefaultMemberPermissions != nil {
		perms, err := strconv.ParseInt(*c.DefaultMemberPermissions, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("default_member_permissions %q: %w", *c.DefaultMemberPermissions, err)
		}
		out.DefaultMemberPermissions = &perms
	}
	out.Options = toOptions(c.Options)
	return out, nil
}

func toOptions(opts []models.Option) []*discordgo.ApplicationCommandOption {
	if opts == nil {
		return nil
	}
	out := make([]*discordgo.ApplicationCommandOption, 0, len(opts))
	for i := range opts {
		out = append(out, toOption(&opts[i]))
	}
	return out
}

func toOption(o *models.Option) *discordgo.ApplicationCommandOption {
	out := &discordgo.ApplicationCommandOption{
		Type:                     discordgo.ApplicationCommandOptionType(o.Type.Code()),
		Name:                     o.Name,
		NameLocalizations:        locales(o.NameLocalizations),
		Description:              o.Description,
		DescriptionLocalizations: locales(o.DescriptionLocalizations),
		Required:                 o.IsRequired(),
		Options:                  toOptions(o.Options),
		Autocomplete:             o.AutocompleteEnabled(),
		MinValue:                 o.MinValue,
	}
	if o.MaxValue != nil {
		out.MaxValue = *o.MaxValue
	}
	if o.MinLength != nil {
		n := int(*o.MinLength)
		out.MinLength = &n
	}
	if o.MaxLength != nil {
		out.MaxLength = int(*o.MaxLength)
	}
	for _, ct := range o.ChannelTypes {
		out.ChannelTypes = append(out.ChannelTypes, discordgo.ChannelType(ct.Code()))
	}
	for _, ch := range o.Choices {
		out.Choices = append(out.Choices, &discordgo.ApplicationCommandOptionChoice{
			Name:              ch.Name,
			NameLocalizations: locales(ch.NameLocalizations),
			Value:             ch.Value.Any(),
		})
	}
	return out
}

func locales(l models.Localizations) map[discordgo.Locale]string {
	if l == nil {
		return nil
	}
	out := make(map[discordgo.Locale]string, len(l))
	for k, v := range l {
		out[discordgo.Locale(k)] = v
	}
	return out
}

func localesPtr(l models.Localizations) *map[discordgo.Locale]string {
	m := locales(l)
	if m == nil {
		return nil
	}
	return &m
}
