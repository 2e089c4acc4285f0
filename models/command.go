// Package models holds the in-memory description of an application command.
//
// Optional fields use pointers, nil slices and nil maps to mean "absent".
// A non-nil empty slice is present and renders as an empty array.
package models

import "github.com/wosher-co/discordinteractions/registry"

// Localizations maps a Discord locale code (e.g. "en-US", "fr") to a localized string.
type Localizations map[string]string

// Command is an application command definition: a slash command or a
// user/message context menu command.
type Command struct {
	// 1-32 characters. Chat input names follow the lowercase slug rule.
	Name              string
	NameLocalizations Localizations

	// 1-100 characters for chat input commands; absent or empty otherwise.
	Description              *string
	DescriptionLocalizations Localizations

	// Ordered; only chat input commands take options.
	Options []Option

	// Permission bitfield as a decimal string, e.g. "8" for administrator.
	DefaultMemberPermissions *string
	DMPermission             *bool

	// Legacy field, always rendered.
	DefaultPermission bool

	// Absent means chat input on the platform side.
	Type *registry.InteractionType

	NSFW bool
}

// EffectiveType returns the command type the platform will assume.
func (c *Command) EffectiveType() registry.InteractionType {
	if c.Type == nil {
		return registry.ChatInput
	}
	return *c.Type
}

// DescriptionText returns the description or "" when it is absent.
func (c *Command) DescriptionText() string {
	if c.Description == nil {
		return ""
	}
	return *c.Description
}
