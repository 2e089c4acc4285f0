package command

import (
	"github.com/wosher-co/discordinteractions/models"
	"github.com/wosher-co/discordinteractions/serializer"
	"github.com/wosher-co/discordinteractions/validator"
)

// Command is anything that can describe an application command.
type Command interface {
	Definition() models.Command
}

// Static wraps an already built definition, e.g. one loaded from a file.
type Static models.Command

// Definition returns the wrapped command.
func (s Static) Definition() models.Command { return models.Command(s) }

// Set holds commands in registration order.
type Set struct {
	commands []Command
}

// NewSet returns a set holding cmds.
func NewSet(cmds ...Command) *Set {
	return &Set{commands: append([]Command(nil), cmds...)}
}

// Add appends commands to the set.
func (s *Set) Add(cmds ...Command) {
	s.commands = append(s.commands, cmds...)
}

// Len returns the number of commands in the set.
func (s *Set) Len() int { return len(s.commands) }

// Definitions returns a slice of all command definitions.
func (s *Set) Definitions() []models.Command {
	defs := make([]models.Command, len(s.commands))
	for i, cmd := range s.commands {
		defs[i] = cmd.Definition()
	}
	return defs
}

// Validate checks every command and the registration-wide limits.
func (s *Set) Validate() error {
	return validator.ValidateAll(s.Definitions())
}

// JSON validates the set and renders it as a bulk overwrite body.
func (s *Set) JSON() (string, error) {
	defs := s.Definitions()
	if err := validator.ValidateAll(defs); err != nil {
		return "", err
	}
	return serializer.SerializeAll(defs)
}
