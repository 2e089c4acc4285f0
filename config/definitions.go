package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/wosher-co/discordinteractions/models"
	"github.com/wosher-co/discordinteractions/registry"
)

// commandDoc is one command as written in a definitions file. Type names are
// the registry names, e.g. "chat_input" or "sub_command".
type commandDoc struct {
	Name                     string            `yaml:"name"`
	NameLocalizations        map[string]string `yaml:"name_localizations"`
	Description              *string           `yaml:"description"`
	DescriptionLocalizations map[string]string `yaml:"description_localizations"`
	Options                  []optionDoc       `yaml:"options"`
	DefaultMemberPermissions *string           `yaml:"default_member_permissions"`
	DMPermission             *bool             `yaml:"dm_permission"`
	DefaultPermission        *bool             `yaml:"default_permission"`
	Type                     string            `yaml:"type"`
	NSFW                     bool              `yaml:"nsfw"`
}

type optionDoc struct {
	Type                     string            `yaml:"type"`
	Name                     string            `yaml:"name"`
	NameLocalizations        map[string]string `yaml:"name_localizations"`
	Description              string            `yaml:"description"`
	DescriptionLocalizations map[string]string `yaml:"description_localizations"`
	Required                 *bool             `yaml:"required"`
	Choices                  []choiceDoc       `yaml:"choices"`
	Options                  []optionDoc       `yaml:"options"`
	ChannelTypes             []string          `yaml:"channel_types"`
	MinValue                 *float64          `yaml:"min_value"`
	MaxValue                 *float64          `yaml:"max_value"`
	MinLength                *uint32           `yaml:"min_length"`
	MaxLength                *uint32           `yaml:"max_length"`
	Autocomplete             *bool             `yaml:"autocomplete"`
}

type choiceDoc struct {
	Name              string            `yaml:"name"`
	NameLocalizations map[string]string `yaml:"name_localizations"`
	Value             any               `yaml:"value"`
}

// LoadDefinitions reads a YAML or JSON list of commands from path.
func LoadDefinitions(path string) ([]models.Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definitions: %w", err)
	}
	cmds, err := ParseDefinitions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cmds, nil
}

// ParseDefinitions decodes a command list. Unknown fields are rejected. An
// empty document yields no commands.
func ParseDefinitions(data []byte) ([]models.Command, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var docs []commandDoc
	if err := dec.Decode(&docs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse definitions: %w", err)
	}

	cmds := make([]models.Command, 0, len(docs))
	for i := range docs {
		c, err := docs[i].command("commands[" + strconv.Itoa(i) + "]")
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

func (d *commandDoc) command(path string) (models.Command, error) {
	c := models.Command{
		Name:                     d.Name,
		NameLocalizations:        d.NameLocalizations,
		Description:              d.Description,
		DescriptionLocalizations: d.DescriptionLocalizations,
		DefaultMemberPermissions: d.DefaultMemberPermissions,
		DMPermission:             d.DMPermission,
		DefaultPermission:        true,
		NSFW:                     d.NSFW,
	}
	if d.DefaultPermission != nil {
		c.DefaultPermission = *d.DefaultPermission
	}
	if d.Type != "" {
		t, err := registry.ParseInteractionType(d.Type)
		if err != nil {
			return c, fmt.Errorf("%s.type: %w", path, err)
		}
		c.Type = models.Interaction(t)
	}

	opts, err := options(path, d.Options)
	if err != nil {
		return c, err
	}
	c.Options = opts
	return c, nil
}

func options(path string, docs []optionDoc) ([]models.Option, error) {
	if docs == nil {
		return nil, nil
	}
	out := make([]models.Option, 0, len(docs))
	for i := range docs {
		o, err := docs[i].option(path + ".options[" + strconv.Itoa(i) + "]")
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (d *optionDoc) option(path string) (models.Option, error) {
	t, err := registry.ParseOptionType(d.Type)
	if err != nil {
		return models.Option{}, fmt.Errorf("%s.type: %w", path, err)
	}
	o := models.Option{
		Type:                     t,
		Name:                     d.Name,
		NameLocalizations:        d.NameLocalizations,
		Description:              d.Description,
		DescriptionLocalizations: d.DescriptionLocalizations,
		Required:                 d.Required,
		MinValue:                 d.MinValue,
		MaxValue:                 d.MaxValue,
		MinLength:                d.MinLength,
		MaxLength:                d.MaxLength,
		Autocomplete:             d.Autocomplete,
	}

	if d.Choices != nil {
		o.Choices = make([]models.Choice, 0, len(d.Choices))
		for j, ch := range d.Choices {
			v, err := choiceValue(t, ch.Value)
			if err != nil {
				return o, fmt.Errorf("%s.choices[%d].value: %w", path, j, err)
			}
			o.Choices = append(o.Choices, models.Choice{Name: ch.Name, NameLocalizations: ch.NameLocalizations, Value: v})
		}
	}

	if d.ChannelTypes != nil {
		o.ChannelTypes = make([]registry.ChannelType, 0, len(d.ChannelTypes))
		for k, name := range d.ChannelTypes {
			ct, err := registry.ParseChannelType(name)
			if err != nil {
				return o, fmt.Errorf("%s.channel_types[%d]: %w", path, k, err)
			}
			o.ChannelTypes = append(o.ChannelTypes, ct)
		}
	}

	o.Options, err = options(path, d.Options)
	if err != nil {
		return o, err
	}
	return o, nil
}

// choiceValue converts a decoded scalar to a ChoiceValue. Numbers follow the
// option type where that loses nothing; any other mismatch keeps the
// scalar's own kind and is left for validation to report.
func choiceValue(t registry.OptionType, raw any) (models.ChoiceValue, error) {
	switch v := raw.(type) {
	case string:
		return models.StringValue(v), nil
	case int:
		if t == registry.OptionNumber {
			return models.FloatValue(float64(v)), nil
		}
		if v < math.MinInt32 || v > math.MaxInt32 {
			return models.ChoiceValue{}, fmt.Errorf("integer %d out of range", v)
		}
		return models.IntValue(int32(v)), nil
	case float64:
		if t == registry.OptionInteger && v == math.Trunc(v) && v >= math.MinInt32 && v <= math.MaxInt32 {
			return models.IntValue(int32(v)), nil
		}
		return models.FloatValue(v), nil
	case nil:
		return models.ChoiceValue{}, errors.New("missing value")
	default:
		return models.ChoiceValue{}, fmt.Errorf("unsupported value %v (%T)", raw, raw)
	}
}
