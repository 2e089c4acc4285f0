package schema

import (
	"errors"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wosher-co/discordinteractions/models"
	"github.com/wosher-co/discordinteractions/registry"
	"github.com/wosher-co/discordinteractions/serializer"
	"github.com/wosher-co/discordinteractions/validator"
)

func fullCommand() models.Command {
	return models.Command{
		Name:                     "ticket",
		NameLocalizations:        models.Localizations{"fr": "ticket"},
		Description:              models.String("Support tickets"),
		DescriptionLocalizations: models.Localizations{"fr": "Tickets de support"},
		DefaultMemberPermissions: models.String("32"),
		DMPermission:             models.Bool(false),
		DefaultPermission:        true,
		Type:                     models.Interaction(registry.ChatInput),
		Options: []models.Option{
			{
				Type:        registry.OptionSubCommand,
				Name:        "open",
				Description: "Open a ticket",
				Options: []models.Option{
					{
						Type:        registry.OptionString,
						Name:        "topic",
						Description: "What it is about",
						Required:    models.Bool(true),
						Choices: []models.Choice{
							{Name: "Billing", Value: models.StringValue("billing")},
							{Name: "Bug", Value: models.StringValue("bug")},
						},
					},
					{
						Type:        registry.OptionInteger,
						Name:        "priority",
						Description: "1 is highest",
						MinValue:    models.Float(1),
						MaxValue:    models.Float(5),
					},
					{
						Type:         registry.OptionChannel,
						Name:         "channel",
						Description:  "Where to open it",
						ChannelTypes: []registry.ChannelType{registry.ChannelGuildText},
					},
					{
						Type:         registry.OptionString,
						Name:         "details",
						Description:  "Free text",
						MinLength:    models.Uint32(0),
						MaxLength:    models.Uint32(2000),
						Autocomplete: models.Bool(false),
					},
				},
			},
		},
	}
}

func TestRenderedCommandMatchesSchema(t *testing.T) {
	c := fullCommand()
	require.NoError(t, validator.Validate(&c))
	out, err := serializer.Serialize(&c)
	require.NoError(t, err)
	assert.NoError(t, Validate([]byte(out)))
}

func TestPingMatchesSchema(t *testing.T) {
	assert.NoError(t, Validate([]byte(`{"name":"ping","description":"Replies with pong","default_permission":true,"nsfw":false}`)))
}

func TestSchemaRejects(t *testing.T) {
	tests := map[string]string{
		"missing nsfw":        `{"name":"ping","default_permission":true}`,
		"type as name":        `{"name":"ping","default_permission":true,"nsfw":false,"type":"chat_input"}`,
		"null field":          `{"name":"ping","default_permission":true,"nsfw":false,"dm_permission":null}`,
		"unknown field":       `{"name":"ping","default_permission":true,"nsfw":false,"version":"1"}`,
		"bad option type":     `{"default_permission":true,"nsfw":false,"options":[{"type":11,"name":"a","description":"b"}]}`,
		"option missing desc": `{"default_permission":true,"nsfw":false,"options":[{"type":3,"name":"a"}]}`,
		"bool choice":         `{"default_permission":true,"nsfw":false,"options":[{"type":3,"name":"a","description":"b","choices":[{"name":"x","value":true}]}]}`,
		"bad channel type":    `{"default_permission":true,"nsfw":false,"options":[{"type":7,"name":"a","description":"b","channel_types":[7]}]}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			err := Validate([]byte(doc))
			require.Error(t, err)
			var verr *jsonschema.ValidationError
			assert.True(t, errors.As(err, &verr), err.Error())
		})
	}
}

func TestMalformedJSON(t *testing.T) {
	err := Validate([]byte(`{"name":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode command json")
}

func TestValidateList(t *testing.T) {
	a := fullCommand()
	b := models.Command{Name: "Report", Type: models.Interaction(registry.Message), DefaultPermission: true}
	out, err := serializer.SerializeAll([]models.Command{a, b})
	require.NoError(t, err)
	assert.NoError(t, ValidateList([]byte(out)))

	err = ValidateList([]byte(`[{"name":"ok","default_permission":true,"nsfw":false},{"name":"bad"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command 1")

	assert.Error(t, ValidateList([]byte(`{"name":"not a list"}`)))
}

func TestSource(t *testing.T) {
	assert.Contains(t, Source(), `"$defs"`)
}
