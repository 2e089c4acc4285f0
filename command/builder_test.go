package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wosher-co/discordinteractions/models"
	"github.com/wosher-co/discordinteractions/registry"
	"github.com/wosher-co/discordinteractions/validator"
)

func TestNewChatInputDefaults(t *testing.T) {
	c := NewChatInput("ping", "Replies with pong").Build()

	assert.Equal(t, "ping", c.Name)
	require.NotNil(t, c.Description)
	assert.Equal(t, "Replies with pong", *c.Description)
	assert.True(t, c.DefaultPermission)
	assert.False(t, c.NSFW)
	assert.Nil(t, c.Type)
	assert.Nil(t, c.Options)
	assert.Nil(t, c.DMPermission)
	assert.Equal(t, registry.ChatInput, c.EffectiveType())
}

func TestContextMenuBuilders(t *testing.T) {
	user := NewUserCommand("High Five").Build()
	require.NotNil(t, user.Type)
	assert.Equal(t, registry.User, *user.Type)
	assert.Nil(t, user.Description)

	msg := NewMessageCommand("Bookmark").Build()
	require.NotNil(t, msg.Type)
	assert.Equal(t, registry.Message, *msg.Type)

	assert.NoError(t, NewUserCommand("High Five").Validate())
	assert.NoError(t, NewMessageCommand("Bookmark").Validate())
}

func TestBuilderJSON(t *testing.T) {
	out, err := NewChatInput("ping", "Replies with pong").JSON()
	require.NoError(t, err)
	assert.Equal(t, `{"name":"ping","description":"Replies with pong","default_permission":true,"nsfw":false}`, out)
}

func TestBuilderSetters(t *testing.T) {
	c := NewChatInput("ban", "Ban a member").
		LocalizeName("fr", "bannir").
		LocalizeDescription("fr", "Bannir un membre").
		DefaultMemberPermissions(4).
		DMPermission(false).
		DefaultPermission(false).
		NSFW(true).
		Build()

	assert.Equal(t, models.Localizations{"fr": "bannir"}, c.NameLocalizations)
	assert.Equal(t, models.Localizations{"fr": "Bannir un membre"}, c.DescriptionLocalizations)
	require.NotNil(t, c.DefaultMemberPermissions)
	assert.Equal(t, "4", *c.DefaultMemberPermissions)
	require.NotNil(t, c.DMPermission)
	assert.False(t, *c.DMPermission)
	assert.False(t, c.DefaultPermission)
	assert.True(t, c.NSFW)
}

func TestBuildReturnsIndependentCopies(t *testing.T) {
	b := NewChatInput("echo", "Repeat text").
		LocalizeName("de", "echo").
		Options(StringOption("text", "What to say").StringChoice("Hi", "hi"))

	first := b.Build()
	first.NameLocalizations["de"] = "changed"
	first.Options[0].Choices[0] = models.Choice{Name: "x", Value: models.StringValue("x")}

	second := b.Build()
	assert.Equal(t, "echo", second.NameLocalizations["de"])
	assert.Equal(t, "Hi", second.Options[0].Choices[0].Name)
}

func TestOptionConstructors(t *testing.T) {
	cases := []struct {
		b    *OptionBuilder
		want registry.OptionType
	}{
		{StringOption("a", "d"), registry.OptionString},
		{IntegerOption("a", "d"), registry.OptionInteger},
		{NumberOption("a", "d"), registry.OptionNumber},
		{BooleanOption("a", "d"), registry.OptionBoolean},
		{UserOption("a", "d"), registry.OptionUser},
		{ChannelOption("a", "d"), registry.OptionChannel},
		{RoleOption("a", "d"), registry.OptionRole},
		{MentionableOption("a", "d"), registry.OptionMentionable},
		{SubCommand("a", "d"), registry.OptionSubCommand},
		{SubCommandGroup("a", "d"), registry.OptionSubCommandGroup},
	}
	for _, tc := range cases {
		t.Run(tc.want.String(), func(t *testing.T) {
			o := tc.b.Build()
			assert.Equal(t, tc.want, o.Type)
			assert.Equal(t, "a", o.Name)
			assert.Equal(t, "d", o.Description)
			assert.Nil(t, o.Required)
			assert.Nil(t, o.Options)
		})
	}
}

func TestOptionSetters(t *testing.T) {
	o := IntegerOption("count", "How many").
		Required().
		MinValue(1).
		MaxValue(10).
		IntChoice("One", 1).
		IntChoice("Two", 2).
		LocalizeName("es-ES", "cantidad").
		LocalizeDescription("es-ES", "Cuántos").
		Build()

	require.NotNil(t, o.Required)
	assert.True(t, *o.Required)
	assert.Equal(t, 1.0, *o.MinValue)
	assert.Equal(t, 10.0, *o.MaxValue)
	require.Len(t, o.Choices, 2)
	v, ok := o.Choices[1].Value.Int()
	assert.True(t, ok)
	assert.Equal(t, int32(2), v)
	assert.Equal(t, "cantidad", o.NameLocalizations["es-ES"])
	assert.Equal(t, "Cuántos", o.DescriptionLocalizations["es-ES"])

	s := StringOption("query", "Search").MinLength(2).MaxLength(50).Autocomplete().Build()
	assert.Equal(t, uint32(2), *s.MinLength)
	assert.Equal(t, uint32(50), *s.MaxLength)
	assert.True(t, s.AutocompleteEnabled())

	n := NumberOption("ratio", "Ratio").FloatChoice("Half", 0.5).Build()
	f, ok := n.Choices[0].Value.Float()
	assert.True(t, ok)
	assert.Equal(t, 0.5, f)

	ch := ChannelOption("where", "Target").ChannelTypes(registry.ChannelGuildText, registry.ChannelGuildForum).Build()
	assert.Equal(t, []registry.ChannelType{registry.ChannelGuildText, registry.ChannelGuildForum}, ch.ChannelTypes)
}

func TestSubCommandTree(t *testing.T) {
	c := NewChatInput("config", "Server configuration").Options(
		SubCommandGroup("logging", "Logging settings",
			SubCommand("enable", "Enable logging",
				ChannelOption("channel", "Log channel").Required(),
			),
			SubCommand("disable", "Disable logging"),
		),
		SubCommand("show", "Show the current configuration"),
	)

	built := c.Build()
	require.Len(t, built.Options, 2)
	group := built.Options[0]
	assert.Equal(t, registry.OptionSubCommandGroup, group.Type)
	require.Len(t, group.Options, 2)
	assert.Equal(t, "channel", group.Options[0].Options[0].Name)
	assert.Nil(t, group.Options[1].Options)

	assert.NoError(t, c.Validate())
}

func TestBuilderValidateReportsErrors(t *testing.T) {
	err := NewChatInput("bad", "Mixed choices").
		Options(StringOption("pick", "Pick one").IntChoice("One", 1)).
		Validate()
	assert.ErrorIs(t, err, validator.ErrChoiceValueTypeMismatch)

	_, err = NewChatInput("Upper", "Not a slug").JSON()
	assert.ErrorIs(t, err, validator.ErrInvalidName)
}
