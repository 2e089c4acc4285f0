package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	jsoniter "github.com/json-iterator/go"

	"github.com/wosher-co/discordinteractions/models"
	"github.com/wosher-co/discordinteractions/serializer"
	"github.com/wosher-co/discordinteractions/utils"
	"github.com/wosher-co/discordinteractions/validator"
)

var (
	ErrMissingToken         = errors.New("no bot token provided")
	ErrMissingApplicationID = errors.New("no application id provided")
)

// Session is the part of *discordgo.Session the publisher needs. RequestRaw
// sends b as the body without re-encoding it.
type Session interface {
	RequestRaw(method, urlStr, contentType string, b []byte, bucketID string, sequence int, options ...discordgo.RequestOption) ([]byte, error)
}

// New creates a REST session authenticated as a bot.
func New(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return s, nil
}

// Publisher overwrites an application's registered commands.
type Publisher struct {
	session       Session
	applicationID string
}

// NewPublisher returns a publisher for the given application.
func NewPublisher(s Session, applicationID string) *Publisher {
	return &Publisher{session: s, applicationID: applicationID}
}

// Endpoint returns the bulk overwrite URL. An empty guildID selects the
// global commands.
func (p *Publisher) Endpoint(guildID string) string {
	if guildID == "" {
		return discordgo.EndpointApplicationGlobalCommands(p.applicationID)
	}
	return discordgo.EndpointApplicationGuildCommands(p.applicationID, guildID)
}

// Publish validates cmds and replaces the registered set with them, globally
// or in one guild. The request body is exactly what the serializer renders.
func (p *Publisher) Publish(ctx context.Context, guildID string, cmds []models.Command) ([]*discordgo.ApplicationCommand, error) {
	if p.applicationID == "" {
		return nil, ErrMissingApplicationID
	}
	if err := validator.ValidateAll(cmds); err != nil {
		return nil, fmt.Errorf("invalid commands: %w", err)
	}
	body, err := serializer.SerializeAll(cmds)
	if err != nil {
		return nil, err
	}

	endpoint := p.Endpoint(guildID)
	scope := "global"
	if guildID != "" {
		scope = "guild " + guildID
	}

	resp, err := p.session.RequestRaw(http.MethodPut, endpoint, "application/json", []byte(body), endpoint, 0, discordgo.WithContext(ctx))
	if err != nil {
		utils.Error("publisher", "publish", fmt.Sprintf("overwrite %s commands: %v", scope, err))
		return nil, fmt.Errorf("overwrite %s commands: %w", scope, err)
	}

	var registered []*discordgo.ApplicationCommand
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(resp, &registered); err != nil {
		return nil, fmt.Errorf("decode registered commands: %w", err)
	}
	utils.Info("publisher", "publish", fmt.Sprintf("registered %d %s commands", len(registered), scope))
	return registered, nil
}
