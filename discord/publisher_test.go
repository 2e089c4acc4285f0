package discord

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wosher-co/discordinteractions/models"
	"github.com/wosher-co/discordinteractions/serializer"
	"github.com/wosher-co/discordinteractions/validator"
)

type request struct {
	method      string
	url         string
	contentType string
	body        []byte
	bucketID    string
	options     int
}

// fakeSession records the body bytes exactly as they would be written to the
// connection.
type fakeSession struct {
	requests []request
	response []byte
	err      error
}

var _ Session = (*discordgo.Session)(nil)

func (f *fakeSession) RequestRaw(method, urlStr, contentType string, b []byte, bucketID string, sequence int, options ...discordgo.RequestOption) ([]byte, error) {
	f.requests = append(f.requests, request{method, urlStr, contentType, append([]byte(nil), b...), bucketID, len(options)})
	return f.response, f.err
}

func ping() models.Command {
	return models.Command{Name: "ping", Description: models.String("Replies with pong"), DefaultPermission: true}
}

func TestPublishGlobal(t *testing.T) {
	s := &fakeSession{response: []byte(`[{"id":"1","application_id":"42","name":"ping","description":"Replies with pong","type":1,"version":"7"}]`)}
	p := NewPublisher(s, "42")

	registered, err := p.Publish(context.Background(), "", []models.Command{ping()})
	require.NoError(t, err)
	require.Len(t, registered, 1)
	assert.Equal(t, "1", registered[0].ID)
	assert.Equal(t, discordgo.ChatApplicationCommand, registered[0].Type)

	require.Len(t, s.requests, 1)
	req := s.requests[0]
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, discordgo.EndpointApplicationGlobalCommands("42"), req.url)
	assert.Equal(t, req.url, req.bucketID)
	assert.Equal(t, "application/json", req.contentType)
	assert.Equal(t, `[{"name":"ping","description":"Replies with pong","default_permission":true,"nsfw":false}]`, string(req.body))
	assert.Equal(t, 1, req.options)
}

func TestPublishGuild(t *testing.T) {
	s := &fakeSession{response: []byte(`[]`)}
	p := NewPublisher(s, "42")

	registered, err := p.Publish(context.Background(), "99", nil)
	require.NoError(t, err)
	assert.Empty(t, registered)
	require.Len(t, s.requests, 1)
	assert.Equal(t, discordgo.EndpointApplicationGuildCommands("42", "99"), s.requests[0].url)
	assert.Equal(t, "[]", string(s.requests[0].body))
}

func TestPublishSendsRenderedBytesUnchanged(t *testing.T) {
	s := &fakeSession{response: []byte(`[]`)}
	c := ping()
	c.Description = models.String("a <b> & c")
	cmds := []models.Command{c}

	want, err := serializer.SerializeAll(cmds)
	require.NoError(t, err)
	require.Contains(t, want, `"a <b> & c"`)

	_, err = NewPublisher(s, "42").Publish(context.Background(), "", cmds)
	require.NoError(t, err)
	require.Len(t, s.requests, 1)
	assert.Equal(t, want, string(s.requests[0].body))
	assert.NotContains(t, string(s.requests[0].body), `\u003c`)
}

func TestPublishRejectsInvalidBeforeSending(t *testing.T) {
	s := &fakeSession{}
	bad := ping()
	bad.Name = "Ping"

	_, err := NewPublisher(s, "42").Publish(context.Background(), "", []models.Command{bad})
	assert.ErrorIs(t, err, validator.ErrInvalidName)
	assert.Empty(t, s.requests)
}

func TestPublishMissingApplicationID(t *testing.T) {
	s := &fakeSession{}
	_, err := NewPublisher(s, "").Publish(context.Background(), "", []models.Command{ping()})
	assert.ErrorIs(t, err, ErrMissingApplicationID)
	assert.Empty(t, s.requests)
}

func TestPublishRequestError(t *testing.T) {
	boom := errors.New("HTTP 401 Unauthorized")
	s := &fakeSession{err: boom}

	_, err := NewPublisher(s, "42").Publish(context.Background(), "7", []models.Command{ping()})
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "guild 7")
}

func TestPublishBadResponse(t *testing.T) {
	s := &fakeSession{response: []byte(`{"message":"not a list"}`)}
	_, err := NewPublisher(s, "42").Publish(context.Background(), "", []models.Command{ping()})
	assert.ErrorContains(t, err, "decode registered commands")
}

func TestNewRequiresToken(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrMissingToken)

	s, err := New("abc")
	require.NoError(t, err)
	assert.Equal(t, "Bot abc", s.Token)
}
