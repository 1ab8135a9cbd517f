package hipchat

import (
	"chat-gate/auth"
	"chat-gate/contract"
	"chat-gate/domain"
	"chat-gate/errors"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/lo"
)

const DefaultBaseURL = "https://api.hipchat.com/v1"

const (
	roomShowPath    = "/rooms/show"
	roomMessagePath = "/rooms/message"
	userShowPath    = "/users/show"
	userListPath    = "/users/list"
)

var _ contract.MessagingClient = (*Client)(nil)

type Config struct {
	BaseURL string
	Timeout time.Duration
	// DryRun logs outgoing messages instead of posting them. Reads still hit the endpoint.
	DryRun bool
}

// Client talks to the HipChat v1 REST API.
// It keeps no state between calls besides the credential provider.
type Client struct {
	baseURL     string
	http        *http.Client
	credentials auth.CredentialProvider
	dryRun      bool
	log         *slog.Logger
}

func NewClient(config Config, credentials auth.CredentialProvider, log *slog.Logger) *Client {
	baseURL := lo.Ternary(config.BaseURL == "", DefaultBaseURL, config.BaseURL)
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        &http.Client{Timeout: config.Timeout},
		credentials: credentials,
		dryRun:      config.DryRun,
		log:         log,
	}
}

func (c *Client) FetchRoom(ctx context.Context, roomID domain.RoomID) (domain.RoomRoster, error) {
	var response roomResponse
	params := url.Values{"room_id": {string(roomID)}}
	if err := c.get(ctx, roomShowPath, params, "retrieving users in the room", &response); err != nil {
		return domain.RoomRoster{}, err
	}
	return toRoomRoster(response.Room), nil
}

func (c *Client) FetchAllUsers(ctx context.Context) (domain.UserDirectory, error) {
	var response userListResponse
	if err := c.get(ctx, userListPath, url.Values{}, "retrieving all users", &response); err != nil {
		return domain.UserDirectory{}, err
	}
	return domain.UserDirectory{Users: lo.Map(response.Users, toUser)}, nil
}

func (c *Client) FetchUserStatus(ctx context.Context, userID string) (domain.UserPresence, error) {
	var response userShowResponse
	params := url.Values{"user_id": {userID}}
	if err := c.get(ctx, userShowPath, params, "retrieving info on a user", &response); err != nil {
		return domain.UserPresence{}, err
	}
	return domain.UserPresence{
		UserID: response.User.UserID.String(),
		Name:   response.User.Name,
		Status: domain.Status(response.User.Status),
	}, nil
}

// PostMessage posts msg to its room. Anything but a "sent" acknowledgment is an error,
// the caller decides whether it matters.
func (c *Client) PostMessage(ctx context.Context, msg domain.OutgoingMessage) (domain.Ack, error) {
	if c.dryRun {
		c.log.Info("[Hipchat] (Not) Sending message",
			"message", msg.Body, "room", msg.Room, "sender", msg.Sender, "color", msg.Color)
		return domain.Ack{Status: domain.AckDryRun}, nil
	}
	c.log.Info("[Hipchat] Sending message", "message", msg.Body, "room", msg.Room, "sender", msg.Sender)

	token, err := c.credentials.Token(ctx)
	if err != nil {
		return domain.Ack{}, err
	}
	form := url.Values{
		"room_id":        {string(msg.Room)},
		"from":           {msg.Sender},
		"message":        {msg.Body},
		"color":          {string(msg.Color)},
		"message_format": {string(msg.Format)},
		"notify":         {lo.Ternary(msg.Notify, "1", "0")},
	}
	endpoint := c.baseURL + roomMessagePath + "?" + url.Values{"auth_token": {token}}.Encode()
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return domain.Ack{}, err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(request)
	if err != nil {
		return domain.Ack{}, err
	}
	var response messageResponse
	if err = decode(body, "sending a message", &response); err != nil {
		return domain.Ack{}, err
	}
	if response.Status != domain.AckSent {
		return domain.Ack{Status: response.Status},
			fmt.Errorf("%w: unexpected acknowledgment %s", errors.ErrRemote, strings.TrimSpace(string(body)))
	}
	return domain.Ack{Status: response.Status}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, operation string, out any) error {
	token, err := c.credentials.Token(ctx)
	if err != nil {
		return err
	}
	params.Set("auth_token", token)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	body, err := c.do(request)
	if err != nil {
		return err
	}
	return decode(body, operation, out)
}

func (c *Client) do(request *http.Request) ([]byte, error) {
	response, err := c.http.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", request.Method, request.URL.Path, err)
	}
	defer func() {
		_ = response.Body.Close()
	}()
	return io.ReadAll(response.Body)
}

// decode turns an error envelope into a RemoteError and otherwise fills out.
func decode(body []byte, operation string, out any) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: malformed response when %s: %v", errors.ErrRemote, operation, err)
	}
	if envelope.Error != nil {
		return &errors.RemoteError{
			Operation: operation,
			Code:      envelope.Error.Code,
			Message:   envelope.Error.Message,
		}
	}
	return json.Unmarshal(body, out)
}
