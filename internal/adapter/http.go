// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/fhnw-projects/go-chat-client/internal/config"
	"github.com/fhnw-projects/go-chat-client/internal/logger"
	"github.com/fhnw-projects/go-chat-client/internal/session"
	"github.com/fhnw-projects/go-chat-client/models"
)

const defaultRequestTimeout = 15 * time.Second

type httpChatAdapter struct {
	client  *resty.Client
	session *session.Session
	logger  *logger.Logger
}

// NewHTTPChatAdapter constructs the HTTP/REST implementation of
// [ChatServerAdapter]. The adapter resolves the base URL from sess on every
// request, so address changes made through the session take effect for all
// subsequent calls without touching in-flight ones.
func NewHTTPChatAdapter(sess *session.Session, adapterCfg config.ClientAdapter, log *logger.Logger) ChatServerAdapter {
	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().SetTimeout(timeout)

	return &httpChatAdapter{client: client, session: sess, logger: log}
}

// Ping implements [ChatServerAdapter].
func (h *httpChatAdapter) Ping(ctx context.Context) bool {
	resp, err := h.request(ctx).Get(h.endpoint("/ping"))
	if err != nil {
		h.logger.Debug().Err(err).Msg("ping failed")
		return false
	}
	return resp.StatusCode() == http.StatusOK
}

// Register implements [ChatServerAdapter]. It POSTs the credentials to
// POST /user/register and returns the confirmation body on HTTP 200.
func (h *httpChatAdapter) Register(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := h.request(ctx).
		SetBody(creds).
		Post(h.endpoint("/user/register"))
	if err != nil {
		return "", wrapTransportErr("register request", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", &ServerError{Code: resp.StatusCode(), Body: strings.TrimSpace(string(resp.Body()))}
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// Login implements [ChatServerAdapter]. On HTTP 200 the token wrapper is
// parsed from the body and the token is stored in the session.
func (h *httpChatAdapter) Login(ctx context.Context, creds models.Credentials) (bool, error) {
	resp, err := h.request(ctx).
		SetBody(creds).
		Post(h.endpoint("/user/login"))
	if err != nil {
		return false, wrapTransportErr("login request", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return false, &ServerError{Code: resp.StatusCode(), Body: strings.TrimSpace(string(resp.Body()))}
	}

	wrapper, err := decodeTokenWrapper(resp.Body())
	if err != nil {
		return false, err
	}
	if wrapper.Token == "" {
		return false, nil
	}

	h.session.SetToken(wrapper.Token)
	return true, nil
}

// PingWithToken implements [ChatServerAdapter]. It probes the authenticated
// POST /user/online endpoint with the held token only.
func (h *httpChatAdapter) PingWithToken(ctx context.Context) bool {
	token, err := h.session.RequireToken()
	if err != nil {
		return false
	}

	resp, err := h.request(ctx).
		SetBody(map[string]string{"token": token}).
		Post(h.endpoint("/user/online"))
	if err != nil {
		h.logger.Debug().Err(err).Msg("token ping failed")
		return false
	}
	return resp.StatusCode() == http.StatusOK
}

// SendMessage implements [ChatServerAdapter].
func (h *httpChatAdapter) SendMessage(ctx context.Context, recipient, text string) (bool, error) {
	token, err := h.session.RequireToken()
	if err != nil {
		return false, err
	}

	resp, err := h.request(ctx).
		SetBody(models.Message{Token: token, Username: recipient, Message: text}).
		Post(h.endpoint("/chat/send"))
	if err != nil {
		return false, wrapTransportErr("send request", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return false, &ServerError{Code: resp.StatusCode(), Body: strings.TrimSpace(string(resp.Body()))}
	}

	return decodeDelivered(resp.Body()), nil
}

// PollMessages implements [ChatServerAdapter]. It never fails: without a
// token, or when the request or decode goes wrong, the poll yields nothing
// and the next tick retries.
func (h *httpChatAdapter) PollMessages(ctx context.Context) []models.Message {
	token, err := h.session.RequireToken()
	if err != nil {
		return nil
	}

	resp, err := h.request(ctx).
		SetBody(map[string]string{"token": token}).
		Post(h.endpoint("/chat/poll"))
	if err != nil {
		h.logger.Warn().Err(err).Msg("poll request failed")
		return nil
	}
	if resp.StatusCode() != http.StatusOK {
		h.logger.Warn().Int("status", resp.StatusCode()).Msg("poll rejected")
		return nil
	}

	messages, ok := decodeMessages(resp.Body())
	if !ok {
		h.logger.Warn().Msg("poll response has unexpected shape")
		return nil
	}
	return messages
}

// Logout implements [ChatServerAdapter]. The server call is best-effort; the
// local token is cleared no matter what.
func (h *httpChatAdapter) Logout(ctx context.Context) bool {
	defer h.session.ClearToken()

	token, err := h.session.RequireToken()
	if err != nil {
		return true
	}

	if _, err := h.request(ctx).
		SetBody(map[string]string{"token": token}).
		Post(h.endpoint("/user/logout")); err != nil {
		h.logger.Warn().Err(err).Msg("logout request failed")
	}
	return true
}

// IsUserOnline implements [ChatServerAdapter].
func (h *httpChatAdapter) IsUserOnline(ctx context.Context, username string) bool {
	token, err := h.session.RequireToken()
	if err != nil {
		return false
	}

	resp, err := h.request(ctx).
		SetBody(map[string]string{"token": token, "username": username}).
		Post(h.endpoint("/user/online"))
	if err != nil {
		h.logger.Debug().Err(err).Str("username", username).Msg("online check failed")
		return false
	}
	if resp.StatusCode() != http.StatusOK {
		return false
	}

	return decodeOnlineFlag(resp.Body())
}

// FetchAllUsers implements [ChatServerAdapter].
func (h *httpChatAdapter) FetchAllUsers(ctx context.Context) []string {
	resp, err := h.request(ctx).Get(h.endpoint("/users"))
	if err != nil {
		h.logger.Warn().Err(err).Msg("fetch all users failed")
		return nil
	}
	if resp.StatusCode() != http.StatusOK {
		h.logger.Warn().Int("status", resp.StatusCode()).Msg("fetch all users rejected")
		return nil
	}

	users, ok := decodeUserList(resp.Body(), "users")
	if !ok {
		h.logger.Warn().Msg("user list response has unexpected shape")
		return nil
	}
	return users
}

// FetchOnlineUsers implements [ChatServerAdapter]. Primary path is the
// authenticated POST /user/online; the unauthenticated GET /users/online
// fallback covers a missing token and any primary-path failure.
func (h *httpChatAdapter) FetchOnlineUsers(ctx context.Context) []string {
	token, err := h.session.RequireToken()
	if err != nil {
		return h.fetchOnlineUsersFallback(ctx)
	}

	resp, err := h.request(ctx).
		SetBody(map[string]string{"token": token}).
		Post(h.endpoint("/user/online"))
	if err != nil {
		h.logger.Debug().Err(err).Msg("online list request failed, trying fallback")
		return h.fetchOnlineUsersFallback(ctx)
	}
	if resp.StatusCode() != http.StatusOK {
		return h.fetchOnlineUsersFallback(ctx)
	}

	online, ok := decodeUserList(resp.Body(), "online")
	if !ok {
		return h.fetchOnlineUsersFallback(ctx)
	}
	return online
}

func (h *httpChatAdapter) fetchOnlineUsersFallback(ctx context.Context) []string {
	resp, err := h.request(ctx).Get(h.endpoint("/users/online"))
	if err != nil {
		h.logger.Warn().Err(err).Msg("online list fallback failed")
		return nil
	}
	if resp.StatusCode() != http.StatusOK {
		h.logger.Warn().Int("status", resp.StatusCode()).Msg("online list fallback rejected")
		return nil
	}

	online, ok := decodeUserList(resp.Body(), "online")
	if !ok {
		h.logger.Warn().Msg("online list fallback has unexpected shape")
		return nil
	}
	return online
}

func (h *httpChatAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-Id", uuid.NewString())
}

func (h *httpChatAdapter) endpoint(path string) string {
	return h.session.BaseURL() + path
}
