package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fhnw-projects/go-chat-client/models"
)

// decodeTokenWrapper parses the login response body. Unlike the list
// decoders this is a hard failure: a login answer that is not a token
// wrapper cannot be acted on.
func decodeTokenWrapper(body []byte) (models.TokenWrapper, error) {
	var wrapper models.TokenWrapper
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return models.TokenWrapper{}, fmt.Errorf("decode login response: %w", err)
	}
	return wrapper, nil
}

// decodeUserList extracts a list of usernames from body. It tries the
// wrapped shape {<wrapperKey>: [...]} first, then a bare array. The result
// is deduplicated preserving first occurrence order. ok is false when
// neither shape matched.
func decodeUserList(body []byte, wrapperKey string) (users []string, ok bool) {
	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err == nil {
		raw, exists := wrapped[wrapperKey]
		if !exists {
			return nil, false
		}
		var list []string
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, false
		}
		return dedupe(list), true
	}

	var list []string
	if err := json.Unmarshal(body, &list); err == nil {
		return dedupe(list), true
	}

	return nil, false
}

// decodeMessages extracts inbound messages from body, accepting either
// {"messages": [...]} or a bare array.
func decodeMessages(body []byte) ([]models.Message, bool) {
	var wrapped struct {
		Messages []models.Message `json:"messages"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Messages != nil {
		return wrapped.Messages, true
	}

	var list []models.Message
	if err := json.Unmarshal(body, &list); err == nil {
		return list, true
	}

	return nil, false
}

// decodeOnlineFlag reads the single-user presence answer, accepting
// {"online": true|false} or a bare boolean. Anything else reads as offline.
func decodeOnlineFlag(body []byte) bool {
	var wrapped struct {
		Online *bool `json:"online"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Online != nil {
		return *wrapped.Online
	}

	var bare bool
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare
	}

	return false
}

// decodeDelivered reports whether a send response confirms delivery. The
// server is loose about the shape here: a wrapper object with any true
// boolean field, a bare boolean, or a plain-text body containing "true" all
// count as confirmed.
func decodeDelivered(body []byte) bool {
	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err == nil && len(wrapped) > 0 {
		for _, raw := range wrapped {
			var b bool
			if err := json.Unmarshal(raw, &b); err == nil && b {
				return true
			}
		}
		return false
	}

	var bare bool
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare
	}

	return bytes.Contains(body, []byte("true"))
}

func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, name := range list {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
