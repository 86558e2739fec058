package webhook

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
)

// Change is the sender and text extracted from one notification change.
// Either field is empty when the payload did not carry it.
type Change struct {
	SenderID string
	Message  string
}

// Mentions reports whether the change text contains adminID.
// This is a plain substring match, so an id embedded in a longer number also matches.
func (ch Change) Mentions(adminID string) bool {
	return adminID != "" && ch.SenderID != "" && ch.Message != "" && strings.Contains(ch.Message, adminID)
}

// parseJSONBody returns the request body as JSON. It fails for a non JSON content type,
// invalid JSON, or an empty value such as {}, [] or null.
func parseJSONBody(c *fiber.Ctx) (gjson.Result, bool) {
	if !c.Is("json") {
		return gjson.Result{}, false
	}
	body := c.Body()
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, false
	}
	payload := gjson.ParseBytes(body)
	if isEmptyJSON(payload) {
		return gjson.Result{}, false
	}
	return payload, true
}

func isEmptyJSON(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return true
	case gjson.Number:
		return v.Num == 0
	case gjson.String:
		return v.Str == ""
	case gjson.JSON:
		empty := true
		v.ForEach(func(_, _ gjson.Result) bool {
			empty = false
			return false
		})
		return empty
	}
	return false
}

// extractChanges walks entry[].changes[] and returns one Change per change.
// Missing or mistyped fields below a change are treated as absent. An error is returned
// only when the envelope itself is malformed.
func extractChanges(payload gjson.Result) ([]Change, error) {
	if !payload.IsObject() {
		return nil, fmt.Errorf("payload is not a JSON object")
	}
	entries := payload.Get("entry")
	if !entries.Exists() {
		return nil, nil
	}
	if !entries.IsArray() {
		return nil, fmt.Errorf("entry must be an array, got %s", entries.Type)
	}

	var changes []Change
	for i, entry := range entries.Array() {
		entryChanges := entry.Get("changes")
		if !entryChanges.Exists() {
			continue
		}
		if !entryChanges.IsArray() {
			return nil, fmt.Errorf("entry[%d].changes must be an array, got %s", i, entryChanges.Type)
		}
		for _, change := range entryChanges.Array() {
			value := change.Get("value")
			changes = append(changes, Change{
				SenderID: idString(value.Get("from.id")),
				Message:  messageText(value),
			})
		}
	}
	return changes, nil
}

// idString accepts ids encoded as JSON strings or numbers.
func idString(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return v.Raw
	}
	return ""
}

func messageText(value gjson.Result) string {
	if msg := value.Get("message"); msg.Type == gjson.String && msg.Str != "" {
		return msg.Str
	}
	if text := value.Get("text"); text.Type == gjson.String {
		return text.Str
	}
	return ""
}

func parseCommandRequest(payload gjson.Result) CommandRequest {
	return CommandRequest{
		Secret:  stringField(payload.Get("secret")),
		AdminID: idString(payload.Get("admin_id")),
		Command: stringField(payload.Get("command")),
		Args:    stringField(payload.Get("args")),
	}
}

func stringField(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.Str
	}
	return ""
}
