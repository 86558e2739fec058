package webhook

import "github.com/DIMO-Network/fb-group-relay/internal/clients/graph"

// NotificationPayload documents the subset of a Graph API webhook notification that is inspected.
// Decoding is done leniently with gjson; this type exists for the API docs.
type NotificationPayload struct {
	Object string              `json:"object"`
	Entry  []NotificationEntry `json:"entry"`
}

// NotificationEntry is one entry of a notification.
type NotificationEntry struct {
	ID      string               `json:"id"`
	Changes []NotificationChange `json:"changes"`
}

// NotificationChange is one change inside an entry.
type NotificationChange struct {
	Field string      `json:"field"`
	Value ChangeValue `json:"value"`
}

// ChangeValue holds the sender and the text of a change.
type ChangeValue struct {
	From struct {
		ID string `json:"id"`
	} `json:"from"`
	Message string `json:"message"`
	Text    string `json:"text"`
}

// CommandRequest is the body accepted by the command endpoint.
type CommandRequest struct {
	// Secret must match the configured command secret.
	Secret string `json:"secret"`
	// AdminID must match the configured administrator id. Numbers are accepted.
	AdminID string `json:"admin_id"`
	// Command is one of "post" or "ping", case-insensitive.
	Command string `json:"command"`
	// Args is the message for the "post" command.
	Args string `json:"args"`
}

// StatusResponse is returned by the notification endpoint.
type StatusResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// ErrorResponse is returned by the command endpoint on failure.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// PostedResponse is returned after a successful "post" command.
type PostedResponse struct {
	Status string           `json:"status"`
	Result graph.PostResult `json:"result"`
}

// PongResponse is returned by the "ping" command.
type PongResponse struct {
	Status string `json:"status"`
	Credit string `json:"credit"`
}
