package webhook

import (
	"context"
	"crypto/subtle"

	"github.com/DIMO-Network/fb-group-relay/internal/clients/graph"
	"github.com/DIMO-Network/fb-group-relay/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	subscribeMode        = "subscribe"
	verifyMismatchMsg    = "Verification token mismatch"
	autoReplyMessageBody = "Auto-reply triggered by admin. "
)

// GroupPoster publishes a message into the configured group.
type GroupPoster interface {
	PostToGroup(ctx context.Context, message string) (graph.PostResult, error)
}

// WebhookController handles the Graph API webhook subscription and its notifications.
type WebhookController struct {
	poster      GroupPoster
	adminID     string
	verifyToken string
	autoReply   string
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(settings *config.Settings, poster GroupPoster) *WebhookController {
	return &WebhookController{
		poster:      poster,
		adminID:     settings.AdminID,
		verifyToken: settings.VerifyToken,
		autoReply:   autoReplyMessageBody + settings.CreditLine,
	}
}

// VerifyWebhook godoc
// @Summary      Webhook verification handshake
// @Description  Echoes hub.challenge when hub.mode is "subscribe" and hub.verify_token matches the configured token.
// @Tags         Webhook
// @Produce      plain
// @Param        hub.mode          query  string  true  "Subscription mode"
// @Param        hub.verify_token  query  string  true  "Verification token"
// @Param        hub.challenge     query  string  true  "Challenge to echo"
// @Success      200  {string}  string  "The challenge"
// @Failure      403  {string}  string  "Verification token mismatch"
// @Router       /webhook [get]
func (w *WebhookController) VerifyWebhook(c *fiber.Ctx) error {
	mode := queryParam(c, "hub.mode", "mode")
	token := queryParam(c, "hub.verify_token", "verify_token")
	challenge := queryParam(c, "hub.challenge", "challenge")

	if mode == subscribeMode && secretsEqual(token, w.verifyToken) {
		return c.Status(fiber.StatusOK).SendString(challenge)
	}
	zerolog.Ctx(c.UserContext()).Warn().Str("mode", mode).Msg("Webhook verification rejected")
	return c.Status(fiber.StatusForbidden).SendString(verifyMismatchMsg)
}

// ReceiveNotification godoc
// @Summary      Receive webhook notifications
// @Description  Scans entry[].changes[] for messages mentioning the admin id. When the admin mentions themself an auto-reply is posted to the group. Post failures are logged and do not change the response.
// @Tags         Webhook
// @Accept       json
// @Produce      json
// @Param        payload  body      NotificationPayload  true  "Graph API notification"
// @Success      200      {object}  StatusResponse  "Processed"
// @Failure      400      {object}  StatusResponse  "No payload"
// @Failure      500      {object}  StatusResponse  "Malformed notification envelope"
// @Router       /webhook [post]
func (w *WebhookController) ReceiveNotification(c *fiber.Ctx) error {
	logger := zerolog.Ctx(c.UserContext()).With().Str("deliveryId", uuid.NewString()).Logger()

	payload, ok := parseJSONBody(c)
	if !ok {
		logger.Info().Msg("Webhook payload received without a JSON body")
		return c.Status(fiber.StatusBadRequest).JSON(StatusResponse{Status: "no payload"})
	}
	logger.Debug().Str("payload", payload.Raw).Msg("Webhook payload received")

	changes, err := extractChanges(payload)
	if err != nil {
		logger.Error().Err(err).Msg("Error processing webhook payload")
		return c.Status(fiber.StatusInternalServerError).JSON(StatusResponse{Status: "error", Detail: err.Error()})
	}

	for _, change := range changes {
		if !change.Mentions(w.adminID) {
			continue
		}
		logger.Info().Str("senderId", change.SenderID).Msg("Detected mention of admin")
		if change.SenderID != w.adminID {
			logger.Info().Str("senderId", change.SenderID).Msg("Mention detected, but sender is not admin; no auto-action taken")
			continue
		}
		result, err := w.poster.PostToGroup(c.UserContext(), w.autoReply)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to post auto-reply")
			continue
		}
		logger.Info().Interface("result", result).Msg("Posted auto-reply")
	}

	return c.Status(fiber.StatusOK).JSON(StatusResponse{Status: "ok"})
}

func queryParam(c *fiber.Ctx, name, fallback string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return c.Query(fallback)
}

// secretsEqual compares in constant time. An unconfigured secret never matches.
func secretsEqual(given, configured string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(configured)) == 1
}
