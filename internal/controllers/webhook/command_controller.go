package webhook

import (
	"strings"

	"github.com/DIMO-Network/fb-group-relay/internal/config"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const (
	commandPost = "post"
	commandPing = "ping"
)

// CommandController exposes the operator command channel.
type CommandController struct {
	poster     GroupPoster
	adminID    string
	secret     string
	creditLine string
}

// NewCommandController creates a new CommandController.
func NewCommandController(settings *config.Settings, poster GroupPoster) *CommandController {
	return &CommandController{
		poster:     poster,
		adminID:    settings.AdminID,
		secret:     settings.CommandSecret,
		creditLine: settings.CreditLine,
	}
}

// HandleCommand godoc
// @Summary      Run an operator command
// @Description  Authorized by the command secret and the admin id, checked in that order. "post" publishes args to the group, "ping" returns the credit line.
// @Tags         Command
// @Accept       json
// @Produce      json
// @Param        request  body      CommandRequest  true  "Command"
// @Success      200      {object}  PostedResponse  "Posted (post) or PongResponse (ping)"
// @Failure      400      {object}  ErrorResponse   "Invalid json, no message provided or unknown command"
// @Failure      403      {object}  ErrorResponse   "Invalid secret or unauthorized admin id"
// @Failure      500      {object}  ErrorResponse   "Post failed"
// @Router       /command [post]
func (cc *CommandController) HandleCommand(c *fiber.Ctx) error {
	payload, ok := parseJSONBody(c)
	if !ok || !payload.IsObject() {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid json"})
	}
	req := parseCommandRequest(payload)

	if !secretsEqual(req.Secret, cc.secret) {
		return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{Error: "invalid secret"})
	}
	if cc.adminID == "" || req.AdminID != cc.adminID {
		return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{Error: "unauthorized admin id"})
	}

	switch strings.ToLower(strings.TrimSpace(req.Command)) {
	case commandPost:
		if req.Args == "" {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "no message provided"})
		}
		result, err := cc.poster.PostToGroup(c.UserContext(), req.Args)
		if err != nil {
			zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("Failed to post message")
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "post_failed", Detail: errorDetail(err)})
		}
		return c.Status(fiber.StatusOK).JSON(PostedResponse{Status: "posted", Result: result})
	case commandPing:
		return c.Status(fiber.StatusOK).JSON(PongResponse{Status: "pong", Credit: cc.creditLine})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "unknown_command"})
	}
}

// errorDetail unwraps a rich error so the caller sees the underlying cause.
func errorDetail(err error) string {
	if richErr, ok := richerrors.AsRichError(err); ok && richErr.Err != nil {
		return richErr.Err.Error()
	}
	return err.Error()
}
