// Package handler contains the audit worker's push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"careadmin/config"
	deliverycontext "careadmin/internal/delivery/context"
	"careadmin/internal/domain/constants"
	domainerrors "careadmin/internal/domain/errors"
	"careadmin/internal/domain/service"
	"careadmin/internal/infra/pubsub"
	"careadmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushVerifier authenticates a push request before its body is read.
type PushVerifier func(req *http.Request) error

// PushHandler stores audit events delivered by push subscriptions.
type PushHandler struct {
	verify  PushVerifier
	logger  *slog.Logger
	auditUC usecase.AuditUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	AuditUC usecase.AuditUsecase
}

// NewPushHandler creates a new push handler. Google push requests are
// authenticated outside the develop environment.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var verify PushVerifier
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		verify = verifyPubSubToken
	}

	return newPushHandler(params.AuditUC, params.Logger, verify)
}

func newPushHandler(auditUC usecase.AuditUsecase, logger *slog.Logger, verify PushVerifier) *PushHandler {
	return &PushHandler{
		verify:  verify,
		logger:  logger,
		auditUC: auditUC,
	}
}

// HandlePush answers 2xx for anything that must not be redelivered
// (stored, or permanently malformed) and 503 when a retry may succeed.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PubSubPushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.AuditEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse audit event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.auditUC.Store(ctx, &event); err != nil {
		if domainerrors.IsValidation(err) {
			reqLogger.Warn("[Worker] Dropping invalid audit event",
				slog.String("event_id", event.EventID),
				slog.Any("error", err),
			)

			return c.NoContent(http.StatusOK)
		}

		reqLogger.Error("[Worker] Failed to store audit event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Debug("[Worker] Audit event stored",
		slog.String("event_id", event.EventID),
		slog.String("entity_type", event.EntityType),
		slog.String("action", event.Action),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the event payload,
// then the X-Request-Id the middleware stored.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PubSubPushMessage, event *service.AuditEvent) string {
	if requestID := pushMsg.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
