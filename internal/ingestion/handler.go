package ingestion

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	v1 "github.com/herd-lab/follow-the-herd/internal/api/v1"
	"github.com/herd-lab/follow-the-herd/internal/catalog"
	httperr "github.com/herd-lab/follow-the-herd/internal/core/errors"
	"github.com/herd-lab/follow-the-herd/internal/core/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerShopDomain = "X-Shopify-Shop-Domain"
	headerWebhookID  = "X-Shopify-Webhook-Id"
)

// OrdersCreateHandler handles orders/create webhook deliveries.
//
// The webhook transport interprets any non-2xx response as "redeliver",
// which would duplicate ledger facts, so the only non-acknowledging paths
// are the ones where no stage has run yet: a missing shop/session (401) and
// a session store failure (500). Everything past the auth gate is always
// acknowledged with 200, partial stage failures included.
func (s *Service) OrdersCreateHandler(c *gin.Context) {
	shop := c.GetHeader(headerShopDomain)
	deliveryID := c.GetHeader(headerWebhookID)
	if deliveryID == "" {
		deliveryID = uuid.NewString()
	}

	if shop == "" {
		slog.Warn("Webhook delivery without shop domain header", "delivery_id", deliveryID)
		c.JSON(http.StatusUnauthorized, httperr.ErrorResponse{
			ErrorType: httperr.HttpUnauthorizedError,
			Message:   "missing shop domain header",
		})
		return
	}

	slog.Info("Received orders/create webhook",
		"shop", shop,
		"delivery_id", deliveryID)

	auth, failed := s.resolveAuth(c, shop, deliveryID)
	if failed {
		return
	}

	order := s.decodeOrder(c, shop, deliveryID)

	outcome := s.HandleOrderEvent(c.Request.Context(), shop, deliveryID, auth, order)
	if outcome.Status == OutcomeRejected {
		c.JSON(http.StatusUnauthorized, httperr.ErrorResponse{
			ErrorType: httperr.HttpUnauthorizedError,
			Message:   ErrAuthorizationMissing.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": string(outcome.Status)})
}

// resolveAuth looks up the shop's session and builds an auth context.
// A missing session yields a nil context (the orchestrator's gate rejects
// it); a store failure writes a 500. Nothing has been written yet at this
// point, so a redelivery is safe.
func (s *Service) resolveAuth(c *gin.Context, shop, deliveryID string) (*catalog.AuthContext, bool) {
	sess, err := s.sessions.Get(c.Request.Context(), shop)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, false
		}

		slog.Error("Failed to load session",
			"shop", shop,
			"delivery_id", deliveryID,
			"error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "failed to load shop session",
		})
		return nil, true
	}

	return catalog.AuthFromSession(sess), false
}

// decodeOrder reads and decodes the webhook body. Decode failures return nil:
// the pipeline treats that as a malformed event, appends nothing, and still
// recomputes from existing ledger state.
func (s *Service) decodeOrder(c *gin.Context, shop, deliveryID string) *v1.OrderEvent {
	// Bound the body read; an oversized payload is handled as malformed
	// rather than refused, because refusing would trigger redelivery.
	limitedBody := io.LimitReader(c.Request.Body, int64(s.maxBodySizeBytes)+1)
	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Warn("Failed to read webhook body",
			"shop", shop,
			"delivery_id", deliveryID,
			"error", err)
		return nil
	}
	if len(bodyBytes) > s.maxBodySizeBytes {
		slog.Warn("Webhook body exceeds maximum size",
			"shop", shop,
			"delivery_id", deliveryID,
			"size", len(bodyBytes),
			"max", s.maxBodySizeBytes)
		return nil
	}

	var order v1.OrderEvent
	if err := json.Unmarshal(bodyBytes, &order); err != nil {
		slog.Warn("Invalid webhook JSON body",
			"shop", shop,
			"delivery_id", deliveryID,
			"payload_size", len(bodyBytes),
			"error", err)
		return nil
	}

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	return &order
}
