package rankings

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/herd-lab/follow-the-herd/internal/catalog"
	httperr "github.com/herd-lab/follow-the-herd/internal/core/errors"
	"github.com/herd-lab/follow-the-herd/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the rankings query routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/shops/:shop/rankings", s.RankingsHandler)
}

// RankingsHandler serves GET /v1/shops/:shop/rankings?limit=N.
func (s *Service) RankingsHandler(c *gin.Context) {
	shop := c.Param("shop")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidQueryError,
				Message:   "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	sess, err := s.sessions.Get(c.Request.Context(), shop)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, httperr.ErrorResponse{
				ErrorType: httperr.HttpUnauthorizedError,
				Message:   "no session for shop",
			})
			return
		}

		slog.Error("Failed to load session for rankings query", "shop", shop, "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "failed to load shop session",
		})
		return
	}

	result, err := s.TopProducts(c.Request.Context(), catalog.AuthFromSession(sess), shop, limit)
	if err != nil {
		slog.Error("Rankings query failed", "shop", shop, "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "failed to compute rankings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shop":     shop,
		"rankings": result,
	})
}
