package handler

import (
	"encoding/json"
	"io"

	coreport "github.com/raghavmehta/expense-ledger/internal/domain/port/core"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/usecase"
	"github.com/raghavmehta/expense-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// StreamHandler serves the live ledger view over Server-Sent Events. Each
// event carries the full recomputed view, mirroring the recompute-on-change
// model of the non-streaming endpoint.
type StreamHandler struct {
	ledgerService usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewStreamHandler creates a new stream handler instance
func NewStreamHandler(ledgerService usecase.LedgerUseCase, logger coreport.Logger) *StreamHandler {
	return &StreamHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// Stream handles the GET /ledger/stream endpoint
func (h *StreamHandler) Stream(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	views, cancel, err := h.ledgerService.Watch(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	h.logger.Debug("Ledger stream opened", map[string]any{
		"user_id": sess.UserID,
	})

	c.Stream(func(w io.Writer) bool {
		view, ok := <-views
		if !ok {
			return false
		}

		payload, err := json.Marshal(view)
		if err != nil {
			h.logger.Error("Failed to encode ledger view for stream", map[string]any{
				"user_id": sess.UserID,
				"error":   err.Error(),
			})
			return false
		}

		c.SSEvent("ledger", string(payload))
		return true
	})

	h.logger.Debug("Ledger stream closed", map[string]any{
		"user_id": sess.UserID,
	})
}
