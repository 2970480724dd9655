package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizcore/erp-api/internal/core/ports"
)

// AuditHandler serves the read side of the audit trail.
type AuditHandler struct {
	recorder ports.AuditRecorder
}

func NewAuditHandler(recorder ports.AuditRecorder) *AuditHandler {
	return &AuditHandler{recorder: recorder}
}

// ProductHistory handles GET /api/audit/products/:id — the change
// history for one product, newest first. Snapshots are whole entities,
// so a client can diff consecutive records field by field.
//
// @Summary      Get a product's audit history
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /api/audit/products/{id} [get]
func (h *AuditHandler) ProductHistory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	records, err := h.recorder.History(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, records)
}
