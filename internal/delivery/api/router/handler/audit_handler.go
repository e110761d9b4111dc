package handler

import (
	"careadmin/internal/delivery/api/response"
	"careadmin/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuditHandler serves /audit-logs.
type AuditHandler struct {
	auditUC usecase.AuditUsecase
}

// NewAuditHandler is the constructor for AuditHandler
func NewAuditHandler(auditUC usecase.AuditUsecase) *AuditHandler {
	return &AuditHandler{auditUC: auditUC}
}

// List handles GET /audit-logs?entity_type=&entity_id=&limit=.
func (h *AuditHandler) List(c echo.Context) error {
	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		return err
	}

	logs, err := h.auditUC.ListByEntity(c.Request().Context(), c.QueryParam("entity_type"), c.QueryParam("entity_id"), limit)
	if err != nil {
		return err
	}

	return response.OK(c, logs)
}
