package handler

import (
	"net/http"

	"dispatch-board/internal/features/dashboard/ports"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles HTTP requests for the dashboard.
type DashboardHandler struct {
	service ports.SnapshotService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service ports.SnapshotService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// GetSnapshot handles GET /dashboard/snapshot.
// The service never fails; degraded sub-aggregations show up as zero
// values inside the snapshot, so this endpoint always returns 200.
// @Summary Get the dashboard snapshot
// @Description Assembles (or serves from cache) the back-office dashboard snapshot.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Router /dashboard/snapshot [get]
func (h *DashboardHandler) GetSnapshot(c *fiber.Ctx) error {
	snapshot := h.service.GetSnapshot(c.Context())
	return c.Status(http.StatusOK).JSON(snapshot)
}
