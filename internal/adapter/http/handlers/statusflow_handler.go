package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	response "quoteflow/internal/adapter/http/dto/response"
	"quoteflow/internal/domain/entities"
	"quoteflow/internal/domain/statusflow"
	"quoteflow/internal/usecase"
	"quoteflow/pkg"

	"github.com/gin-gonic/gin"
)

// StatusFlowHandler exposes the status-flow query endpoint and the admin
// portal-expiry sweep.

type StatusFlowHandler struct {
	sweep usecase.IPortalSweepUseCase
}

func NewStatusFlowHandler(sweep usecase.IPortalSweepUseCase) *StatusFlowHandler {
	return &StatusFlowHandler{sweep: sweep}
}

// GetAllowedStatuses answers "what can this entity do next" for UI gating. It
// reads the pure transition tables; no storage is touched.
func (h *StatusFlowHandler) GetAllowedStatuses(c *gin.Context) {
	entityType := strings.ToLower(strings.TrimSpace(c.Param("entity_type")))
	status := strings.ToLower(strings.TrimSpace(c.Param("status")))

	if entityType != entities.EntityTypeQuote && entityType != entities.EntityTypeJob {
		appErr := pkg.NewDomainErrorSimple("INVALID_ENTITY_TYPE", "Entity type must be quote or job", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	admin, _ := strconv.ParseBool(c.Query("admin"))
	auth := statusflow.User(actorFrom(c))
	if admin {
		auth = statusflow.Admin(actorFrom(c))
	}

	allowed := statusflow.AllowedNextStatuses(entityType, status, auth)
	if allowed == nil {
		allowed = []string{}
	}
	c.JSON(http.StatusOK, response.AllowedStatusesResponse{
		EntityType: entityType,
		Status:     status,
		Admin:      admin,
		Allowed:    allowed,
	})
}

// RunPortalSweep triggers the portal-expiry sweep on demand. The scheduled
// path is cmd/sweeper; this endpoint backs ad-hoc admin runs.
func (h *StatusFlowHandler) RunPortalSweep(c *gin.Context) {
	if !isAdminCaller(c) {
		appErr := pkg.NewDomainErrorSimple("ADMIN_REQUIRED", "Running the portal sweep requires admin authority", http.StatusForbidden)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	dryRun, _ := strconv.ParseBool(c.Query("dry_run"))
	log.Printf("[sweep][handler] sweep requested dry_run=%v", dryRun)

	summary, err := h.sweep.SweepExpiredPortals(c.Request.Context(), usecase.SweepOptions{DryRun: dryRun})
	if err != nil {
		log.Printf("[sweep][handler] sweep failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summary)
}
