package handlers

import (
	"strings"

	"quoteflow/internal/domain/statusflow"

	"github.com/gin-gonic/gin"
)

// Identity headers. Authentication happens upstream at the gateway; these
// headers carry the already-verified identity into the engine.
const (
	HeaderTenantID  = "X-Tenant-Id"
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

func tenantFrom(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(HeaderTenantID))
}

func actorFrom(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(HeaderActorID))
}

func isAdminCaller(c *gin.Context) bool {
	return strings.EqualFold(strings.TrimSpace(c.GetHeader(HeaderActorRole)), "admin")
}

// authorityFrom maps the identity headers onto the engine's authority model.
// No actor header means the caller is an automated surface (e.g. the customer
// portal reporting a view).
func authorityFrom(c *gin.Context) statusflow.Authority {
	actor := actorFrom(c)
	switch {
	case isAdminCaller(c):
		return statusflow.Admin(actor)
	case actor != "":
		return statusflow.User(actor)
	default:
		return statusflow.Automated()
	}
}
