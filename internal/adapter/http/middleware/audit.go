package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"fx-deals/internal/core/domain"
	"fx-deals/internal/core/ports"
	"fx-deals/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware for deal submissions. A stored deal
// and a rejected duplicate are both recorded; validation failures are not.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != http.MethodPost {
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath(), c.Writer.Status())
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.GetString(CtxDealID),
			IPAddress:    c.ClientIP(),
			RequestID:    c.GetString(response.RequestIDKey),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

func mapRouteToAction(route string, status int) (domain.AuditAction, string) {
	if route != "/deals" && route != "/api/v1/deals" {
		return "", ""
	}
	switch status {
	case http.StatusCreated:
		return domain.AuditActionCreateDeal, "deal"
	case http.StatusConflict:
		return domain.AuditActionRejectDeal, "deal"
	}
	return "", ""
}
