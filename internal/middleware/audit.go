package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/feliperufini/felskys-manager-api/internal/model"
	"github.com/feliperufini/felskys-manager-api/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// moduleNames maps route resources to the display name recorded in the audit
// trail.
var moduleNames = map[string]string{
	"organizations":   "Organização",
	"websites":        "Website",
	"website-modules": "Módulo",
	"permissions":     "Permissão",
	"roles":           "Função",
	"users":           "Usuário",
	"invoices":        "Fatura",
	"payments":        "Pagamento",
}

// methodVerbs describes the mutation for the audit message.
var methodVerbs = map[string]string{
	"POST":   "cadastrado",
	"PUT":    "atualizado",
	"PATCH":  "atualizado",
	"DELETE": "deletado",
}

// ActivityLogger records one audit row per mutating request. Writes are best
// effort on a detached context so a slow or failing insert never delays the
// response.
func ActivityLogger(repo repository.ActivityLogRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		verb, mutating := methodVerbs[c.Request.Method]
		if !mutating {
			return
		}

		resource := resourceFromPath(c.Request.URL.Path)
		moduleName, known := moduleNames[resource]
		if !known {
			return
		}

		createdBy := "sistema"
		if claims := GetClaims(c); claims != nil {
			createdBy = claims.Email
		}

		status := c.Writer.Status()
		level := "info"
		if status >= 400 {
			level = "error"
		}

		entry := &model.ActivityLog{
			Method:     c.Request.Method,
			Model:      moduleName,
			RegisterID: c.Param("id"),
			APIRoute:   c.Request.URL.Path,
			Message:    fmt.Sprintf("%s %s.", moduleName, verb),
			Level:      level,
			StatusCode: status,
			CreatedBy:  createdBy,
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := repo.Create(ctx, entry); err != nil {
				log.Warn().Err(err).Str("route", entry.APIRoute).Msg("failed to write activity log")
			}
		}()
	}
}

// resourceFromPath extracts the resource segment from a versioned route, e.g.
// "/v1/invoices/123" -> "invoices".
func resourceFromPath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
