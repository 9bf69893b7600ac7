//go:build integration

package e2e

// e2e_test.go
// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// These tests:
//   - Full invoice lifecycle (login → create org → invoice → payments → status transitions)
//   - Overpayment rejection (payment beyond invoice amount → 409)
//   - Payment deletion recomputes invoice status
//   - Role deletion cascade (users deactivated and unassigned)
//   - Default permissions generated for a module

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/feliperufini/felskys-manager-api/internal/config"
	"github.com/feliperufini/felskys-manager-api/internal/infra"
	"github.com/feliperufini/felskys-manager-api/internal/model"
	"github.com/feliperufini/felskys-manager-api/internal/router"
	"github.com/feliperufini/felskys-manager-api/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
	engine *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	// Start Postgres container
	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("felskys_test"),
		tcPostgres.WithUsername("felskys"),
		tcPostgres.WithPassword("felskys"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Start Redis container
	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		WorkerPoolSize:     1,
		PDFStoragePath:     t.TempDir(),
	}

	// Connect DB (runs AutoMigrate) + Redis
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed admin user
	hash, err := bcrypt.GenerateFromPassword([]byte("felskys2026"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.User{
		Nickname:     "Admin E2E",
		Email:        "admin@e2e.test",
		PasswordHash: string(hash),
		IsActive:     true,
	}).Error)

	dispatcher := worker.NewDispatcher(rdb)
	r := router.New(cfg, db, rdb, dispatcher)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	// Login as admin
	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"email": "admin@e2e.test", "password": "felskys2026"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		Token string `json:"token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.Token)

	return &testEnv{
		server: srv,
		token:  loginBody.Token,
		engine: r,
	}
}

func createOrganization(t *testing.T, env *testEnv) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/organizations",
		jsonBody(t, map[string]any{
			"legal_name":    "Felskys Tecnologia LTDA",
			"business_name": "Felskys",
			"document":      "12.345.678/0001-90",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body struct {
		Organization struct {
			ID string `json:"id"`
		} `json:"organization"`
	}
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.Organization.ID)
	return body.Organization.ID
}

func getInvoice(t *testing.T, env *testEnv, id string) (status, totalPaid string) {
	t.Helper()
	resp := do(t, env.server, "GET", "/v1/invoices/"+id, nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Invoice struct {
			Status    string `json:"status"`
			TotalPaid string `json:"total_paid"`
		} `json:"invoice"`
	}
	decodeJSON(t, resp, &body)
	return body.Invoice.Status, body.Invoice.TotalPaid
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_InvoicePaymentLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	orgID := createOrganization(t, env)

	// 0. Nonexistent organization: the FK violation surfaces as a typed
	// integrity error, not an opaque 500
	badResp := do(t, env.server, "POST", "/v1/invoices",
		jsonBody(t, map[string]any{
			"amount":          50.00,
			"due_date":        time.Now().UTC().AddDate(0, 1, 0).Format(time.RFC3339),
			"organization_id": "00000000-0000-0000-0000-000000000001",
		}),
		env.token,
	)
	require.Equal(t, http.StatusBadRequest, badResp.StatusCode)
	badResp.Body.Close()

	// 1. Create invoice → PENDING
	invResp := do(t, env.server, "POST", "/v1/invoices",
		jsonBody(t, map[string]any{
			"amount":          100.00,
			"due_date":        time.Now().UTC().AddDate(0, 1, 0).Format(time.RFC3339),
			"organization_id": orgID,
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, invResp.StatusCode)
	var invBody struct {
		Invoice struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"invoice"`
	}
	decodeJSON(t, invResp, &invBody)
	assert.Equal(t, "PENDING", invBody.Invoice.Status)
	invoiceID := invBody.Invoice.ID

	paymentDate := time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)

	// 2. Partial payment → PARTIAL
	payResp := do(t, env.server, "POST", "/v1/payments",
		jsonBody(t, map[string]any{
			"amount":         60.00,
			"payment_date":   paymentDate,
			"payment_method": "PIX",
			"invoice_id":     invoiceID,
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, payResp.StatusCode)
	var payBody struct {
		Payment struct {
			ID string `json:"id"`
		} `json:"payment"`
	}
	decodeJSON(t, payResp, &payBody)

	status, totalPaid := getInvoice(t, env, invoiceID)
	assert.Equal(t, "PARTIAL", status)
	assert.Equal(t, "60", totalPaid)

	// 3. Settling payment → PAID
	payResp2 := do(t, env.server, "POST", "/v1/payments",
		jsonBody(t, map[string]any{
			"amount":         40.00,
			"payment_date":   paymentDate,
			"payment_method": "CASH",
			"invoice_id":     invoiceID,
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, payResp2.StatusCode)
	payResp2.Body.Close()

	status, _ = getInvoice(t, env, invoiceID)
	assert.Equal(t, "PAID", status)

	// 4. Overpayment rejected, invoice untouched
	overResp := do(t, env.server, "POST", "/v1/payments",
		jsonBody(t, map[string]any{
			"amount":         0.01,
			"payment_date":   paymentDate,
			"payment_method": "PIX",
			"invoice_id":     invoiceID,
		}),
		env.token,
	)
	require.Equal(t, http.StatusConflict, overResp.StatusCode)
	overResp.Body.Close()

	status, _ = getInvoice(t, env, invoiceID)
	assert.Equal(t, "PAID", status)

	// 5. Deleting the first payment recomputes status
	delResp := do(t, env.server, "DELETE", "/v1/payments/"+payBody.Payment.ID, nil, env.token)
	require.Equal(t, http.StatusOK, delResp.StatusCode)
	delResp.Body.Close()

	status, totalPaid = getInvoice(t, env, invoiceID)
	assert.Equal(t, "PARTIAL", status)
	assert.Equal(t, "40", totalPaid)

	// 6. Invoice with payments cannot be deleted
	delInvResp := do(t, env.server, "DELETE", "/v1/invoices/"+invoiceID, nil, env.token)
	require.Equal(t, http.StatusConflict, delInvResp.StatusCode)
	delInvResp.Body.Close()
}

func TestE2E_DefaultPermissions(t *testing.T) {
	env := setupTestEnv(t)

	modResp := do(t, env.server, "POST", "/v1/website-modules",
		jsonBody(t, map[string]any{"title": "Financeiro"}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, modResp.StatusCode)
	var modBody struct {
		WebsiteModule struct {
			ID   string `json:"id"`
			Slug string `json:"slug"`
		} `json:"website_module"`
	}
	decodeJSON(t, modResp, &modBody)
	assert.Equal(t, "financeiro", modBody.WebsiteModule.Slug)

	defResp := do(t, env.server, "POST", "/v1/website-modules/"+modBody.WebsiteModule.ID+"/default-permissions", nil, env.token)
	require.Equal(t, http.StatusCreated, defResp.StatusCode)
	var defBody struct {
		Permissions []struct {
			Title  string `json:"title"`
			Action string `json:"action"`
		} `json:"permissions"`
	}
	decodeJSON(t, defResp, &defBody)
	require.Len(t, defBody.Permissions, 5)

	actions := make(map[string]string, len(defBody.Permissions))
	for _, p := range defBody.Permissions {
		actions[p.Title] = p.Action
	}
	assert.Equal(t, "listar_financeiro", actions["Listar Financeiro"])
	assert.Equal(t, "cadastrar_financeiro", actions["Cadastrar Financeiro"])
}

func TestE2E_RoleDeletionCascade(t *testing.T) {
	env := setupTestEnv(t)
	orgID := createOrganization(t, env)

	// Module + default permissions to bind the role to
	modResp := do(t, env.server, "POST", "/v1/website-modules",
		jsonBody(t, map[string]any{"title": "Conteúdo"}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, modResp.StatusCode)
	var modBody struct {
		WebsiteModule struct {
			ID string `json:"id"`
		} `json:"website_module"`
	}
	decodeJSON(t, modResp, &modBody)

	defResp := do(t, env.server, "POST", "/v1/website-modules/"+modBody.WebsiteModule.ID+"/default-permissions", nil, env.token)
	require.Equal(t, http.StatusCreated, defResp.StatusCode)
	var defBody struct {
		Permissions []struct {
			ID string `json:"id"`
		} `json:"permissions"`
	}
	decodeJSON(t, defResp, &defBody)
	require.Len(t, defBody.Permissions, 5)

	roleResp := do(t, env.server, "POST", "/v1/roles",
		jsonBody(t, map[string]any{
			"name":            "Editor",
			"description":     "Edita conteúdo",
			"organization_id": orgID,
			"permission_ids":  []string{defBody.Permissions[0].ID, defBody.Permissions[1].ID},
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, roleResp.StatusCode)
	var roleBody struct {
		Role struct {
			ID string `json:"id"`
		} `json:"role"`
	}
	decodeJSON(t, roleResp, &roleBody)

	userResp := do(t, env.server, "POST", "/v1/users",
		jsonBody(t, map[string]any{
			"nickname": "editor01",
			"email":    "editor@e2e.test",
			"password": "segredo123",
			"role_id":  roleBody.Role.ID,
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, userResp.StatusCode)
	var userBody struct {
		User struct {
			ID       string `json:"id"`
			IsActive bool   `json:"is_active"`
		} `json:"user"`
	}
	decodeJSON(t, userResp, &userBody)
	require.True(t, userBody.User.IsActive)

	// Delete role: never blocks, deactivates and unassigns the user
	delResp := do(t, env.server, "DELETE", "/v1/roles/"+roleBody.Role.ID, nil, env.token)
	require.Equal(t, http.StatusOK, delResp.StatusCode)
	delResp.Body.Close()

	getUserResp := do(t, env.server, "GET", "/v1/users/"+userBody.User.ID, nil, env.token)
	require.Equal(t, http.StatusOK, getUserResp.StatusCode)
	var getUserBody struct {
		User struct {
			IsActive bool    `json:"is_active"`
			RoleID   *string `json:"role_id"`
		} `json:"user"`
	}
	decodeJSON(t, getUserResp, &getUserBody)
	assert.False(t, getUserBody.User.IsActive)
	assert.Nil(t, getUserBody.User.RoleID)

	getRoleResp := do(t, env.server, "GET", "/v1/roles/"+roleBody.Role.ID, nil, env.token)
	require.Equal(t, http.StatusNotFound, getRoleResp.StatusCode)
	getRoleResp.Body.Close()
}

func TestE2E_RolePermissionDiff(t *testing.T) {
	env := setupTestEnv(t)
	orgID := createOrganization(t, env)

	modResp := do(t, env.server, "POST", "/v1/website-modules",
		jsonBody(t, map[string]any{"title": "Vendas"}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, modResp.StatusCode)
	var modBody struct {
		WebsiteModule struct {
			ID string `json:"id"`
		} `json:"website_module"`
	}
	decodeJSON(t, modResp, &modBody)

	defResp := do(t, env.server, "POST", "/v1/website-modules/"+modBody.WebsiteModule.ID+"/default-permissions", nil, env.token)
	require.Equal(t, http.StatusCreated, defResp.StatusCode)
	var defBody struct {
		Permissions []struct {
			ID string `json:"id"`
		} `json:"permissions"`
	}
	decodeJSON(t, defResp, &defBody)
	require.Len(t, defBody.Permissions, 5)

	roleResp := do(t, env.server, "POST", "/v1/roles",
		jsonBody(t, map[string]any{
			"name":            "Vendedor",
			"organization_id": orgID,
			"permission_ids":  []string{defBody.Permissions[0].ID, defBody.Permissions[1].ID},
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, roleResp.StatusCode)
	var roleBody struct {
		Role struct {
			ID string `json:"id"`
		} `json:"role"`
	}
	decodeJSON(t, roleResp, &roleBody)

	// Replace the set: keep [1], drop [0], add [2] and [3]
	updResp := do(t, env.server, "PUT", "/v1/roles/"+roleBody.Role.ID,
		jsonBody(t, map[string]any{
			"name":           "Vendedor",
			"permission_ids": []string{defBody.Permissions[1].ID, defBody.Permissions[2].ID, defBody.Permissions[3].ID},
		}),
		env.token,
	)
	require.Equal(t, http.StatusOK, updResp.StatusCode)
	updResp.Body.Close()

	getResp := do(t, env.server, "GET", "/v1/roles/"+roleBody.Role.ID, nil, env.token)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var getBody struct {
		Role struct {
			Permissions []struct {
				ID string `json:"id"`
			} `json:"permissions"`
		} `json:"role"`
	}
	decodeJSON(t, getResp, &getBody)

	got := make([]string, 0, len(getBody.Role.Permissions))
	for _, p := range getBody.Role.Permissions {
		got = append(got, p.ID)
	}
	assert.ElementsMatch(t, []string{
		defBody.Permissions[1].ID,
		defBody.Permissions[2].ID,
		defBody.Permissions[3].ID,
	}, got)
}
