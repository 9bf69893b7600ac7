package handler

import (
	"net/http"

	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/service"

	"github.com/gin-gonic/gin"
)

type PermissionsHandler struct{ svc service.PermissionService }

func NewPermissionsHandler(svc service.PermissionService) *PermissionsHandler {
	return &PermissionsHandler{svc: svc}
}

// Create godoc
// @Summary      Cadastrar permissão
// @Description  Cria uma permissão com action gerada a partir do título.
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreatePermissionRequest true "Dados da permissão"
// @Success      201  {object} map[string]interface{}
// @Failure      422  {object} apierror.FieldErrors
// @Router       /v1/permissions [post]
func (h *PermissionsHandler) Create(c *gin.Context) {
	var req dto.CreatePermissionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Permissão cadastrada com sucesso!",
		"permission": resp,
	})
}

// List godoc
// @Summary      Listar permissões
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Router       /v1/permissions [get]
func (h *PermissionsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"permissions": resp})
}

// Get godoc
// @Summary      Buscar permissão por ID
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da permissão"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/permissions/{id} [get]
func (h *PermissionsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"permission": resp})
}

// Update godoc
// @Summary      Atualizar permissão
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID da permissão"
// @Param        body body dto.UpdatePermissionRequest true "Dados da permissão"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/permissions/{id} [put]
func (h *PermissionsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdatePermissionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Permissão atualizada com sucesso!"})
}

// Delete godoc
// @Summary      Deletar permissão
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da permissão"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/permissions/{id} [delete]
func (h *PermissionsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Permissão deletada com sucesso!"})
}
