package handler

import (
	"net/http"

	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/service"

	"github.com/gin-gonic/gin"
)

type RolesHandler struct{ svc service.RoleService }

func NewRolesHandler(svc service.RoleService) *RolesHandler { return &RolesHandler{svc: svc} }

// Create godoc
// @Summary      Cadastrar função
// @Description  Cria uma função e conecta o conjunto inicial de permissões.
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateRoleRequest true "Dados da função"
// @Success      201  {object} map[string]interface{}
// @Failure      422  {object} apierror.FieldErrors
// @Router       /v1/roles [post]
func (h *RolesHandler) Create(c *gin.Context) {
	var req dto.CreateRoleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Função cadastrada com sucesso!",
		"role":    resp,
	})
}

// List godoc
// @Summary      Listar funções
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Router       /v1/roles [get]
func (h *RolesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": resp})
}

// Get godoc
// @Summary      Buscar função por ID
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da função"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/roles/{id} [get]
func (h *RolesHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": resp})
}

// Update godoc
// @Summary      Atualizar função
// @Description  Atualiza os dados e, quando permission_ids é enviado, substitui o conjunto de permissões via diff.
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID da função"
// @Param        body body dto.UpdateRoleRequest true "Dados da função"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/roles/{id} [put]
func (h *RolesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateRoleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Função atualizada com sucesso!"})
}

// Delete godoc
// @Summary      Deletar função
// @Description  Desativa e desvincula os usuários da função antes de deletá-la, em uma única transação.
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da função"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/roles/{id} [delete]
func (h *RolesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Função deletada com sucesso!"})
}
