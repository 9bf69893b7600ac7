package handler

import (
	"net/http"

	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/service"

	"github.com/gin-gonic/gin"
)

type OrganizationsHandler struct{ svc service.OrganizationService }

func NewOrganizationsHandler(svc service.OrganizationService) *OrganizationsHandler {
	return &OrganizationsHandler{svc: svc}
}

// Create godoc
// @Summary      Cadastrar organização
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateOrganizationRequest true "Dados da organização"
// @Success      201  {object} map[string]interface{}
// @Failure      422  {object} apierror.FieldErrors
// @Router       /v1/organizations [post]
func (h *OrganizationsHandler) Create(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":      "Organização cadastrada com sucesso!",
		"organization": resp,
	})
}

// List godoc
// @Summary      Listar organizações
// @Tags         organizations
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Router       /v1/organizations [get]
func (h *OrganizationsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"organizations": resp})
}

// Get godoc
// @Summary      Buscar organização por ID
// @Tags         organizations
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da organização"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/organizations/{id} [get]
func (h *OrganizationsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"organization": resp})
}

// Update godoc
// @Summary      Atualizar organização
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID da organização"
// @Param        body body dto.UpdateOrganizationRequest true "Dados da organização"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/organizations/{id} [put]
func (h *OrganizationsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateOrganizationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Organização atualizada com sucesso!"})
}

// Delete godoc
// @Summary      Deletar organização
// @Tags         organizations
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da organização"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} apierror.APIError
// @Router       /v1/organizations/{id} [delete]
func (h *OrganizationsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Organização deletada com sucesso!"})
}
