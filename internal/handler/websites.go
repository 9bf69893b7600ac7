package handler

import (
	"net/http"

	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/service"

	"github.com/gin-gonic/gin"
)

type WebsitesHandler struct{ svc service.WebsiteService }

func NewWebsitesHandler(svc service.WebsiteService) *WebsitesHandler {
	return &WebsitesHandler{svc: svc}
}

// Create godoc
// @Summary      Cadastrar website
// @Description  Cria um website e conecta o conjunto inicial de módulos.
// @Tags         websites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateWebsiteRequest true "Dados do website"
// @Success      201  {object} map[string]interface{}
// @Failure      422  {object} apierror.FieldErrors
// @Router       /v1/websites [post]
func (h *WebsitesHandler) Create(c *gin.Context) {
	var req dto.CreateWebsiteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Website cadastrado com sucesso!",
		"website": resp,
	})
}

// List godoc
// @Summary      Listar websites
// @Tags         websites
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Router       /v1/websites [get]
func (h *WebsitesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"websites": resp})
}

// Get godoc
// @Summary      Buscar website por ID
// @Tags         websites
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do website"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/websites/{id} [get]
func (h *WebsitesHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"website": resp})
}

// Update godoc
// @Summary      Atualizar website
// @Description  Atualiza os dados e, quando module_ids é enviado, substitui o conjunto de módulos via diff.
// @Tags         websites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID do website"
// @Param        body body dto.UpdateWebsiteRequest true "Dados do website"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/websites/{id} [put]
func (h *WebsitesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateWebsiteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Website atualizado com sucesso!"})
}

// Delete godoc
// @Summary      Deletar website
// @Tags         websites
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do website"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/websites/{id} [delete]
func (h *WebsitesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Website deletado com sucesso!"})
}
