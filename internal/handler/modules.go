package handler

import (
	"net/http"

	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/service"

	"github.com/gin-gonic/gin"
)

type ModulesHandler struct {
	svc     service.WebsiteModuleService
	permSvc service.PermissionService
}

func NewModulesHandler(svc service.WebsiteModuleService, permSvc service.PermissionService) *ModulesHandler {
	return &ModulesHandler{svc: svc, permSvc: permSvc}
}

// Create godoc
// @Summary      Cadastrar módulo
// @Description  Cria um módulo de website com slug gerado a partir do título.
// @Tags         website-modules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateWebsiteModuleRequest true "Dados do módulo"
// @Success      201  {object} map[string]interface{}
// @Failure      422  {object} apierror.FieldErrors
// @Router       /v1/website-modules [post]
func (h *ModulesHandler) Create(c *gin.Context) {
	var req dto.CreateWebsiteModuleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":        "Módulo cadastrado com sucesso!",
		"website_module": resp,
	})
}

// List godoc
// @Summary      Listar módulos
// @Tags         website-modules
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Router       /v1/website-modules [get]
func (h *ModulesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"website_modules": resp})
}

// Get godoc
// @Summary      Buscar módulo por ID
// @Tags         website-modules
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do módulo"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/website-modules/{id} [get]
func (h *ModulesHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"website_module": resp})
}

// Update godoc
// @Summary      Atualizar módulo
// @Description  Atualiza o título e regenera o slug a partir de slug (quando enviado) ou do título.
// @Tags         website-modules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID do módulo"
// @Param        body body dto.UpdateWebsiteModuleRequest true "Dados do módulo"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/website-modules/{id} [put]
func (h *ModulesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateWebsiteModuleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Módulo atualizado com sucesso!"})
}

// Delete godoc
// @Summary      Deletar módulo
// @Tags         website-modules
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do módulo"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/website-modules/{id} [delete]
func (h *ModulesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Módulo deletado com sucesso!"})
}

// CreateDefaultPermissions godoc
// @Summary      Gerar permissões padrão do módulo
// @Description  Cria o conjunto padrão de permissões CRUD (Listar, Pesquisar, Cadastrar, Editar, Deletar) para o módulo.
// @Tags         website-modules
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do módulo"
// @Success      201 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/website-modules/{id}/default-permissions [post]
func (h *ModulesHandler) CreateDefaultPermissions(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	perms, err := h.permSvc.CreateDefaults(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Permissões padrão cadastradas com sucesso!",
		"permissions": perms,
	})
}
