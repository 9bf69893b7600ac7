package handler

import (
	"net/http"

	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/service"

	"github.com/gin-gonic/gin"
)

type InvoicesHandler struct{ svc service.InvoiceService }

func NewInvoicesHandler(svc service.InvoiceService) *InvoicesHandler {
	return &InvoicesHandler{svc: svc}
}

// Create godoc
// @Summary      Cadastrar fatura
// @Description  Cria uma fatura com status PENDING. O status nunca é informado pelo cliente.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateInvoiceRequest true "Dados da fatura"
// @Success      201  {object} map[string]interface{}
// @Failure      422  {object} apierror.FieldErrors
// @Router       /v1/invoices [post]
func (h *InvoicesHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Fatura cadastrada com sucesso!",
		"invoice": resp,
	})
}

// List godoc
// @Summary      Listar faturas
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Router       /v1/invoices [get]
func (h *InvoicesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": resp})
}

// Get godoc
// @Summary      Buscar fatura por ID
// @Description  Retorna a fatura com seus pagamentos e o total pago.
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da fatura"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/invoices/{id} [get]
func (h *InvoicesHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": resp})
}

// Update godoc
// @Summary      Atualizar fatura
// @Description  Atualiza valor e vencimento, rederivando o status pelos pagamentos já registrados.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID da fatura"
// @Param        body body dto.UpdateInvoiceRequest true "Dados da fatura"
// @Success      200 {object} map[string]interface{}
// @Failure      409 {object} apierror.APIError
// @Router       /v1/invoices/{id} [put]
func (h *InvoicesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateInvoiceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fatura atualizada com sucesso!"})
}

// Delete godoc
// @Summary      Deletar fatura
// @Description  Bloqueada com 409 enquanto a fatura possuir pagamentos registrados.
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da fatura"
// @Success      200 {object} map[string]interface{}
// @Failure      409 {object} apierror.APIError
// @Router       /v1/invoices/{id} [delete]
func (h *InvoicesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fatura deletada com sucesso!"})
}

// StatementPDF godoc
// @Summary      Baixar extrato da fatura em PDF
// @Tags         invoices
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "UUID da fatura"
// @Success      200 {file} file
// @Failure      404 {object} apierror.APIError
// @Router       /v1/invoices/{id}/pdf [get]
func (h *InvoicesHandler) StatementPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	path, err := h.svc.StatementPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, "fatura_"+id.String()+".pdf")
}
