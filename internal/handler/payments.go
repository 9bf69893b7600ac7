package handler

import (
	"net/http"

	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentsHandler struct{ svc service.PaymentService }

func NewPaymentsHandler(svc service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{svc: svc}
}

// Record godoc
// @Summary      Registrar pagamento
// @Description  Registra um pagamento e rederiva o status da fatura na mesma transação. Pagamento acima do saldo é rejeitado com 409.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RecordPaymentRequest true "Dados do pagamento"
// @Success      201  {object} map[string]interface{}
// @Failure      409  {object} apierror.APIError
// @Failure      422  {object} apierror.FieldErrors
// @Router       /v1/payments [post]
func (h *PaymentsHandler) Record(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Record(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Pagamento registrado com sucesso!",
		"payment": resp,
	})
}

// List godoc
// @Summary      Listar pagamentos
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Router       /v1/payments [get]
func (h *PaymentsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": resp})
}

// Get godoc
// @Summary      Buscar pagamento por ID
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do pagamento"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/payments/{id} [get]
func (h *PaymentsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": resp})
}

// Update godoc
// @Summary      Atualizar pagamento
// @Description  Atualiza o pagamento e rederiva o status da fatura na mesma transação. A fatura é resolvida pelo registro armazenado.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID do pagamento"
// @Param        body body dto.UpdatePaymentRequest true "Dados do pagamento"
// @Success      200 {object} map[string]interface{}
// @Failure      409 {object} apierror.APIError
// @Router       /v1/payments/{id} [put]
func (h *PaymentsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdatePaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pagamento atualizado com sucesso!"})
}

// Delete godoc
// @Summary      Deletar pagamento
// @Description  Remove o pagamento e rederiva o status da fatura pelos pagamentos restantes.
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do pagamento"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/payments/{id} [delete]
func (h *PaymentsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pagamento deletado com sucesso!"})
}
