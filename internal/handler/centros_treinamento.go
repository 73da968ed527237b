package handler

import (
	"net/http"

	"workoutapi/internal/dto"
	"workoutapi/internal/service"

	"github.com/gin-gonic/gin"
)

type CentrosTreinamentoHandler struct{ svc service.CentroTreinamentoService }

func NewCentrosTreinamentoHandler(svc service.CentroTreinamentoService) *CentrosTreinamentoHandler {
	return &CentrosTreinamentoHandler{svc: svc}
}

// Criar godoc
// @Summary Cria um novo centro de treinamento
// @Tags Centros de Treinamento
// @Accept json
// @Produce json
// @Param body body dto.CriarCentroTreinamentoRequest true "Centro de treinamento"
// @Success 201 {object} dto.CentroTreinamentoResponse
// @Failure 303 {object} apierror.APIError
// @Router /centros_treinamento/ [post]
func (h *CentrosTreinamentoHandler) Criar(c *gin.Context) {
	var req dto.CriarCentroTreinamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Erro ao criar centro de treinamento")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CentrosTreinamentoHandler) Listar(c *gin.Context) {
	var page dto.PageParams
	if !bindQuery(c, &page) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), page)
	if err != nil {
		respondError(c, err, "Erro ao listar centros de treinamento")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CentrosTreinamentoHandler) ObterPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Erro ao buscar centro de treinamento")
		return
	}
	c.JSON(http.StatusOK, resp)
}
