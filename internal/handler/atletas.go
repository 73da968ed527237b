package handler

import (
	"net/http"

	"workoutapi/internal/dto"
	"workoutapi/internal/service"

	"github.com/gin-gonic/gin"
)

type AtletasHandler struct{ svc service.AtletaService }

func NewAtletasHandler(svc service.AtletaService) *AtletasHandler {
	return &AtletasHandler{svc: svc}
}

// Criar godoc
// @Summary Criar um novo atleta
// @Tags Atletas
// @Accept json
// @Produce json
// @Param body body dto.CriarAtletaRequest true "Atleta"
// @Success 201 {object} dto.AtletaResponse
// @Failure 400 {object} apierror.APIError
// @Failure 303 {object} apierror.APIError
// @Router /atletas/ [post]
func (h *AtletasHandler) Criar(c *gin.Context) {
	var req dto.CriarAtletaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Ocorreu um erro ao inserir os dados no banco")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Consultar todos os atletas
// @Tags Atletas
// @Produce json
// @Param id query string false "Identificador"
// @Param cpf query string false "CPF"
// @Param nome query string false "Parte do nome"
// @Param page query int false "Página"
// @Param size query int false "Itens por página"
// @Success 200 {object} dto.Page[dto.AtletaResponse]
// @Router /atletas/ [get]
func (h *AtletasHandler) Listar(c *gin.Context) {
	var filter dto.AtletaFilter
	if !bindQuery(c, &filter) {
		return
	}
	var page dto.PageParams
	if !bindQuery(c, &page) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, err, "Erro ao listar atletas")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Buscar GET /atletas/by?id=|cpf=|nome=
func (h *AtletasHandler) Buscar(c *gin.Context) {
	var filter dto.AtletaFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Erro ao buscar atleta")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterPorID GET /atletas/:id
func (h *AtletasHandler) ObterPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Erro ao buscar atleta")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar PATCH /atletas/:id
func (h *AtletasHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarAtletaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Erro ao atualizar atleta")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Remover DELETE /atletas/:id
func (h *AtletasHandler) Remover(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		respondError(c, err, "Erro ao remover atleta")
		return
	}
	c.Status(http.StatusNoContent)
}
