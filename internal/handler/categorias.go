package handler

import (
	"net/http"

	"workoutapi/internal/dto"
	"workoutapi/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriasHandler struct{ svc service.CategoriaService }

func NewCategoriasHandler(svc service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc}
}

// Criar godoc
// @Summary Criar nova categoria
// @Tags Categorias
// @Accept json
// @Produce json
// @Param body body dto.CriarCategoriaRequest true "Categoria"
// @Success 201 {object} dto.CategoriaResponse
// @Failure 303 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /categorias/ [post]
func (h *CategoriasHandler) Criar(c *gin.Context) {
	var req dto.CriarCategoriaRequest
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

// Listar GET /categorias/
func (h *CategoriasHandler) Listar(c *gin.Context) {
	var page dto.PageParams
	if !bindQuery(c, &page) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), page)
	if err != nil {
		respondError(c, err, "Erro ao listar categorias")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterPorID GET /categorias/:id
func (h *CategoriasHandler) ObterPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Erro ao buscar categoria")
		return
	}
	c.JSON(http.StatusOK, resp)
}
