package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"workoutapi/internal/config"
	"workoutapi/internal/router"
	"workoutapi/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func newEngine(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return router.New(&config.Config{Env: "test"}, db), db
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func seedReferencias(t *testing.T, h http.Handler) {
	t.Helper()
	w := do(t, h, http.MethodPost, "/categorias/", map[string]any{"nome": "Scale"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = do(t, h, http.MethodPost, "/centros_treinamento/", map[string]any{
		"nome": "CT King", "endereco": "Rua 1, 123", "proprietario": "João",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func ana() map[string]any {
	return map[string]any{
		"nome": "Ana", "cpf": "11122233344", "idade": 30, "peso": 60.0, "altura": 1.65, "sexo": "F",
		"categoria":          map[string]any{"nome": "Scale"},
		"centro_treinamento": map[string]any{"nome": "CT King"},
	}
}

// ── Scenarios ────────────────────────────────────────────────────────────────

func TestAtletaLifecycle(t *testing.T) {
	h, _ := newEngine(t)
	seedReferencias(t, h)

	w := do(t, h, http.MethodPost, "/atletas/", ana())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	criado := decode(t, w)
	id, _ := criado["id"].(string)
	require.NotEmpty(t, id)
	assert.NotEmpty(t, criado["created_at"])
	assert.Equal(t, "Scale", criado["categoria"].(map[string]any)["nome"])
	assert.Equal(t, "CT King", criado["centro_treinamento"].(map[string]any)["nome"])

	w = do(t, h, http.MethodGet, "/atletas/?cpf=11122233344", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode(t, w)
	assert.EqualValues(t, 1, page["total"])
	items := page["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].(map[string]any)["id"])

	w = do(t, h, http.MethodPatch, "/atletas/"+id, map[string]any{"peso": 62.5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 62.5, decode(t, w)["peso"])

	w = do(t, h, http.MethodGet, "/atletas/by?nome=an", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, decode(t, w)["id"])

	w = do(t, h, http.MethodDelete, "/atletas/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, h, http.MethodGet, "/atletas/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Atleta não encontrado no id: "+id, decode(t, w)["detail"])
}

func TestCriarAtleta_Erros(t *testing.T) {
	h, _ := newEngine(t)
	seedReferencias(t, h)

	t.Run("campo desconhecido", func(t *testing.T) {
		body := ana()
		body["id"] = "00000000-0000-0000-0000-000000000000"
		w := do(t, h, http.MethodPost, "/atletas/", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("json malformado", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/atletas/", `{"nome":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("campo obrigatorio ausente", func(t *testing.T) {
		body := ana()
		delete(body, "idade")
		w := do(t, h, http.MethodPost, "/atletas/", body)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		fields := decode(t, w)["fields"].(map[string]any)
		assert.Equal(t, "required", fields["idade"])
	})

	t.Run("categoria inexistente", func(t *testing.T) {
		body := ana()
		body["categoria"] = map[string]any{"nome": "Elite"}
		w := do(t, h, http.MethodPost, "/atletas/", body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "A categoria Elite não foi encontrada.", decode(t, w)["detail"])
	})

	t.Run("cpf duplicado", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/atletas/", ana())
		require.Equal(t, http.StatusCreated, w.Code)

		w = do(t, h, http.MethodPost, "/atletas/", ana())
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "Já existe um atleta cadastrado com o cpf: 11122233344", decode(t, w)["detail"])
	})
}

func TestCategoria_Validacao(t *testing.T) {
	h, _ := newEngine(t)

	w := do(t, h, http.MethodPost, "/categorias/", map[string]any{"nome": strings.Repeat("x", 51)})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Erro de validação", body["detail"])
	assert.Equal(t, "max", body["fields"].(map[string]any)["nome"])

	w = do(t, h, http.MethodPost, "/categorias/", map[string]any{"nome": "Scale"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, h, http.MethodPost, "/categorias/", map[string]any{"nome": "Scale"})
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestObterPorID_IDInvalido(t *testing.T) {
	h, _ := newEngine(t)

	for _, path := range []string{"/atletas/abc", "/categorias/abc", "/centros_treinamento/abc"} {
		w := do(t, h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "ID inválido", decode(t, w)["detail"], path)
	}
}

func TestListar_Paginacao(t *testing.T) {
	h, _ := newEngine(t)

	w := do(t, h, http.MethodGet, "/atletas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode(t, w)
	assert.Equal(t, []any{}, page["items"])
	assert.EqualValues(t, 1, page["page"])
	assert.EqualValues(t, 50, page["size"])

	w = do(t, h, http.MethodGet, "/categorias/?size=101", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, h, http.MethodGet, "/categorias/?page=x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBuscar_SemFiltro(t *testing.T) {
	h, _ := newEngine(t)

	w := do(t, h, http.MethodGet, "/atletas/by", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h, _ := newEngine(t)

	w := do(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["ok"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `workout_api_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestBancoIndisponivel(t *testing.T) {
	h, db := newEngine(t)
	testutil.CloseDB(db)

	w := do(t, h, http.MethodPost, "/categorias/", map[string]any{"nome": "Scale"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Ocorreu um erro ao inserir os dados no banco", decode(t, w)["detail"])

	w = do(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "error", decode(t, w)["db"])
}

func TestMetrics_ContaPanicComo500(t *testing.T) {
	h, _ := newEngine(t)
	h.GET("/explode", func(c *gin.Context) { panic("boom") })

	w := do(t, h, http.MethodGet, "/explode", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	w = do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `workout_api_http_requests_total{method="GET",route="/explode",status="500"} 1`)
}
