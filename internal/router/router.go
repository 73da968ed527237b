package router

import (
	"workoutapi/internal/config"
	"workoutapi/internal/handler"
	"workoutapi/internal/middleware"
	"workoutapi/internal/repository"
	"workoutapi/internal/service"

	_ "workoutapi/docs" // registers the OpenAPI document with swag

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store (repositories) ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Each engine owns its registry so several engines can coexist (tests).
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(metrics.Handler())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Services ─────────────────────────────────────────────────────────────
	store := repository.NewStore(db)
	categoriaSvc := service.NewCategoriaService(store)
	centroSvc := service.NewCentroTreinamentoService(store)
	atletaSvc := service.NewAtletaService(store)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	centrosH := handler.NewCentrosTreinamentoHandler(centroSvc)
	atletasH := handler.NewAtletasHandler(atletaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	atletas := r.Group("/atletas")
	{
		atletas.POST("/", atletasH.Criar)
		atletas.GET("", atletasH.Listar)
		atletas.GET("/", atletasH.Listar)
		atletas.GET("/by", atletasH.Buscar)
		atletas.GET("/:id", atletasH.ObterPorID)
		atletas.PATCH("/:id", atletasH.Atualizar)
		atletas.DELETE("/:id", atletasH.Remover)
	}

	categorias := r.Group("/categorias")
	{
		categorias.POST("/", categoriasH.Criar)
		categorias.GET("/", categoriasH.Listar)
		categorias.GET("/:id", categoriasH.ObterPorID)
	}

	centros := r.Group("/centros_treinamento")
	{
		centros.POST("/", centrosH.Criar)
		centros.GET("/", centrosH.Listar)
		centros.GET("/:id", centrosH.ObterPorID)
	}

	// Swagger UI, outside production only
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
