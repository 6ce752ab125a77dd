package handlers

import (
	"legalgpt-portal/app"
	"legalgpt-portal/knowledge"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouterConfig holds everything the HTTP API serves
type RouterConfig struct {
	Knowledge     *knowledge.KnowledgeBase
	Sections      []app.SectionView
	Consultations Consulter
	APIKeyHash    string
	Limiter       *ClientLimiter
	Logger        *zap.Logger
}

// NewRouter builds the gin engine with every route registered
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Sections == nil {
		cfg.Sections = app.DefaultSections()
	}

	knowledgeHandler := NewKnowledgeHandler(cfg.Knowledge, cfg.Sections)

	r := gin.New()
	r.Use(gin.Recovery(), Logger(cfg.Logger), Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Reference data
		api.GET("/sections", knowledgeHandler.GetSections)
		api.GET("/provisions", knowledgeHandler.GetProvisions)
		api.GET("/cases", knowledgeHandler.GetCases)
		api.GET("/project", knowledgeHandler.GetProject)

		// Consultation endpoints
		if cfg.Consultations != nil {
			consultationHandler := NewConsultationHandler(cfg.Consultations, cfg.Logger)
			// limit before the bcrypt compare so bad keys are throttled too
			protected := api.Group("", RateLimit(cfg.Limiter), APIKey(cfg.APIKeyHash))
			protected.POST("/predict", consultationHandler.Predict)
			protected.GET("/consultations", consultationHandler.History)
		}
	}

	return r
}
