package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"legalgpt-portal/models"
	"legalgpt-portal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Consulter answers consultation requests
type Consulter interface {
	Consult(ctx context.Context, req models.ConsultationRequest) (*models.Consultation, error)
	ConsultStream(ctx context.Context, req models.ConsultationRequest, onChunk func(string)) (*models.Consultation, error)
	History(ctx context.Context, limit int) ([]*models.Consultation, error)
}

// ConsultationHandler handles HTTP requests for consultations
type ConsultationHandler struct {
	consultations Consulter
	logger        *zap.Logger
}

// NewConsultationHandler creates a new consultation handler
func NewConsultationHandler(consultations Consulter, logger *zap.Logger) *ConsultationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsultationHandler{consultations: consultations, logger: logger}
}

// StreamChunk is the payload of a "chunk" server-sent event
type StreamChunk struct {
	Text string `json:"text"`
}

// Predict handles POST /api/predict. Omitted parameters take the form defaults.
//
// With "stream": true the answer is sent as server-sent events once generation produces
// its first chunk: "chunk" events carrying StreamChunk, then a "done" event carrying the
// consultation, or an "error" event carrying {code, message}. Failures before the first
// chunk, and answers from generators that cannot stream, use the JSON envelope.
func (h *ConsultationHandler) Predict(c *gin.Context) {
	req := models.ConsultationRequest{GenerationParams: models.DefaultGenerationParams()}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if req.Stream {
		h.predictStream(c, req)
		return
	}

	result, err := h.consultations.Consult(c.Request.Context(), req)
	if err != nil {
		status, code, message := h.consultError(err)
		respondError(c, status, code, message)
		return
	}
	h.respondConsultation(c, result)
}

func (h *ConsultationHandler) predictStream(c *gin.Context, req models.ConsultationRequest) {
	started := false
	result, err := h.consultations.ConsultStream(c.Request.Context(), req, func(chunk string) {
		if !started {
			started = true
			c.Header("Cache-Control", "no-cache")
			c.Header("Connection", "keep-alive")
			c.Status(http.StatusOK)
		}
		c.SSEvent("chunk", StreamChunk{Text: chunk})
		c.Writer.Flush()
	})

	if !started {
		if err != nil {
			status, code, message := h.consultError(err)
			respondError(c, status, code, message)
			return
		}
		h.respondConsultation(c, result)
		return
	}

	if err != nil {
		_, code, message := h.consultError(err)
		c.SSEvent("error", gin.H{"code": code, "message": message})
		c.Writer.Flush()
		return
	}
	if result.Cached {
		consultationCacheHits.Inc()
	}
	c.SSEvent("done", *result)
	c.Writer.Flush()
}

func (h *ConsultationHandler) respondConsultation(c *gin.Context, result *models.Consultation) {
	if result.Cached {
		consultationCacheHits.Inc()
	}
	respondOK(c, http.StatusOK, result)
}

// consultError maps a service error to a status and error envelope
func (h *ConsultationHandler) consultError(err error) (int, string, string) {
	switch {
	case errors.Is(err, service.ErrEmptyQuery):
		return http.StatusBadRequest, "EMPTY_QUERY", "Query must not be empty"
	case errors.Is(err, service.ErrInvalidParameters):
		return http.StatusBadRequest, "INVALID_PARAMETERS", err.Error()
	case errors.Is(err, service.ErrGeneratorNotSet):
		return http.StatusServiceUnavailable, "GENERATOR_UNAVAILABLE", "Consultation backend is not configured"
	case errors.Is(err, service.ErrStreamInterrupted):
		h.logger.Error("consultation stream interrupted", zap.Error(err))
		return http.StatusBadGateway, "STREAM_INTERRUPTED", "The answer stream was interrupted"
	default:
		h.logger.Error("consultation failed", zap.Error(err))
		return http.StatusBadGateway, "GENERATION_FAILED", "Failed to generate an answer"
	}
}

// History handles GET /api/consultations?limit=
func (h *ConsultationHandler) History(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a positive integer")
			return
		}
		limit = n
	}

	items, err := h.consultations.History(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("listing consultations failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "HISTORY_FAILED", "Failed to list consultations")
		return
	}
	respondOK(c, http.StatusOK, items)
}
