package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"vehicle-query-service/internal/model"
	"vehicle-query-service/internal/orchestrator"
	"vehicle-query-service/internal/service"
)

const (
	ServiceName    = "API Consultas Vehiculares"
	ServiceVersion = "1.0.0"

	messageFound    = "Consulta exitosa"
	messageNotFound = "No se encontró información para la placa y cédula proporcionadas"
)

type Querier interface {
	Lookup(ctx context.Context, plate, identityNumber string) (*model.QueryPayload, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	querier      Querier
	orchestrator *orchestrator.Orchestrator
	health       HealthChecker
	log          zerolog.Logger
}

func NewHandler(
	querier Querier,
	orch *orchestrator.Orchestrator,
	health HealthChecker,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		querier:      querier,
		orchestrator: orch,
		health:       health,
		log:          log,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", h.root)

	api := r.Group("/api")
	{
		api.GET("/health", h.healthCheck)
		api.GET("/consulta/:placa/:cedula", h.lookupVehicle)
		api.GET("/consulta/:placa/:cedula/vista", h.lookupVehicleView)
		api.GET("/vista", h.placeholderView)
		api.POST("/validar", h.validateFields)
	}
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": ServiceName,
		"version": ServiceVersion,
		"status":  "running",
	})
}

func (h *Handler) healthCheck(c *gin.Context) {
	if err := h.health.Ping(c.Request.Context()); err != nil {
		h.log.Warn().Err(err).Msg("database health check failed")
		c.JSON(http.StatusOK, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "connected"})
}

func (h *Handler) lookupVehicle(c *gin.Context) {
	payload, err := h.querier.Lookup(c.Request.Context(), c.Param("placa"), c.Param("cedula"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(messageFound, payload))
}

func (h *Handler) lookupVehicleView(c *gin.Context) {
	view, err := h.orchestrator.Run(c.Request.Context(), orchestrator.Input{
		Plate:          c.Param("placa"),
		IdentityNumber: c.Param("cedula"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(messageFound, view))
}

func (h *Handler) placeholderView(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse("", h.orchestrator.Placeholder()))
}

func (h *Handler) validateFields(c *gin.Context) {
	var req orchestrator.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	errs := orchestrator.Validate(req)
	if errs == nil {
		errs = orchestrator.FieldErrors{}
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":  len(errs) == 0,
		"errors": errs,
	})
}

// handleError maps lookup errors to responses. A missing vehicle is not an
// HTTP error: the envelope reports success=false with status 200.
func (h *Handler) handleError(c *gin.Context, err error) {
	var (
		fieldErr  *service.FieldError
		fieldErrs orchestrator.FieldErrors
	)
	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fieldErr.Error(),
			"errors":  orchestrator.FieldErrors{fieldErr.Field: fieldErr.Reason},
		})
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fieldErrs.Error(),
			"errors":  fieldErrs,
		})
	case errors.Is(err, orchestrator.ErrIncompleteInput), errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusOK, errorResponse(messageNotFound))
	case errors.Is(err, context.DeadlineExceeded):
		h.log.Warn().Err(err).Msg("lookup timed out")
		c.JSON(http.StatusGatewayTimeout, errorResponse("query timed out"))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(message string, data interface{}) gin.H {
	return gin.H{
		"success": true,
		"message": message,
		"data":    data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"success": false,
		"message": message,
	}
}
