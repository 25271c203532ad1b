package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/trucklink/orderfile/internal/http/middleware"
	"github.com/trucklink/orderfile/internal/parser"
	"github.com/trucklink/orderfile/internal/service"
)

type Handler struct {
	orders    *service.OrderService
	reference *service.ReferenceService
	log       zerolog.Logger
}

func NewHandler(orders *service.OrderService, reference *service.ReferenceService, log zerolog.Logger) *Handler {
	return &Handler{orders: orders, reference: reference, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.GET("/healthz", h.health)

	protected := router.Group("/")
	protected.Use(authMiddleware)
	protected.POST("/orders/parse", h.parseDocument)
	protected.GET("/documents", h.listDocuments)
	protected.POST("/reference/import", h.importReference)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type parseDocumentRequest struct {
	Text    string `json:"text" binding:"required"`
	Deliver bool   `json:"deliver"`
}

type orderFileResponse struct {
	FileName     string `json:"file_name"`
	Reference    string `json:"reference"`
	LoadLocation string `json:"laadplaats"`
	Payload      string `json:"payload"`
}

type containerFailureResponse struct {
	ContainerNumber string `json:"container_number"`
	Reason          string `json:"reason"`
}

type diagnosticResponse struct {
	Level   string `json:"level"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type parseDocumentResponse struct {
	Format      string                     `json:"format"`
	Orders      int                        `json:"orders"`
	Files       []orderFileResponse        `json:"files"`
	Failures    []containerFailureResponse `json:"failures,omitempty"`
	Diagnostics []diagnosticResponse       `json:"diagnostics,omitempty"`
}

func (h *Handler) parseDocument(c *gin.Context) {
	var req parseDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if principal, ok := middleware.MustPrincipal(c); ok {
		h.log.Debug().Str("user", principal.UserID).Msg("parse requested")
	}

	result, err := h.orders.ProcessDocument(c.Request.Context(), service.ProcessInput{
		Text:    req.Text,
		Deliver: req.Deliver,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := parseDocumentResponse{
		Format: string(result.Format),
		Orders: len(result.Orders),
		Files:  make([]orderFileResponse, 0, len(result.Files)),
	}
	for _, file := range result.Files {
		resp.Files = append(resp.Files, orderFileResponse{
			FileName:     file.FileName,
			Reference:    file.Reference,
			LoadLocation: file.LoadLocation,
			Payload:      file.Payload,
		})
	}
	for _, failure := range result.Failures {
		resp.Failures = append(resp.Failures, containerFailureResponse{
			ContainerNumber: failure.ContainerNumber,
			Reason:          failure.Reason,
		})
	}
	for _, diag := range result.Diagnostics {
		resp.Diagnostics = append(resp.Diagnostics, diagnosticResponse{
			Level:   string(diag.Level),
			Field:   diag.Field,
			Message: diag.Message,
		})
	}

	c.JSON(http.StatusOK, resp)
}

type documentResponse struct {
	ID            string `json:"id"`
	Format        string `json:"format"`
	TripReference string `json:"trip_reference"`
	Containers    int    `json:"containers"`
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
	CreatedAt     string `json:"created_at"`
}

func (h *Handler) listDocuments(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}

	docs, err := h.orders.RecentDocuments(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]documentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, documentResponse{
			ID:            doc.ID.String(),
			Format:        doc.Format,
			TripReference: doc.TripReference,
			Containers:    doc.Containers,
			Status:        string(doc.Status),
			Reason:        doc.Reason,
			CreatedAt:     doc.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) importReference(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	result, err := h.reference.ImportWorkbook(c.Request.Context(), file)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"terminals":      result.Terminals,
		"carriers":       result.Carriers,
		"containertypes": result.ContainerTypes,
	})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, parser.ErrUnknownFormat):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, parser.ErrNoTripReference):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, parser.ErrEmptyDocument), errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
