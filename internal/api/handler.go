package api

import (
	"errors"
	"net/http"

	"github.com/emufront/gpucaps/internal/gpuinfo"
	"github.com/emufront/gpucaps/internal/logger"
	"github.com/emufront/gpucaps/internal/settings"
	"github.com/gin-gonic/gin"
)

// ClassifyResponse is returned by GET /gpu/classify
type ClassifyResponse struct {
	Renderer                           string               `json:"renderer"`
	Architecture                       gpuinfo.Architecture `json:"architecture"`
	Codename                           string               `json:"codename"`
	SupportsTileTransactionElimination bool                 `json:"supports_tile_transaction_elimination"`
	SupportsFrameCompression           bool                 `json:"supports_frame_compression"`
}

// SetToggleRequest is the JSON body for PUT /settings/mali/:key
type SetToggleRequest struct {
	Value *bool `json:"value"`
}

// ErrorResponse for error cases
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// InspectorInterface defines operations needed from the capability inspector
type InspectorInterface interface {
	Report() gpuinfo.Report
	Reprobe() gpuinfo.Report
}

// GPUHandler serves GPU capability and hardware tweak settings
type GPUHandler struct {
	inspector InspectorInterface
	store     settings.Store
}

// NewGPUHandler creates a new handler
func NewGPUHandler(inspector InspectorInterface, store settings.Store) *GPUHandler {
	return &GPUHandler{inspector: inspector, store: store}
}

// Setup registers the routes below r
func (h *GPUHandler) Setup(r *gin.RouterGroup) {
	v1 := r.Group("/v1")
	v1.GET("/gpu", h.HandleGetReport)
	v1.POST("/gpu/reprobe", h.HandleReprobe)
	v1.GET("/gpu/classify", h.HandleClassify)
	v1.GET("/settings/mali", h.HandleGetSettings)
	v1.PUT("/settings/mali/:key", h.HandleSetToggle)
}

// HandleGetReport handles GET /gpu
func (h *GPUHandler) HandleGetReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.inspector.Report())
}

// HandleReprobe handles POST /gpu/reprobe
func (h *GPUHandler) HandleReprobe(c *gin.Context) {
	report := h.inspector.Reprobe()
	logger.Info("reprobe_gpu", map[string]string{"renderer": report.Renderer, "status": report.Status})
	c.JSON(http.StatusOK, report)
}

// HandleClassify handles GET /gpu/classify?renderer=xxx
func (h *GPUHandler) HandleClassify(c *gin.Context) {
	renderer := c.Query("renderer")
	if renderer == "" {
		h.writeError(c, http.StatusBadRequest, "renderer query param required", "MISSING_RENDERER")
		return
	}
	arch := gpuinfo.Classify(renderer)
	c.JSON(http.StatusOK, ClassifyResponse{
		Renderer:                           renderer,
		Architecture:                       arch,
		Codename:                           arch.Codename(),
		SupportsTileTransactionElimination: arch.SupportsTileTransactionElimination(),
		SupportsFrameCompression:           arch.SupportsFrameCompression(),
	})
}

// HandleGetSettings handles GET /settings/mali
func (h *GPUHandler) HandleGetSettings(c *gin.Context) {
	page, err := settings.BuildPage(h.inspector.Report(), h.store)
	if err != nil {
		logger.Error("read_settings", nil, err)
		h.writeError(c, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
		return
	}
	c.JSON(http.StatusOK, page)
}

// HandleSetToggle handles PUT /settings/mali/:key
func (h *GPUHandler) HandleSetToggle(c *gin.Context) {
	key := c.Param("key")

	var req SetToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, http.StatusBadRequest, "invalid request body", "INVALID_REQUEST")
		return
	}
	if req.Value == nil {
		h.writeError(c, http.StatusBadRequest, "value is required", "MISSING_VALUE")
		return
	}

	report := h.inspector.Report()
	if err := settings.Apply(report, h.store, key, *req.Value); err != nil {
		if errors.Is(err, settings.ErrUnknownKey) {
			h.writeError(c, http.StatusNotFound, "unknown settings key", "UNKNOWN_KEY")
			return
		}
		if errors.Is(err, settings.ErrToggleUnavailable) {
			h.writeError(c, http.StatusConflict, "toggle not supported by this GPU", "TOGGLE_UNAVAILABLE")
			return
		}
		logger.Error("write_settings", key, err)
		h.writeError(c, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
		return
	}

	page, err := settings.BuildPage(report, h.store)
	if err != nil {
		logger.Error("read_settings", nil, err)
		h.writeError(c, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
		return
	}
	c.JSON(http.StatusOK, page)
}

// writeError writes an error response
func (h *GPUHandler) writeError(c *gin.Context, status int, message, code string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message, Code: code})
}
