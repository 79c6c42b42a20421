package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hseinsb/estimate-analyzer/apperrors"
	"github.com/hseinsb/estimate-analyzer/dto"
	"github.com/hseinsb/estimate-analyzer/logger"
	"github.com/hseinsb/estimate-analyzer/service"
)

type EstimateHandler struct {
	estimateService *service.EstimateService
	maxFileSize     int64
	log             *zap.SugaredLogger
}

func NewEstimateHandler(estimateService *service.EstimateService, maxFileSize int64) *EstimateHandler {
	return &EstimateHandler{
		estimateService: estimateService,
		maxFileSize:     maxFileSize,
		log:             logger.GetLogger(),
	}
}

// Upload handles POST /api/v1/estimates/upload
func (h *EstimateHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	if fileHeader.Size > h.maxFileSize {
		h.sendError(c, http.StatusRequestEntityTooLarge, "File exceeds the maximum allowed size", nil)
		return
	}
	if !strings.EqualFold(ext(fileHeader.Filename), ".pdf") {
		h.sendError(c, http.StatusBadRequest, "Only PDF files are accepted", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to open uploaded file", err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxFileSize+1))
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read uploaded file", err)
		return
	}
	if int64(len(data)) > h.maxFileSize {
		h.sendError(c, http.StatusRequestEntityTooLarge, "File exceeds the maximum allowed size", nil)
		return
	}

	h.log.Infow("processing upload", "file_name", fileHeader.Filename, "size", len(data))

	result, err := h.estimateService.ProcessPDF(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		h.sendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{
		Estimate:           result.Estimate,
		ValidationWarnings: result.Warnings,
		ExtractionIssues:   result.ExtractionIssues,
	})
}

// CreateManual handles POST /api/v1/estimates
func (h *EstimateHandler) CreateManual(c *gin.Context) {
	var req dto.ManualEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	est, err := h.estimateService.CreateManual(c.Request.Context(), &req)
	if err != nil {
		h.sendAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, est)
}

// List handles GET /api/v1/estimates
func (h *EstimateHandler) List(c *gin.Context) {
	var q dto.ListEstimatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	ests, err := h.estimateService.List(c.Request.Context(), &q)
	if err != nil {
		h.sendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListEstimatesResponse{
		Estimates: ests,
		Count:     len(ests),
	})
}

// Get handles GET /api/v1/estimates/:id
func (h *EstimateHandler) Get(c *gin.Context) {
	est, err := h.estimateService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

// Update handles PUT /api/v1/estimates/:id
func (h *EstimateHandler) Update(c *gin.Context) {
	var req dto.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	est, err := h.estimateService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.sendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

// Delete handles DELETE /api/v1/estimates/:id
func (h *EstimateHandler) Delete(c *gin.Context) {
	if err := h.estimateService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.sendAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// sendAppError maps service errors to responses, preserving the type and
// status carried by AppError.
func (h *EstimateHandler) sendAppError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		h.log.Warnw("request failed", "type", appErr.Type, "message", appErr.Message, "detail", appErr.Detail)
		c.JSON(appErr.HTTPStatus, dto.ErrorResponse{
			Error:   string(appErr.Type),
			Message: appErr.Message,
			Code:    appErr.HTTPStatus,
		})
		return
	}
	h.sendError(c, http.StatusInternalServerError, "Internal server error", err)
}

// sendError sends a structured error response
func (h *EstimateHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		h.log.Warnw("request failed", "message", message, "error", err)
	}

	errType := apperrors.ServerError
	if statusCode >= 400 && statusCode < 500 {
		errType = apperrors.ValidationError
	}
	c.JSON(statusCode, dto.ErrorResponse{
		Error:   string(errType),
		Message: errorMsg,
		Code:    statusCode,
	})
}

func ext(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}
