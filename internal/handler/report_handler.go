package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dhruvkrishnavaid/oceaneye/internal/model"
	"github.com/dhruvkrishnavaid/oceaneye/internal/service"
	"github.com/dhruvkrishnavaid/oceaneye/internal/upload"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Handles GET /api/reports - returns reports with an optional status filter.
func (h *ReportHandler) GetReports(c *gin.Context) {
	status := model.VerificationStatus(c.Query("status"))
	if status != "" && !model.ValidVerificationStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be pending, verified or fake"})
		return
	}

	reports := h.reportService.List(status)
	c.JSON(http.StatusOK, model.ReportListResponse{
		Reports: reports,
		Total:   len(reports),
	})
}

// Handles GET /api/reports/counts - returns the triage badge counters.
func (h *ReportHandler) GetCounts(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.Counts())
}

// Handles POST /api/reports/refresh - repopulates the store from upstream.
// A failure leaves prior reports intact and surfaces the error string so
// the view can render its retry panel.
func (h *ReportHandler) Refresh(c *gin.Context) {
	if err := h.reportService.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	counts := h.reportService.Counts()
	c.JSON(http.StatusOK, gin.H{
		"message": "Reports refreshed",
		"total":   counts.Total,
	})
}

// Handles PATCH /api/reports/:id/read.
func (h *ReportHandler) MarkAsRead(c *gin.Context) {
	id, ok := h.reportID(c)
	if !ok {
		return
	}
	if !h.reportService.MarkAsRead(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "report marked as read"})
}

// Handles PATCH /api/reports/read-all.
func (h *ReportHandler) MarkAllAsRead(c *gin.Context) {
	h.reportService.MarkAllAsRead()
	c.JSON(http.StatusOK, gin.H{"message": "all reports marked as read"})
}

// Handles PATCH /api/reports/:id/verify.
func (h *ReportHandler) MarkAsVerified(c *gin.Context) {
	id, ok := h.reportID(c)
	if !ok {
		return
	}
	if !h.reportService.MarkAsVerified(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "report marked as verified"})
}

// Handles PATCH /api/reports/:id/fake.
func (h *ReportHandler) MarkAsFake(c *gin.Context) {
	id, ok := h.reportID(c)
	if !ok {
		return
	}
	if !h.reportService.MarkAsFake(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "report marked as fake"})
}

// Handles PATCH /api/reports/:id/reset - returns a report to pending and
// re-surfaces it for triage.
func (h *ReportHandler) ResetVerification(c *gin.Context) {
	id, ok := h.reportID(c)
	if !ok {
		return
	}
	if !h.reportService.ResetVerification(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "verification status reset"})
}

// Handles POST /api/reports - validates and forwards a new incident
// submission with its media attachments.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	sub, files, ok := h.bindSubmission(c)
	if !ok {
		return
	}

	valid, errs := upload.Validate(files)
	if len(errs) > 0 {
		h.reportService.RejectedSubmission()
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "file validation failed",
			"errors": errs,
		})
		return
	}

	for _, fh := range valid {
		fh := fh
		sub.Attachments = append(sub.Attachments, model.Attachment{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}

	result, err := h.reportService.Submit(c.Request.Context(), sub)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": result.Message,
		"data": gin.H{
			"report_id":      result.ReportID,
			"files_uploaded": result.FilesUploaded,
			"images":         result.Images,
			"videos":         result.Videos,
		},
	})
}

// Health check endpoint for service status monitoring.
func (h *ReportHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "oceaneye-coastal-api"})
}

func (h *ReportHandler) reportID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return 0, false
	}
	return id, true
}

// bindSubmission parses the multipart form fields and files.
func (h *ReportHandler) bindSubmission(c *gin.Context) (*model.ReportSubmission, []*multipart.FileHeader, bool) {
	var form struct {
		Title       string  `form:"title" binding:"required"`
		Description string  `form:"description" binding:"required"`
		Location    string  `form:"location" binding:"required"`
		Latitude    float64 `form:"latitude"`
		Longitude   float64 `form:"longitude"`
		Severity    int     `form:"severity"`
		HazardType  string  `form:"hazard_type" binding:"required"`
		Author      string  `form:"author" binding:"required"`
	}
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	if form.Latitude < -90 || form.Latitude > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude must be between -90 and 90"})
		return nil, nil, false
	}
	if form.Longitude < -180 || form.Longitude > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "longitude must be between -180 and 180"})
		return nil, nil, false
	}
	if form.Severity < 0 || form.Severity > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "severity must be between 0 and 100"})
		return nil, nil, false
	}

	var files []*multipart.FileHeader
	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		files = mf.File["files"]
	}

	return &model.ReportSubmission{
		Title:       form.Title,
		Description: form.Description,
		Location:    form.Location,
		Latitude:    form.Latitude,
		Longitude:   form.Longitude,
		Severity:    form.Severity,
		HazardType:  form.HazardType,
		Author:      form.Author,
	}, files, true
}
