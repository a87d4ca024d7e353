package server

import (
	"net/http"
	"strings"

	"fjacquet/finvision/internal/logging"
	"fjacquet/finvision/internal/parser"
	"fjacquet/finvision/internal/report"

	"github.com/gin-gonic/gin"
)

// ExtractRequest is the body of POST /extract.
type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractResponse is returned by POST /extract. FinalAmount is null when the
// receipt has no usable total line.
type ExtractResponse struct {
	Products    []report.Product `json:"products"`
	FinalAmount *float64         `json:"final_amount"`
}

// Handler holds the API endpoints.
type Handler struct {
	parser parser.Parser
	logger logging.Logger
}

// NewHandler creates a Handler.
func NewHandler(p parser.Parser, logger logging.Logger) *Handler {
	return &Handler{parser: p, logger: logger}
}

// Health reports that the service is up.
func (h *Handler) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Extract parses the receipt text of the request.
func (h *Handler) Extract() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

		var req ExtractRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.WithError(err).Debug("Rejected extraction request")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text must not be empty"})
			return
		}

		receipt := h.parser.ParseString("", req.Text)
		c.JSON(http.StatusOK, ExtractResponse{
			Products:    report.Products(receipt.Items),
			FinalAmount: report.FinalAmount(receipt),
		})
	}
}
