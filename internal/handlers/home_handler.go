package handlers

import (
	"context"
	"net/http"
	"time"

	"kalaa-saarathi-api/pkg/lambda"
)

const homeBanner = "Kalaa Saarathi Server is running! Visit /whatsapp for the WhatsApp webhook"

// PingResponse is the body of the ping endpoint
type PingResponse struct {
	Message   string `json:"message" example:"API is working!"`
	Timestamp string `json:"timestamp" example:"2024-01-01T00:00:00Z"`
}

// HomeHandler serves the landing banner and the ping endpoint
type HomeHandler struct {
	now func() time.Time
}

// NewHomeHandler creates a new home handler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{now: time.Now}
}

// Banner returns a plain text pointer to the webhook.
//
// @Summary Landing banner
// @Tags system
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *HomeHandler) Banner(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return lambda.Raw(http.StatusOK, "text/plain; charset=utf-8", []byte(homeBanner)), nil
}

// Ping confirms the API answers and reports the server time.
//
// @Summary Ping
// @Tags system
// @Produce json
// @Success 200 {object} PingResponse
// @Router /api/test [get]
func (h *HomeHandler) Ping(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return lambda.JSON(http.StatusOK, PingResponse{
		Message:   "API is working!",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}
