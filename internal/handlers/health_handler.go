package handlers

import (
	"context"
	"net/http"

	"kalaa-saarathi-api/pkg/lambda"
)

// HealthResponse is the fixed body of the health endpoint
type HealthResponse struct {
	Status  string `json:"status" example:"OK"`
	Message string `json:"message" example:"Kalaa Saarathi API is running"`
}

// HealthHandler reports that the service is up
type HealthHandler struct {
	body HealthResponse
}

// NewHealthHandler creates a new health handler for the named service
func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{
		body: HealthResponse{
			Status:  "OK",
			Message: serviceName + " is running",
		},
	}
}

// Handle ignores the request entirely.
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Handle(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return lambda.JSON(http.StatusOK, h.body)
}
