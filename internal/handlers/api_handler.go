package handlers

import (
	"context"
	"net/http"

	"kalaa-saarathi-api/pkg/lambda"
)

// Logical endpoint paths
const (
	PathHome     = "/"
	PathHealth   = "/health"
	PathWhatsApp = "/whatsapp"
	PathAPI      = "/api"
	PathPing     = "/api/test"
	// PathProducts is advertised by the API info endpoint but nothing serves it
	PathProducts = "/api/products"
)

// EndpointIndex lists the logical endpoints advertised to clients
type EndpointIndex struct {
	WhatsApp string `json:"whatsapp" example:"/whatsapp"`
	Health   string `json:"health" example:"/health"`
	Products string `json:"products" example:"/api/products"`
}

// ServiceInfo is the body of the API info endpoint
type ServiceInfo struct {
	Message   string        `json:"message" example:"Kalaa Saarathi API"`
	Status    string        `json:"status" example:"online"`
	Endpoints EndpointIndex `json:"endpoints"`
}

// APIHandler describes the service to API clients
type APIHandler struct {
	info ServiceInfo
}

// NewAPIHandler creates a new API info handler
func NewAPIHandler() *APIHandler {
	return &APIHandler{
		info: ServiceInfo{
			Message: "Kalaa Saarathi API",
			Status:  "online",
			Endpoints: EndpointIndex{
				WhatsApp: PathWhatsApp,
				Health:   PathHealth,
				Products: PathProducts,
			},
		},
	}
}

// Handle returns the service metadata whatever the method or body.
//
// @Summary API information
// @Tags system
// @Produce json
// @Success 200 {object} ServiceInfo
// @Success 204 "Preflight"
// @Router /api [get]
func (h *APIHandler) Handle(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return lambda.JSON(http.StatusOK, h.info)
}
