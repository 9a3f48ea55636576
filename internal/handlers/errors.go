package handlers

import (
	"context"
	"fmt"
	"net/http"

	"kalaa-saarathi-api/pkg/lambda"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NotFound answers requests whose path matches no route
func NotFound(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return lambda.JSON(http.StatusNotFound, ErrorResponse{
		Error:   "Not found",
		Message: fmt.Sprintf("%s %s is not routed", req.Method, req.Path),
	})
}
