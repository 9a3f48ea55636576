package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"kalaa-saarathi-api/internal/middleware"
	"kalaa-saarathi-api/pkg/lambda"
)

// Gin adapts a framework-agnostic handler to gin
func Gin(h lambda.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := requestFromGin(c)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				middleware.AbortTooLarge(c, tooLarge.Limit)
				return
			}
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			return
		}

		resp, err := h(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if resp == nil {
			_ = c.Error(fmt.Errorf("handler returned no response for %s %s", req.Method, req.Path))
			return
		}

		writeResponse(c, resp)
	}
}

func requestFromGin(c *gin.Context) (*lambda.Request, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	headers := make(map[string]string, len(c.Request.Header))
	for name := range c.Request.Header {
		headers[name] = c.Request.Header.Get(name)
	}

	query := make(map[string]string)
	for name, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			query[name] = values[0]
		}
	}

	params := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		params[p.Key] = p.Value
	}

	return &lambda.Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Headers:     headers,
		QueryParams: query,
		Body:        body,
		PathParams:  params,
		RequestID:   c.GetString(middleware.RequestIDKey),
	}, nil
}

func writeResponse(c *gin.Context, resp *lambda.Response) {
	for name, value := range resp.Headers {
		c.Header(name, value)
	}

	c.Status(resp.StatusCode)
	if len(resp.Body) == 0 || resp.StatusCode == http.StatusNoContent {
		c.Writer.WriteHeaderNow()
		return
	}
	_, _ = c.Writer.Write(resp.Body)
}
