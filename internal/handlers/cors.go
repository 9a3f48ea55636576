package handlers

import (
	"context"
	"net/http"
	"strings"

	"kalaa-saarathi-api/pkg/lambda"
)

// CORSPolicy describes the cross-origin headers a route answers with
type CORSPolicy struct {
	AllowOrigin  string
	AllowMethods []string
	AllowHeaders []string
}

// Apply writes the policy headers onto a response
func (p CORSPolicy) Apply(resp *lambda.Response) {
	resp.SetHeader("Access-Control-Allow-Origin", p.AllowOrigin)
	resp.SetHeader("Access-Control-Allow-Methods", strings.Join(p.AllowMethods, ", "))
	resp.SetHeader("Access-Control-Allow-Headers", strings.Join(p.AllowHeaders, ", "))
}

// WithCORS decorates a handler with the policy headers and answers
// preflight requests with 204 before the handler runs.
func WithCORS(policy CORSPolicy, next lambda.HandlerFunc) lambda.HandlerFunc {
	return func(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
		if req.Method == http.MethodOptions {
			resp := lambda.NoContent()
			policy.Apply(resp)
			return resp, nil
		}

		resp, err := next(ctx, req)
		if err != nil || resp == nil {
			return resp, err
		}
		policy.Apply(resp)
		return resp, nil
	}
}

// WhatsAppCORS is the policy of the WhatsApp webhook
var WhatsAppCORS = CORSPolicy{
	AllowOrigin:  "*",
	AllowMethods: []string{http.MethodGet, http.MethodPost},
	AllowHeaders: []string{"Content-Type"},
}

// APICORS is the broader policy of the API info endpoint
var APICORS = CORSPolicy{
	AllowOrigin:  "*",
	AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	AllowHeaders: []string{"Content-Type"},
}
