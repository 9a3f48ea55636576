package lambda

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

const internalErrorBody = `{"error": "Internal server error"}`

// FromAPIGateway converts an API Gateway proxy event into a generic request
func FromAPIGateway(event events.APIGatewayProxyRequest) (*Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode request body: %w", err)
		}
		body = decoded
	}

	headers := make(map[string]string, len(event.Headers))
	for k, v := range event.Headers {
		headers[k] = v
	}

	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     headers,
		QueryParams: event.QueryStringParameters,
		Body:        body,
		PathParams:  event.PathParameters,
		RequestID:   event.RequestContext.RequestID,
	}, nil
}

// ToAPIGateway converts a generic response into an API Gateway proxy response
func (r *Response) ToAPIGateway() events.APIGatewayProxyResponse {
	headers := r.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    headers,
		Body:       string(r.Body),
	}
}

// NewGatewayHandler adapts a HandlerFunc to the API Gateway proxy signature.
// Handler errors never reach the runtime; they are logged and answered with a 500.
func NewGatewayHandler(logger logrus.FieldLogger, h HandlerFunc) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		req, err := FromAPIGateway(event)
		if err != nil {
			logger.WithError(err).WithField("path", event.Path).Error("Invalid API Gateway event")
			return internalError(), nil
		}

		if lc, ok := lambdacontext.FromContext(ctx); ok && req.RequestID == "" {
			req.RequestID = lc.AwsRequestID
		}

		resp, err := h(ctx, req)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"request_id": req.RequestID,
				"method":     req.Method,
				"path":       req.Path,
				"error":      err.Error(),
			}).Error("Handler failed")
			return internalError(), nil
		}
		if resp == nil {
			return internalError(), nil
		}

		return resp.ToAPIGateway(), nil
	}
}

// Start hands a HandlerFunc to the Lambda runtime
func Start(logger logrus.FieldLogger, h HandlerFunc) {
	awslambda.Start(NewGatewayHandler(logger, h))
}

func internalError() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       internalErrorBody,
	}
}
