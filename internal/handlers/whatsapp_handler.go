package handlers

import (
	"context"
	"encoding/xml"
	"net/http"

	"github.com/sirupsen/logrus"

	"kalaa-saarathi-api/pkg/lambda"
)

// WhatsAppAckMessage is the text every webhook delivery is answered with
const WhatsAppAckMessage = "Thanks for your message! Kalaa Saarathi is working."

// maxLoggedBody caps how much of an inbound payload ends up in the logs
const maxLoggedBody = 10 * 1024

// twimlResponse is the messaging reply format Twilio expects from a webhook
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

var whatsAppAck = mustMarshalTwiML(WhatsAppAckMessage)

func mustMarshalTwiML(message string) []byte {
	body, err := xml.Marshal(twimlResponse{Message: message})
	if err != nil {
		panic("failed to marshal TwiML acknowledgement: " + err.Error())
	}
	return body
}

// WhatsAppHandler acknowledges WhatsApp webhook deliveries without inspecting them
type WhatsAppHandler struct {
	logger logrus.FieldLogger
}

// NewWhatsAppHandler creates a new WhatsApp webhook handler
func NewWhatsAppHandler(logger logrus.FieldLogger) *WhatsAppHandler {
	return &WhatsAppHandler{logger: logger}
}

// Handle logs the delivery and replies with the fixed acknowledgement.
//
// @Summary WhatsApp webhook
// @Tags webhook
// @Accept x-www-form-urlencoded
// @Produce xml
// @Success 200 {string} string "TwiML acknowledgement"
// @Success 204 "Preflight"
// @Router /whatsapp [post]
func (h *WhatsAppHandler) Handle(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	body := req.Body
	truncated := false
	if len(body) > maxLoggedBody {
		body = body[:maxLoggedBody]
		truncated = true
	}

	fields := logrus.Fields{
		"method": req.Method,
		"body":   string(body),
	}
	if req.RequestID != "" {
		fields["request_id"] = req.RequestID
	}
	if truncated {
		fields["body_truncated"] = true
	}
	h.logger.WithFields(fields).Info("WhatsApp webhook received")

	return lambda.Raw(http.StatusOK, "text/xml", whatsAppAck), nil
}
