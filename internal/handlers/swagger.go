package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Kalaa Saarathi API
// @version 1.0
// @description Serverless backend for the Kalaa Saarathi artisan assistant: health check, WhatsApp webhook and API index.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /

// @tag.name system
// @tag.description Liveness and service metadata

// @tag.name webhook
// @tag.description Twilio WhatsApp webhook

// SwaggerPath is where the documentation UI is mounted
const SwaggerPath = "/swagger/*any"

// SetupSwagger mounts the swagger UI
func SetupSwagger(engine *gin.Engine) {
	engine.GET(SwaggerPath, ginSwagger.WrapHandler(swaggerFiles.Handler))
}
