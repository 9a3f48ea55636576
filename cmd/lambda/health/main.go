package main

import (
	"kalaa-saarathi-api/internal/handlers"
	"kalaa-saarathi-api/pkg/server"
)

func main() {
	server.ServeFunction(handlers.RouteHealth)
}
