// Package http implements the HTTP transport layer of the vault server.
// It provides middleware, route handlers, and response utilities for the
// REST API. Authentication, request logging, tracing, and compression are
// all handled at this layer before requests reach the service layer.
package http

import (
	"github.com/snesterov/ciphervault/internal/logger"
	"github.com/snesterov/ciphervault/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
