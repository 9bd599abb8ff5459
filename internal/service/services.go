package service

import (
	"github.com/MKhiriev/go-contact-keeper/internal/graphql"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// Services groups the services of the client application.
type Services struct {
	ContactService ContactService
}

// NewServices builds every service on top of client.
func NewServices(client graphql.Client, log *logger.Logger) *Services {
	return &Services{
		ContactService: NewContactService(client, log),
	}
}
