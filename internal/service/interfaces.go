// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the typed contact operations built on top of the
// GraphQL client. Values go in and come out as plaintext models; the
// encryption layer underneath handles the wire form.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// ContactService manages contacts of the current actor.
type ContactService interface {
	// Create stores c and returns the contact as saved by the API.
	Create(ctx context.Context, c models.Contact) (models.Contact, error)
	// Update replaces the fields of contact id that are set in c.
	Update(ctx context.Context, id string, c models.Contact) (models.Contact, error)
	// Get returns contact id, or [ErrContactNotFound].
	Get(ctx context.Context, id string) (models.Contact, error)
	// List returns one page of contacts.
	List(ctx context.Context, q models.ListContactsQuery) ([]models.Contact, error)
	// Search finds contacts by exact name through the name search token.
	Search(ctx context.Context, name string) ([]models.SearchResult, error)
}
