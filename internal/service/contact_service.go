package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/graphql"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// MaxPageSize caps the limit of a single contacts page.
const MaxPageSize = 100

type contactService struct {
	client graphql.Client
	logger *logger.Logger
}

// NewContactService creates a ContactService that talks through client.
func NewContactService(client graphql.Client, log *logger.Logger) ContactService {
	if log == nil {
		log = logger.Nop()
	}
	return &contactService{client: client, logger: log}
}

func (s *contactService) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	input, err := contactInput(c)
	if err != nil {
		return models.Contact{}, err
	}

	var out models.Contact
	err = s.execute(ctx, adapter.Operation{
		Name:      adapter.CreateContactName,
		Query:     createContactQuery,
		Variables: map[string]any{"createContactInput": input},
	}, &out)
	if err != nil {
		return models.Contact{}, err
	}
	return out, nil
}

func (s *contactService) Update(ctx context.Context, id string, c models.Contact) (models.Contact, error) {
	if id == "" {
		return models.Contact{}, ErrEmptyContactID
	}
	input, err := contactInput(c)
	if err != nil {
		return models.Contact{}, err
	}

	var out models.Contact
	err = s.execute(ctx, adapter.Operation{
		Name:      adapter.UpdateContactName,
		Query:     updateContactQuery,
		Variables: map[string]any{"id": id, "updateContactInput": input},
	}, &out)
	if err != nil {
		return models.Contact{}, err
	}
	return out, nil
}

func (s *contactService) Get(ctx context.Context, id string) (models.Contact, error) {
	if id == "" {
		return models.Contact{}, ErrEmptyContactID
	}

	var out models.Contact
	err := s.execute(ctx, adapter.Operation{
		Name:      adapter.ContactName,
		Query:     contactQuery,
		Variables: map[string]any{"id": id},
	}, &out)
	if err != nil {
		return models.Contact{}, err
	}
	return out, nil
}

func (s *contactService) List(ctx context.Context, q models.ListContactsQuery) ([]models.Contact, error) {
	if q.Offset < 0 || q.Limit < 0 || q.Limit > MaxPageSize {
		return nil, fmt.Errorf("%w: offset %d, limit %d", ErrInvalidPaging, q.Offset, q.Limit)
	}

	vars := map[string]any{"offset": q.Offset}
	if q.Limit > 0 {
		vars["limit"] = q.Limit
	}

	var out []models.Contact
	err := s.execute(ctx, adapter.Operation{
		Name:      adapter.ContactsName,
		Query:     contactsQuery,
		Variables: vars,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *contactService) Search(ctx context.Context, name string) ([]models.SearchResult, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	var out []models.SearchResult
	err := s.execute(ctx, adapter.Operation{
		Name:      adapter.SearchName,
		Query:     searchQuery,
		Variables: map[string]any{"name": name},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// execute runs op and decodes data[op.Name] into dst. A null payload is
// reported as ErrContactNotFound.
func (s *contactService) execute(ctx context.Context, op adapter.Operation, dst any) error {
	resp, err := s.client.Execute(ctx, op)
	if err != nil {
		return fmt.Errorf("%s: %w", op.Name, err)
	}

	payload, ok := resp.Data[op.Name]
	if !ok || payload == nil {
		return fmt.Errorf("%s: %w", op.Name, ErrContactNotFound)
	}

	if err := remarshal(payload, dst); err != nil {
		s.logger.Error().
			Err(err).
			Str("func", "contactService.execute").
			Str("operation", op.Name).
			Msg("response data does not match the contact shape")
		return fmt.Errorf("%s: %w: %v", op.Name, ErrUnexpectedData, err)
	}
	return nil
}

// contactInput converts c into the generic record the adapters work on.
// Identity, search tokens and timestamps are owned by the API and the
// encryption layer, so they are dropped from the input.
func contactInput(c models.Contact) (map[string]any, error) {
	c.ID = ""
	c.OwnerID = ""
	c.Hmacs = nil
	c.CreatedAt = ""
	c.UpdatedAt = ""

	var input map[string]any
	if err := remarshal(c, &input); err != nil {
		return nil, fmt.Errorf("encode contact input: %w", err)
	}
	return input, nil
}

func remarshal(src, dst any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
