package adapter

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/crypto"
	"github.com/MKhiriev/go-contact-keeper/internal/record"
)

// SearchName is the operation name of the search adapter.
const SearchName = "search"

// searchAdapter tokenizes the query name and decrypts only the name of
// each result. The query name itself is sent as is.
type searchAdapter struct {
	fields      record.FieldSet
	transformer *record.Transformer
	tokens      crypto.TokenGenerator
}

func (a *searchAdapter) Name() string {
	return SearchName
}

func (a *searchAdapter) Forward(_ context.Context, op Operation) (Operation, error) {
	name, _ := op.Variables["name"].(string)
	if name == "" {
		return op, nil
	}
	token := a.tokens.Token(name)
	if token == "" {
		return op, nil
	}

	out := op
	out.Variables = cloneShallow(op.Variables)
	out.Variables[HmacsKey] = map[string]any{"name": token}
	return out, nil
}

func (a *searchAdapter) Map(ctx context.Context, resp Response) Response {
	items, ok := resp.Data[SearchName].([]any)
	if !ok {
		return resp
	}
	for _, item := range items {
		if entry, ok := item.(map[string]any); ok {
			a.transformer.Apply(ctx, entry, a.fields, record.Decrypt)
		}
	}
	return resp
}
