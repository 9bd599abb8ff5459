// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/crypto"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/record"
)

// Operation names of the contact adapters.
const (
	CreateContactName = "createContact"
	UpdateContactName = "updateContact"
	ContactName       = "contact"
	ContactsName      = "contacts"
)

// HmacsKey is the reserved sibling key carrying search tokens.
const HmacsKey = "hmacs"

// contactAdapter encrypts a contact payload in the operation variables and
// decrypts the contact payload of the response. An empty input means the
// adapter does not touch outbound variables.
type contactAdapter struct {
	name string
	// input is the variables key holding the contact to encrypt.
	input string
	// output is the data key holding the returned contact(s).
	output string
	// many is set when output holds a list of contacts.
	many bool

	fields      record.FieldSet
	transformer *record.Transformer
	tokens      crypto.TokenGenerator
	strict      bool
	log         *logger.Logger
}

func (a *contactAdapter) Name() string {
	return a.name
}

// Forward computes the search tokens from the plaintext name, then
// encrypts the designated fields. Tokens are attached before encryption
// and are never encrypted.
func (a *contactAdapter) Forward(ctx context.Context, op Operation) (Operation, error) {
	if a.input == "" {
		return op, nil
	}
	input, ok := op.Variables[a.input].(map[string]any)
	if !ok {
		return op, nil
	}

	input = record.Clone(input)
	if name, _ := input["name"].(string); name != "" {
		if hmacs := a.tokens.Tokens(map[string]string{"name": name}); hmacs != nil {
			input[HmacsKey] = toAnyMap(hmacs)
		}
	}

	res := a.transformer.Apply(ctx, input, a.fields, record.Encrypt)
	if res.Failed > 0 && a.strict {
		a.log.Error().
			Str("func", "contactAdapter.Forward").
			Str("operation", a.name).
			Int("failed", res.Failed).
			Msg("refusing to send contact with unencrypted fields")
		return op, fmt.Errorf("%w: %s: %w", ErrPlaintextLeak, a.name, res.Err())
	}

	out := op
	out.Variables = cloneShallow(op.Variables)
	out.Variables[a.input] = input
	return out, nil
}

// Map decrypts the returned contact, or every contact of a list payload.
func (a *contactAdapter) Map(ctx context.Context, resp Response) Response {
	if resp.Data == nil {
		return resp
	}

	if !a.many {
		if c, ok := resp.Data[a.output].(map[string]any); ok {
			a.transformer.Apply(ctx, c, a.fields, record.Decrypt)
		}
		return resp
	}

	items, ok := resp.Data[a.output].([]any)
	if !ok {
		return resp
	}
	for i, item := range items {
		c, ok := item.(map[string]any)
		if !ok {
			a.log.Debug().
				Str("func", "contactAdapter.Map").
				Str("operation", a.name).
				Int("index", i).
				Msgf("skipping non-object entry %T", item)
			continue
		}
		a.transformer.Apply(ctx, c, a.fields, record.Decrypt)
	}
	return resp
}

func toAnyMap(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneShallow(m map[string]any) map[string]any {
	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
