// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keys supplies the process key pair of the encryption layer and
// manages key pairs in the local key store.
package keys

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/crypto"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
)

// Source names the place a key pair was loaded from.
type Source string

const (
	SourceNone   Source = "none"
	SourceStatic Source = "static"
	SourceFile   Source = "file"
	SourceStore  Source = "store"
)

// Provider loads the key pair of the current actor. Sources are tried in
// order: static hex keys, key file, key store. The first source that is
// configured wins, even when it only has a public key.
type Provider struct {
	keys    config.ClientKeys
	actor   string
	repo    store.KeyPairRepository
	wrapper crypto.KeyWrapper
	logger  *logger.Logger
}

// NewProvider creates a Provider. repo and wrapper may be nil; without a
// wrapper stored private keys stay locked and only their public key is
// used.
func NewProvider(keys config.ClientKeys, actor string, repo store.KeyPairRepository, wrapper crypto.KeyWrapper, log *logger.Logger) *Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &Provider{keys: keys, actor: actor, repo: repo, wrapper: wrapper, logger: log}
}

// ResolveActor returns actor, or else the subject of the bearer token.
// An unparsable token yields "".
func ResolveActor(actor, token string, log *logger.Logger) string {
	if actor != "" || token == "" {
		return actor
	}
	sub, err := utils.ParseSubjectFromJWT(token)
	if err != nil {
		log.Debug().Err(err).Str("func", "ResolveActor").Msg("no actor in bearer token")
		return ""
	}
	return sub
}

// Actor returns the actor whose stored key pair is used.
func (p *Provider) Actor() string {
	return p.actor
}

// KeyPair returns the key pair and its source. A pair without a private
// key is a valid result: the encryption layer then runs in bypass mode.
// Errors are reserved for broken key material and store failures.
func (p *Provider) KeyPair(ctx context.Context) (crypto.KeyPair, Source, error) {
	kp, src, err := p.load(ctx)
	if err != nil {
		return crypto.KeyPair{}, SourceNone, err
	}

	if !kp.CanDecrypt() {
		p.logger.Info().
			Str("func", "Provider.KeyPair").
			Str("source", string(src)).
			Bool("public_key", kp.CanEncrypt()).
			Msg("no private key available, encryption layer runs as passthrough")
	} else {
		p.logger.Debug().
			Str("func", "Provider.KeyPair").
			Str("source", string(src)).
			Msg("key pair loaded")
	}
	return kp, src, nil
}

func (p *Provider) load(ctx context.Context) (crypto.KeyPair, Source, error) {
	if p.keys.PrivateKey != "" || p.keys.PublicKey != "" {
		kp, err := parseKeyPair(p.keys.PublicKey, p.keys.PrivateKey)
		if err != nil {
			return crypto.KeyPair{}, SourceStatic, fmt.Errorf("static keys: %w", err)
		}
		return kp, SourceStatic, nil
	}

	if p.keys.File != "" {
		kf, err := readKeyFile(p.keys.File)
		if err != nil {
			return crypto.KeyPair{}, SourceFile, err
		}
		kp, err := kf.KeyPair()
		if err != nil {
			return crypto.KeyPair{}, SourceFile, fmt.Errorf("key file %s: %w", p.keys.File, err)
		}
		return kp, SourceFile, nil
	}

	if p.repo == nil || p.actor == "" {
		return crypto.KeyPair{}, SourceNone, nil
	}
	return p.fromStore(ctx)
}

func (p *Provider) fromStore(ctx context.Context) (crypto.KeyPair, Source, error) {
	rec, err := p.repo.GetLatestKeyPair(ctx, p.actor)
	if errors.Is(err, store.ErrKeyPairNotFound) {
		return crypto.KeyPair{}, SourceNone, nil
	}
	if err != nil {
		return crypto.KeyPair{}, SourceStore, fmt.Errorf("error loading key pair of %s: %w", p.actor, err)
	}

	if p.wrapper == nil {
		p.logger.Info().
			Str("func", "Provider.fromStore").
			Str("key_id", rec.KeyID).
			Msg("no passphrase or kms url configured, stored private key stays locked")
		kp, err := parseKeyPair(rec.PublicKey, "")
		return kp, SourceStore, err
	}

	if rec.WrapMethod != p.wrapper.Method() {
		return crypto.KeyPair{}, SourceStore, fmt.Errorf("%w: key %s is wrapped with %q, configured %q",
			ErrWrapMethodMismatch, rec.KeyID, rec.WrapMethod, p.wrapper.Method())
	}

	wrapped, err := base64.StdEncoding.DecodeString(rec.WrappedPrivateKey)
	if err != nil {
		return crypto.KeyPair{}, SourceStore, fmt.Errorf("%w: wrapped key %s: %v", ErrInvalidKeyMaterial, rec.KeyID, err)
	}
	plain, err := p.wrapper.Unwrap(ctx, wrapped)
	if err != nil {
		return crypto.KeyPair{}, SourceStore, fmt.Errorf("unlock key %s: %w", rec.KeyID, err)
	}

	kp, err := parseKeyPair(rec.PublicKey, string(plain))
	if err != nil {
		return crypto.KeyPair{}, SourceStore, fmt.Errorf("key %s: %w", rec.KeyID, err)
	}
	return kp, SourceStore, nil
}
