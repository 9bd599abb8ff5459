package keys

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/crypto"
)

// OpenWrapper returns the key wrapper configured in keys: a KMS keeper for
// KMSURL, an Argon2id wrapper for Passphrase, or nil when neither is set.
// The returned close function is never nil.
func OpenWrapper(ctx context.Context, keys config.ClientKeys) (crypto.KeyWrapper, func() error, error) {
	noop := func() error { return nil }

	switch {
	case keys.KMSURL != "":
		w, err := crypto.OpenKMSWrapper(ctx, keys.KMSURL)
		if err != nil {
			return nil, noop, err
		}
		return w, w.Close, nil
	case keys.Passphrase != "":
		w, err := crypto.NewPassphraseWrapper(keys.Passphrase)
		if err != nil {
			return nil, noop, err
		}
		return w, noop, nil
	}
	return nil, noop, nil
}
