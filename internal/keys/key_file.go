package keys

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-contact-keeper/internal/crypto"
)

// KeyFile is the JSON shape of a key file and of `keys generate` output.
type KeyFile struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey,omitempty"`
}

// NewKeyFile exports kp. The private key is included only when
// withPrivate is set.
func NewKeyFile(kp crypto.KeyPair, withPrivate bool) KeyFile {
	var kf KeyFile
	if kp.CanEncrypt() {
		kf.PublicKey = kp.Public().String()
	}
	if withPrivate {
		if priv := kp.Private(); priv != nil {
			kf.PrivateKey = priv.Hex()
		}
	}
	return kf
}

// KeyPair parses the hex keys of the file.
func (kf KeyFile) KeyPair() (crypto.KeyPair, error) {
	return parseKeyPair(kf.PublicKey, kf.PrivateKey)
}

func readKeyFile(path string) (KeyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KeyFile{}, fmt.Errorf("error reading key file: %w", err)
	}

	var kf KeyFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return KeyFile{}, fmt.Errorf("%w: decode key file: %v", ErrInvalidKeyMaterial, err)
	}
	return kf, nil
}

// WriteKeyFile writes kf to path, readable by the owner only.
func WriteKeyFile(path string, kf KeyFile) error {
	data, err := json.MarshalIndent(kf, "", "  ")
	if err != nil {
		return fmt.Errorf("encode key file: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("error writing key file: %w", err)
	}
	return nil
}

// parseKeyPair builds a pair from hex strings. Both may be empty.
func parseKeyPair(pubHex, privHex string) (crypto.KeyPair, error) {
	var pub crypto.PublicKey
	if pubHex != "" {
		p, err := crypto.ParsePublicKey(pubHex)
		if err != nil {
			return crypto.KeyPair{}, fmt.Errorf("%w: %w", ErrInvalidKeyMaterial, err)
		}
		pub = p
	}

	if privHex == "" {
		return crypto.NewPublicKeyPair(pub), nil
	}

	priv, err := crypto.ParsePrivateKey(privHex)
	if err != nil {
		return crypto.KeyPair{}, fmt.Errorf("%w: %w", ErrInvalidKeyMaterial, err)
	}
	kp, err := crypto.NewKeyPair(pub, priv)
	if err != nil {
		return crypto.KeyPair{}, fmt.Errorf("%w: %w", ErrInvalidKeyMaterial, err)
	}
	return kp, nil
}
