package tokenstore

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/jobportal/portal/internal/core/domain"
)

const (
	keySize   = 32
	nonceSize = 24
)

// ErrSealBroken is returned for a sealed token that does not open with the
// configured key. It matches domain.ErrTokenUnreadable.
var ErrSealBroken = fmt.Errorf("sealed token cannot be opened: %w", domain.ErrTokenUnreadable)

// Sealer encrypts tokens with NaCl secretbox. Sealed tokens are
// base64(nonce || box).
type Sealer struct {
	key [keySize]byte
}

// ParseSealKey builds a Sealer from a 64-character hex key.
func ParseSealKey(key string) (*Sealer, error) {
	b, err := hex.DecodeString(strings.TrimSpace(key))
	if err != nil {
		return nil, fmt.Errorf("seal key: %w", err)
	}
	if len(b) != keySize {
		return nil, fmt.Errorf("seal key: want %d bytes, got %d", keySize, len(b))
	}
	var s Sealer
	copy(s.key[:], b)
	return &s, nil
}

func (s *Sealer) Seal(token string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("seal nonce: %w", err)
	}
	box := secretbox.Seal(nonce[:], []byte(token), &nonce, &s.key)
	return base64.StdEncoding.EncodeToString(box), nil
}

func (s *Sealer) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrSealBroken
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", ErrSealBroken
	}
	return string(plain), nil
}
