// Package domain contains core concepts of the relay.
// This file defines the participant Token and its invariants.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"encoding/hex"
	"fmt"

	"line-relay/errors"

	"golang.org/x/crypto/blake2b"
)

const TokenSize = 64

// Token identifies one participant for the duration of a connection.
// Equality is byte-exact; there is no authentication behind it.
type Token [TokenSize]byte

func ParseToken(raw string) (Token, error) {
	var t Token
	if len(raw) != TokenSize {
		return t, fmt.Errorf("%w: got %d bytes", errors.ErrInvalidToken, len(raw))
	}
	copy(t[:], raw)
	return t, nil
}

func TokenFromBytes(b []byte) (Token, error) {
	return ParseToken(string(b))
}

func (t Token) String() string {
	return string(t[:])
}

func (t Token) IsZero() bool {
	return t == Token{}
}

// Fingerprint returns a short digest of the token, safe to put in logs.
func (t Token) Fingerprint() string {
	sum := blake2b.Sum256(t[:])
	return hex.EncodeToString(sum[:6])
}
