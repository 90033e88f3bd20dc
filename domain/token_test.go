package domain

import (
	"strings"
	"testing"

	"line-relay/errors"

	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	req := require.New(t)
	raw := strings.Repeat("a", TokenSize)

	token, err := ParseToken(raw)

	req.NoError(err)
	req.Equal(raw, token.String())
	req.False(token.IsZero())
}

func TestParseToken_WrongLength(t *testing.T) {
	req := require.New(t)

	for _, raw := range []string{"", "short", strings.Repeat("b", TokenSize+1)} {
		_, err := ParseToken(raw)
		req.ErrorIs(err, errors.ErrInvalidToken)
	}
}

func TestParseToken_CountsBytesNotRunes(t *testing.T) {
	req := require.New(t)
	// 32 two-byte runes make exactly 64 bytes
	raw := strings.Repeat("é", 32)

	token, err := ParseToken(raw)

	req.NoError(err)
	req.Equal(raw, token.String())
}

func TestToken_Fingerprint(t *testing.T) {
	req := require.New(t)
	t1, _ := ParseToken(strings.Repeat("a", TokenSize))
	t2, _ := ParseToken(strings.Repeat("b", TokenSize))

	req.Len(t1.Fingerprint(), 12)
	req.Equal(t1.Fingerprint(), t1.Fingerprint())
	req.NotEqual(t1.Fingerprint(), t2.Fingerprint())
	req.NotContains(t1.Fingerprint(), "aaaa")
}

func TestOccupancy_Partner(t *testing.T) {
	req := require.New(t)
	t1, _ := ParseToken(strings.Repeat("a", TokenSize))
	t2, _ := ParseToken(strings.Repeat("b", TokenSize))

	partner, ok := Occupancy{Outcome: SecondOccupant, Occupants: []Token{t1, t2}}.Partner(t2)
	req.True(ok)
	req.Equal(t1, partner)

	_, ok = Occupancy{Outcome: FirstOccupant, Occupants: []Token{t1}}.Partner(t1)
	req.False(ok)

	req.True(IsOccupant([]Token{t1, t2}, t1))
	req.False(IsOccupant([]Token{t1}, t2))
}
