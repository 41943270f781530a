package token_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/token"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	tok, err := token.Generate()
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	raw, err := base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err)
	assert.Len(t, raw, token.Size)
}

func TestGenerate_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 100 {
		tok, err := token.Generate()
		require.NoError(t, err)

		_, dup := seen[tok]
		require.False(t, dup, "generated tokens must not repeat")
		seen[tok] = struct{}{}
	}
}

func TestDeriveLookupID_Deterministic(t *testing.T) {
	t.Parallel()

	tok, err := token.Generate()
	require.NoError(t, err)

	first, err := token.DeriveLookupID(tok)
	require.NoError(t, err)
	second, err := token.DeriveLookupID(tok)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDeriveLookupID_OneWay(t *testing.T) {
	t.Parallel()

	tok, err := token.Generate()
	require.NoError(t, err)

	id, err := token.DeriveLookupID(tok)
	require.NoError(t, err)

	// Hex SHA-256 output: fixed 64 chars, never equal to the input encoding.
	assert.Len(t, id, 64)
	assert.NotEqual(t, tok, id)
}

func TestDeriveLookupID_DistinctTokens(t *testing.T) {
	t.Parallel()

	tok1, err := token.Generate()
	require.NoError(t, err)
	tok2, err := token.Generate()
	require.NoError(t, err)

	id1, err := token.DeriveLookupID(tok1)
	require.NoError(t, err)
	id2, err := token.DeriveLookupID(tok2)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}

func TestDeriveLookupID_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tok  string
	}{
		{name: "empty", tok: ""},
		{name: "not base64url", tok: "not a token!!!"},
		{name: "too short", tok: base64.RawURLEncoding.EncodeToString([]byte("short"))},
		{name: "too long", tok: base64.RawURLEncoding.EncodeToString(make([]byte, 64))},
		{name: "standard base64 padding", tok: "AAAA===="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := token.DeriveLookupID(tt.tok)
			require.Error(t, err)
			assert.ErrorIs(t, err, token.ErrMalformed)
		})
	}
}
