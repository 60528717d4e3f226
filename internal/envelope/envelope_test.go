package envelope

import (
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/models"
)

func sampleSecret() models.SealedSecret {
	return models.SealedSecret{
		ID:             "0190a6f2-8c1e-7b3a-9d5e-1f2a3b4c5d6e",
		KeyID:          "payments",
		Algorithm:      models.AES256GCM,
		Nonce:          []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		Ciphertext:     []byte("ciphertext-with-tag"),
		AssociatedData: []byte("label"),
		CreatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRoundTrip(t *testing.T) {
	s := sampleSecret()

	encoded, err := EncodeString(s)
	require.NoError(t, err)

	got, err := DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestMarshal_Deterministic(t *testing.T) {
	a, err := Marshal(sampleSecret())
	require.NoError(t, err)
	b, err := Marshal(sampleSecret())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMarshal_UsesIntegerKeys(t *testing.T) {
	b, err := Marshal(sampleSecret())
	require.NoError(t, err)

	var raw map[uint64]any
	require.NoError(t, cbor.Unmarshal(b, &raw))
	for k := uint64(1); k <= 8; k++ {
		assert.Contains(t, raw, k)
	}
	assert.Equal(t, uint64(Version), raw[1])
	assert.Equal(t, "payments", raw[3])
}

func TestMarshal_OmitsEmptyNonce(t *testing.T) {
	s := sampleSecret()
	s.Algorithm = models.X25519Age
	s.Nonce = nil
	s.AssociatedData = nil

	b, err := Marshal(s)
	require.NoError(t, err)

	var raw map[uint64]any
	require.NoError(t, cbor.Unmarshal(b, &raw))
	assert.NotContains(t, raw, uint64(5))
	assert.NotContains(t, raw, uint64(7))

	got, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Empty(t, got.Nonce)
}

func TestUnmarshal_Errors(t *testing.T) {
	versionTwo, err := cbor.Marshal(map[uint64]any{1: 2, 3: "k", 4: "AES-256-GCM", 6: []byte{1}})
	require.NoError(t, err)

	missingKey, err := cbor.Marshal(map[uint64]any{1: 1, 4: "AES-256-GCM", 6: []byte{1}})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "garbage", data: []byte{0xff, 0x00}, wantErr: ErrMalformed},
		{name: "empty", data: nil, wantErr: ErrMalformed},
		{name: "future version", data: versionTwo, wantErr: ErrUnsupportedVersion},
		{name: "missing key id", data: missingKey, wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeString_BadBase64(t *testing.T) {
	_, err := DecodeString("%%%")
	assert.ErrorIs(t, err, ErrMalformed)
}
