package container

import (
	"encoding/asn1"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEKRoundTrip(t *testing.T) {
	ek := make([]byte, 1184) // ML-KEM-768 ek size
	for i := range ek {
		ek[i] = byte(i)
	}

	der, err := EncodeEK("ML-KEM-768", ek)
	require.NoError(t, err)

	name, got, err := DecodeEK(der)
	require.NoError(t, err)
	require.Equal(t, "ML-KEM-768", name)
	require.Equal(t, ek, got)
}

func TestEncodeDecodeDKRoundTrip(t *testing.T) {
	dk := make([]byte, 2400) // ML-KEM-768 dk size
	for i := range dk {
		dk[i] = byte(255 - i%256)
	}

	der, err := EncodeDK("ML-KEM-1024", dk)
	require.NoError(t, err)

	name, got, err := DecodeDK(der)
	require.NoError(t, err)
	require.Equal(t, "ML-KEM-1024", name)
	require.Equal(t, dk, got)
}

func TestEncodeRejectsUnknownParameterSet(t *testing.T) {
	_, err := EncodeEK("Kyber512", make([]byte, 32))
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestDecodeRejectsUnknownOID(t *testing.T) {
	spki := subjectPublicKeyInfo{
		Algorithm: algorithmIdentifier{Algorithm: asn1.ObjectIdentifier{1, 2, 3, 4, 5}},
		PublicKey: asn1.BitString{Bytes: make([]byte, 32), BitLength: 256},
	}
	der, err := asn1.Marshal(spki)
	require.NoError(t, err)

	_, _, err = DecodeEK(der)
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}
