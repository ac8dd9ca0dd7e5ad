// Package container encodes ek and dk as PKCS#8/SPKI ASN.1 byte
// containers: SubjectPublicKeyInfo for an encapsulation key, PrivateKeyInfo
// for a decapsulation key, each tagged with the ML-KEM algorithm OID its
// parameter set dictates. Classical ASN.1 structure is not the
// interesting part of this system; only the exact byte layout matters,
// so this package is a thin wrapper over stdlib encoding/asn1.
package container

import (
	"encoding/asn1"
	"errors"
)

// ErrUnknownAlgorithm is returned when an OID in a decoded container does
// not match any known ML-KEM parameter set.
var ErrUnknownAlgorithm = errors.New("container: unknown algorithm OID")

var oidByName = map[string]asn1.ObjectIdentifier{
	"ML-KEM-512":  {2, 16, 840, 1, 101, 3, 4, 4, 1},
	"ML-KEM-768":  {2, 16, 840, 1, 101, 3, 4, 4, 2},
	"ML-KEM-1024": {2, 16, 840, 1, 101, 3, 4, 4, 3},
}

func nameByOID(oid asn1.ObjectIdentifier) (string, bool) {
	for name, o := range oidByName {
		if o.Equal(oid) {
			return name, true
		}
	}
	return "", false
}

type algorithmIdentifier struct {
	Algorithm asn1.ObjectIdentifier
}

// subjectPublicKeyInfo mirrors the PKCS#8 SubjectPublicKeyInfo structure:
// an algorithm identifier plus the key material as a BIT STRING.
type subjectPublicKeyInfo struct {
	Algorithm algorithmIdentifier
	PublicKey asn1.BitString
}

// privateKeyInfo mirrors the PKCS#8 PrivateKeyInfo structure: a version,
// an algorithm identifier, and the key material as an OCTET STRING.
type privateKeyInfo struct {
	Version    int
	Algorithm  algorithmIdentifier
	PrivateKey []byte
}

// EncodeEK wraps an ek byte string as a DER SubjectPublicKeyInfo tagged
// with the OID for the named parameter set (e.g. "ML-KEM-768").
func EncodeEK(paramSetName string, ek []byte) ([]byte, error) {
	oid, ok := oidByName[paramSetName]
	if !ok {
		return nil, ErrUnknownAlgorithm
	}
	spki := subjectPublicKeyInfo{
		Algorithm: algorithmIdentifier{Algorithm: oid},
		PublicKey: asn1.BitString{Bytes: ek, BitLength: len(ek) * 8},
	}
	return asn1.Marshal(spki)
}

// DecodeEK parses a DER SubjectPublicKeyInfo, returning the parameter set
// name its OID names and the raw ek bytes.
func DecodeEK(der []byte) (paramSetName string, ek []byte, err error) {
	var spki subjectPublicKeyInfo
	if _, err := asn1.Unmarshal(der, &spki); err != nil {
		return "", nil, err
	}
	name, ok := nameByOID(spki.Algorithm.Algorithm)
	if !ok {
		return "", nil, ErrUnknownAlgorithm
	}
	return name, spki.PublicKey.Bytes, nil
}

// EncodeDK wraps a dk byte string as a DER PrivateKeyInfo tagged with the
// OID for the named parameter set.
func EncodeDK(paramSetName string, dk []byte) ([]byte, error) {
	oid, ok := oidByName[paramSetName]
	if !ok {
		return nil, ErrUnknownAlgorithm
	}
	pki := privateKeyInfo{
		Version:    0,
		Algorithm:  algorithmIdentifier{Algorithm: oid},
		PrivateKey: dk,
	}
	return asn1.Marshal(pki)
}

// DecodeDK parses a DER PrivateKeyInfo, returning the parameter set name
// its OID names and the raw dk bytes.
func DecodeDK(der []byte) (paramSetName string, dk []byte, err error) {
	var pki privateKeyInfo
	if _, err := asn1.Unmarshal(der, &pki); err != nil {
		return "", nil, err
	}
	name, ok := nameByOID(pki.Algorithm.Algorithm)
	if !ok {
		return "", nil, ErrUnknownAlgorithm
	}
	return name, pki.PrivateKey, nil
}
