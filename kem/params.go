package kem

import (
	"fmt"

	"github.com/latticego/mlkem/kpke"
)

// ParameterSetLiteral is the public, unchecked description of a KEM
// instance: a plain data bag a caller can construct by hand. A
// ParameterSet is only reachable through validation.
type ParameterSetLiteral struct {
	Name    string
	K       int
	Eta1    int
	Eta2    int
	DU      int
	DV      int
	Variant kpke.Variant
}

// ParameterSet is a validated ParameterSetLiteral. The zero value is not
// usable; construct one with NewParameterSetFromLiteral or one of the
// named presets below.
type ParameterSet struct {
	lit ParameterSetLiteral
	pke kpke.Params
}

// NewParameterSetFromLiteral validates lit's shape (k in {2,3,4}, eta1 in
// {2,3}, eta2=2, du in {10,11}, dv in {4,5}) and returns the ParameterSet
// built from it.
func NewParameterSetFromLiteral(lit ParameterSetLiteral) (ParameterSet, error) {
	if lit.K < 2 || lit.K > 4 {
		return ParameterSet{}, fmt.Errorf("kem: invalid k=%d", lit.K)
	}
	if lit.Eta1 != 2 && lit.Eta1 != 3 {
		return ParameterSet{}, fmt.Errorf("kem: invalid eta1=%d", lit.Eta1)
	}
	if lit.Eta2 != 2 {
		return ParameterSet{}, fmt.Errorf("kem: invalid eta2=%d", lit.Eta2)
	}
	if lit.DU != 10 && lit.DU != 11 {
		return ParameterSet{}, fmt.Errorf("kem: invalid du=%d", lit.DU)
	}
	if lit.DV != 4 && lit.DV != 5 {
		return ParameterSet{}, fmt.Errorf("kem: invalid dv=%d", lit.DV)
	}
	return ParameterSet{
		lit: lit,
		pke: kpke.Params{K: lit.K, Eta1: lit.Eta1, Eta2: lit.Eta2, DU: lit.DU, DV: lit.DV, Variant: lit.Variant},
	}, nil
}

// Literal returns the ParameterSetLiteral this ParameterSet was built from.
func (p ParameterSet) Literal() ParameterSetLiteral { return p.lit }

// Name is the preset's human-readable identifier, e.g. "ML-KEM-768".
func (p ParameterSet) Name() string { return p.lit.Name }

// EKSize, DKSize and CiphertextSize are the byte sizes of this parameter
// set's encapsulation key, decapsulation key, and ciphertext respectively.
func (p ParameterSet) EKSize() int { return p.pke.EKSize() }
func (p ParameterSet) DKSize() int { return 768*p.lit.K + 96 }
func (p ParameterSet) CiphertextSize() int { return p.pke.CiphertextSize() }

func mustParams(lit ParameterSetLiteral) ParameterSet {
	p, err := NewParameterSetFromLiteral(lit)
	if err != nil {
		panic(err) // unreachable: every literal below is constant and valid
	}
	return p
}

// ML-KEM presets, FIPS 203 Sec 8 Table 2.
func MLKEM512() ParameterSet {
	return mustParams(ParameterSetLiteral{Name: "ML-KEM-512", K: 2, Eta1: 3, Eta2: 2, DU: 10, DV: 4, Variant: kpke.MLKEM})
}

func MLKEM768() ParameterSet {
	return mustParams(ParameterSetLiteral{Name: "ML-KEM-768", K: 3, Eta1: 2, Eta2: 2, DU: 10, DV: 4, Variant: kpke.MLKEM})
}

func MLKEM1024() ParameterSet {
	return mustParams(ParameterSetLiteral{Name: "ML-KEM-1024", K: 4, Eta1: 2, Eta2: 2, DU: 11, DV: 5, Variant: kpke.MLKEM})
}

// Kyber round-3 presets, same algebraic shapes as their ML-KEM
// counterparts but tagged kpke.Kyber so KeyGen and the KEM wrap follow
// the round-3 wire format instead of FIPS 203's.
func Kyber512() ParameterSet {
	return mustParams(ParameterSetLiteral{Name: "Kyber512", K: 2, Eta1: 3, Eta2: 2, DU: 10, DV: 4, Variant: kpke.Kyber})
}

func Kyber768() ParameterSet {
	return mustParams(ParameterSetLiteral{Name: "Kyber768", K: 3, Eta1: 2, Eta2: 2, DU: 10, DV: 4, Variant: kpke.Kyber})
}

func Kyber1024() ParameterSet {
	return mustParams(ParameterSetLiteral{Name: "Kyber1024", K: 4, Eta1: 2, Eta2: 2, DU: 11, DV: 5, Variant: kpke.Kyber})
}
