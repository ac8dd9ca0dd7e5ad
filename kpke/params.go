// Package kpke implements K-PKE, the CPA-secure public-key encryption
// scheme FIPS 203 and Kyber round-3 both build their KEM on top of:
// KeyGen, Encrypt, and Decrypt over the ring/lattice layers.
package kpke

// Variant distinguishes the two wire formats this module supports. They
// are not interchangeable and must be picked explicitly and documented,
// never inferred from byte sizes.
type Variant int

const (
	// MLKEM is FIPS 203: K-PKE.KeyGen appends the byte k to its seed
	// hash input for domain separation.
	MLKEM Variant = iota
	// Kyber is CRYSTALS-Kyber round-3: K-PKE.KeyGen does not append k.
	Kyber
)

// Params is the fixed algebraic shape of a K-PKE instance: the module
// rank k, the two noise-distribution widths eta1/eta2, and the
// ciphertext compression widths du/dv.
type Params struct {
	K       int
	Eta1    int
	Eta2    int
	DU      int
	DV      int
	Variant Variant
}

// EKSize is the byte length of an ek_pke: encode_12(t-hat) || rho.
func (p Params) EKSize() int {
	return 384*p.K + 32
}

// DKSize is the byte length of a dk_pke: encode_12(s-hat).
func (p Params) DKSize() int {
	return 384 * p.K
}

// CiphertextSize is the byte length of a K-PKE ciphertext.
func (p Params) CiphertextSize() int {
	return 32 * (p.DU*p.K + p.DV)
}
