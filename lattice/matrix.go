// Package lattice implements the module layer over ring.Poly: rectangular
// matrices and vectors of ring elements, matrix-matrix and matrix-vector
// multiplication, and the bulk encode/compress/NTT operations K-PKE needs
// to move between a vector of polynomials and its byte encoding.
//
// A vector of length k is represented as a Matrix with Cols()==1, rather
// than a distinct type.
package lattice

import (
	"errors"

	"github.com/latticego/mlkem/ring"
)

// ErrShapeMismatch is returned when an operation's operands have
// incompatible shapes (e.g. Add on differently-sized matrices, or MatMul
// where a.Cols() != b.Rows()).
var ErrShapeMismatch = errors.New("lattice: shape mismatch")

// Matrix is an m-by-n array of ring.Poly elements. Transpose is an O(1)
// view: it flips a boolean flag and swaps how (i,j) indexes the shared
// backing storage, rather than copying it.
type Matrix struct {
	rows, cols int
	elems      []ring.Poly
	transposed bool
}

// New allocates a zero (rows x cols) matrix with every element the zero
// polynomial of the given domain.
func New(rows, cols int, domain ring.Domain) Matrix {
	elems := make([]ring.Poly, rows*cols)
	for i := range elems {
		elems[i] = ring.Zero(domain)
	}
	return Matrix{rows: rows, cols: cols, elems: elems}
}

// NewVector allocates a length-k column vector, i.e. a (k x 1) Matrix.
func NewVector(k int, domain ring.Domain) Matrix {
	return New(k, 1, domain)
}

// Rows returns the logical row count, accounting for the transpose view.
func (m Matrix) Rows() int {
	if m.transposed {
		return m.cols
	}
	return m.rows
}

// Cols returns the logical column count, accounting for the transpose view.
func (m Matrix) Cols() int {
	if m.transposed {
		return m.rows
	}
	return m.cols
}

// At returns the element at logical position (i,j).
func (m Matrix) At(i, j int) ring.Poly {
	if m.transposed {
		i, j = j, i
	}
	return m.elems[i*m.cols+j]
}

// Set writes the element at logical position (i,j).
func (m Matrix) Set(i, j int, p ring.Poly) {
	if m.transposed {
		i, j = j, i
	}
	m.elems[i*m.cols+j] = p
}

// Transpose returns a view of m with rows and columns swapped. The
// backing storage is shared with m; no element is copied.
func (m Matrix) Transpose() Matrix {
	t := m
	t.transposed = !m.transposed
	return t
}

// domain returns the domain tag shared by every element (the caller is
// responsible for having kept that invariant; module-layer operations
// below check it transitively through ring's own domain checks).
func (m Matrix) domain() ring.Domain {
	return m.At(0, 0).Domain
}

func sameShape(a, b Matrix) bool {
	return a.Rows() == b.Rows() && a.Cols() == b.Cols()
}

// Add returns a+b element-wise. a and b must have the same shape.
func Add(a, b Matrix) (Matrix, error) {
	if !sameShape(a, b) {
		return Matrix{}, ErrShapeMismatch
	}
	out := New(a.Rows(), a.Cols(), a.domain())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			s, err := ring.Add(a.At(i, j), b.At(i, j))
			if err != nil {
				return Matrix{}, err
			}
			out.Set(i, j, s)
		}
	}
	return out, nil
}

// Sub returns a-b element-wise. a and b must have the same shape.
func Sub(a, b Matrix) (Matrix, error) {
	if !sameShape(a, b) {
		return Matrix{}, ErrShapeMismatch
	}
	out := New(a.Rows(), a.Cols(), a.domain())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			s, err := ring.Sub(a.At(i, j), b.At(i, j))
			if err != nil {
				return Matrix{}, err
			}
			out.Set(i, j, s)
		}
	}
	return out, nil
}

// MatMul computes the standard matrix product a*b. a.Cols() must equal
// b.Rows(). Both operands must be in the NTT domain for the product to
// have the intended algebraic meaning (ring.Mul enforces same-domain
// operands but cannot by itself tell Standard from a caller's intent).
func MatMul(a, b Matrix) (Matrix, error) {
	if a.Cols() != b.Rows() {
		return Matrix{}, ErrShapeMismatch
	}
	domain := a.domain()
	out := New(a.Rows(), b.Cols(), domain)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			acc := ring.Zero(domain)
			for k := 0; k < a.Cols(); k++ {
				prod, err := ring.Mul(a.At(i, k), b.At(k, j))
				if err != nil {
					return Matrix{}, err
				}
				acc, err = ring.Add(acc, prod)
				if err != nil {
					return Matrix{}, err
				}
			}
			out.Set(i, j, acc)
		}
	}
	return out, nil
}

// Dot computes the inner product u^T . v of two length-k column vectors,
// returning a single polynomial.
func Dot(u, v Matrix) (ring.Poly, error) {
	if u.Cols() != 1 || v.Cols() != 1 || u.Rows() != v.Rows() {
		return ring.Poly{}, ErrShapeMismatch
	}
	product, err := MatMul(u.Transpose(), v)
	if err != nil {
		return ring.Poly{}, err
	}
	return product.At(0, 0), nil
}

// ToNTT applies ring.ToNTT to every element.
func (m Matrix) ToNTT() (Matrix, error) {
	out := New(m.Rows(), m.Cols(), ring.NTT)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			p, err := ring.ToNTT(m.At(i, j))
			if err != nil {
				return Matrix{}, err
			}
			out.Set(i, j, p)
		}
	}
	return out, nil
}

// FromNTT applies ring.FromNTT to every element.
func (m Matrix) FromNTT() (Matrix, error) {
	out := New(m.Rows(), m.Cols(), ring.Standard)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			p, err := ring.FromNTT(m.At(i, j))
			if err != nil {
				return Matrix{}, err
			}
			out.Set(i, j, p)
		}
	}
	return out, nil
}

// Compress applies Poly.Compress(d) to every element.
func (m Matrix) Compress(d int) Matrix {
	out := New(m.Rows(), m.Cols(), m.domain())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			out.Set(i, j, m.At(i, j).Compress(d))
		}
	}
	return out
}

// Decompress applies Poly.Decompress(d) to every element.
func (m Matrix) Decompress(d int) Matrix {
	out := New(m.Rows(), m.Cols(), m.domain())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			out.Set(i, j, m.At(i, j).Decompress(d))
		}
	}
	return out
}

// Encode concatenates Poly.Encode(d) for every element in row-major
// logical order: for a (k x 1) vector this is the 32*d*k-byte block a
// key (d=12, 384*k bytes) or ciphertext (d=du) encoding expects.
func (m Matrix) Encode(d int) []byte {
	out := make([]byte, 0, m.Rows()*m.Cols()*32*d)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			out = append(out, m.At(i, j).Encode(d)...)
		}
	}
	return out
}

// DecodeVector splits b into k chunks of 32*d bytes and decodes each into
// a Poly with the given domain, returning a (k x 1) column vector. It
// fails with ring.ErrInvalidLength if len(b) != 32*d*k.
func DecodeVector(b []byte, k, d int, domain ring.Domain) (Matrix, error) {
	chunk := 32 * d
	if len(b) != chunk*k {
		return Matrix{}, ring.ErrInvalidLength
	}
	out := NewVector(k, domain)
	for i := 0; i < k; i++ {
		p, err := ring.Decode(b[i*chunk:(i+1)*chunk], d, domain)
		if err != nil {
			return Matrix{}, err
		}
		out.Set(i, 0, p)
	}
	return out, nil
}

// IsCanonical reports whether every element's coefficients lie in [0,Q).
func (m Matrix) IsCanonical() bool {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if !m.At(i, j).IsCanonical() {
				return false
			}
		}
	}
	return true
}
