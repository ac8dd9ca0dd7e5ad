package kem

// ErrorKind classifies why a KeyGen/Encaps/Decaps call failed. Every
// value here is a validation failure reported before any secret-dependent
// branch, never a decryption-mismatch signal.
type ErrorKind int

const (
	// InvalidLength: a byte input did not match the parameter-set-dictated
	// size for ek, dk, or c.
	InvalidLength ErrorKind = iota
	// ModulusCheck: a supplied ek decodes to a t-hat that does not
	// re-encode to the same bytes.
	ModulusCheck
	// HashCheck: Decaps saw H(ek_pke) != the stored hash field of dk.
	HashCheck
	// DomainMismatch: arithmetic was attempted on mismatched-domain
	// polynomials/matrices, surfaced up from the ring/lattice layers.
	DomainMismatch
	// DrbgExhausted: the entropy source backing KeyGen/Encaps ran out of
	// randomness (e.g. a DRBG past its reseed interval).
	DrbgExhausted
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidLength:
		return "InvalidLength"
	case ModulusCheck:
		return "ModulusCheck"
	case HashCheck:
		return "HashCheck"
	case DomainMismatch:
		return "DomainMismatch"
	case DrbgExhausted:
		return "DrbgExhausted"
	default:
		return "Unknown"
	}
}

// Error wraps an ErrorKind with the operation that raised it. errors.Is
// matches against the sentinel of the same Kind (see Is), so callers can
// write errors.Is(err, kem.ErrInvalidLength) without caring which
// operation produced it.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's Kind, so
// errors.Is(err, kem.ErrModulusCheck) works regardless of which
// operation raised the *Error.
func (e *Error) Is(target error) bool {
	sentinel, ok := target.(*Error)
	if !ok {
		return false
	}
	return sentinel.Op == "" && sentinel.Kind == e.Kind
}

func newError(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Sentinels for errors.Is comparisons; Op is left empty so Error.Is
// matches on Kind alone.
var (
	ErrInvalidLength = &Error{Kind: InvalidLength}
	ErrModulusCheck  = &Error{Kind: ModulusCheck}
	ErrHashCheck      = &Error{Kind: HashCheck}
	ErrDomainMismatch = &Error{Kind: DomainMismatch}
	ErrDrbgExhausted  = &Error{Kind: DrbgExhausted}
)
