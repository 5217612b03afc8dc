package footprint

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Is lets ErrInvalidQuality match ErrInvalidEnumeration.
func (e constError) Is(target error) bool {
	t, ok := target.(constError)
	if !ok {
		return false
	}
	return e == t || (t == ErrInvalidEnumeration && e == ErrInvalidQuality)
}

// Sentinel errors, compared with errors.Is().
var (
	// ErrInvalidEnumeration indicates a value outside its declared set
	// (quality, device kind or connection type).
	ErrInvalidEnumeration = constError("invalid enumeration value")

	// ErrInvalidQuality indicates an unrecognized streaming quality.
	// errors.Is(ErrInvalidQuality, ErrInvalidEnumeration) is true.
	ErrInvalidQuality = constError("invalid streaming quality")
)
