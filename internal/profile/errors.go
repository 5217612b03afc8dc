package profile

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for profile loading.
const (
	// ErrUnknownField is returned for a usage key that names no field.
	ErrUnknownField = constError("unknown usage field")

	// ErrUnsupportedSchema is returned when schema_version is outside ^1.0.0.
	ErrUnsupportedSchema = constError("unsupported profile schema version")

	// ErrUnsupportedFormat is returned for a file extension other than
	// .yaml, .yml or .json.
	ErrUnsupportedFormat = constError("unsupported profile format")

	// ErrInvalidDocument is returned when a document fails validation.
	ErrInvalidDocument = constError("invalid profile document")
)
