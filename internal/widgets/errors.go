package widgets

import "errors"

var (
	// ErrInvalidKey occurs when a descriptor key does not match the token grammar.
	ErrInvalidKey = errors.New("widgets: invalid widget key")
	// ErrInvalidElement occurs when a descriptor has no usable editor element name.
	ErrInvalidElement = errors.New("widgets: invalid editor element name")
	// ErrDuplicateKey indicates two descriptors sharing the same key.
	ErrDuplicateKey = errors.New("widgets: duplicate widget key")
	// ErrDuplicateElement indicates two descriptors sharing the same element name.
	ErrDuplicateElement = errors.New("widgets: duplicate editor element name")
	// ErrSchemaInvalid occurs when a descriptor config schema fails to compile.
	ErrSchemaInvalid = errors.New("widgets: config schema invalid")
)
