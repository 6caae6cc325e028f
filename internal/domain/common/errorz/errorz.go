package errorz

import "errors"

var (
	ErrInvalidCallbackData = errors.New("invalid callback data")
	ErrSelfBan             = errors.New("attempt to ban self")

	ErrAspectOutOfRange      = errors.New("aspect index out of range")
	ErrInvalidColorToken     = errors.New("invalid color token")
	ErrMalformedNumericParam = errors.New("malformed numeric param")
	ErrInvalidPayload        = errors.New("invalid generation payload")
)
