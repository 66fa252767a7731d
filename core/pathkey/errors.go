package pathkey

import "errors"

var (
	// ErrInvalidLocale is returned when a locale set contains an empty,
	// duplicate, or unparsable locale code.
	ErrInvalidLocale = errors.New("invalid locale code")
)
