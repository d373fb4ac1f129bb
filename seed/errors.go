package seed

import "errors"

// ErrEmpty is returned by Parse for blank input.
var ErrEmpty = errors.New("seed: empty value")

// ErrOutOfRange is returned by Parse for integers that do not fit in int64.
var ErrOutOfRange = errors.New("seed: integer out of range")
