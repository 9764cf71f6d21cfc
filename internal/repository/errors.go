package repository

import "errors"

// ErrCorruptData is returned when persisted data fails to decode.
// Callers recover by re-seeding; the error is logged, not propagated.
var ErrCorruptData = errors.New("corrupt persisted data")
