package shutdown

import "errors"

// ErrTaskPanic wraps a panic recovered inside a GoTask function.
// Use errors.Is(err, ErrTaskPanic) to detect this case.
var ErrTaskPanic = errors.New("task function panicked")
