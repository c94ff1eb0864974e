package confsync

import "errors"

// ErrStructuralMismatch reports that two roots are fundamentally
// incompatible and cannot be folded into one combinable patch tree.
// Deterministic input error, never transient.
var ErrStructuralMismatch = errors.New("structural mismatch")
