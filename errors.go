package treelist

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("treelist: index out of bounds")
	// ErrCapacityExceeded signals an insertion into a list already holding
	// the maximum number of elements.
	ErrCapacityExceeded = errors.New("treelist: maximum length reached")
	// ErrInvalidConfig signals an invalid list configuration.
	ErrInvalidConfig = errors.New("treelist: invalid configuration")
	// ErrInvalidIterator signals dereferencing or advancing an iterator which
	// does not point to an element.
	ErrInvalidIterator = errors.New("treelist: iterator does not point to a valid entry")
	// ErrIteratorInvalidated signals use of an iterator after its list has
	// been structurally modified.
	ErrIteratorInvalidated = errors.New("treelist: list modified during iteration")
	// ErrStructureViolated is the common cause of all errors reported by Check.
	ErrStructureViolated = errors.New("treelist: structure violated")
)

// Structural violations reported by Check. All of them wrap ErrStructureViolated.
var (
	ErrNotATree       = fmt.Errorf("%w: not a tree", ErrStructureViolated)
	ErrHeightMismatch = fmt.Errorf("%w: incorrect height", ErrStructureViolated)
	ErrSizeMismatch   = fmt.Errorf("%w: incorrect size", ErrStructureViolated)
	ErrUnbalanced     = fmt.Errorf("%w: tree not balanced", ErrStructureViolated)
)
