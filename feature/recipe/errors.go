package recipe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tataru/feature/lookup"
)

const (
	// MaxAmount is the largest number of root items a single expansion accepts.
	MaxAmount = 9999
	// maxQuantity bounds any quantity in a tree so material totals cannot overflow.
	maxQuantity = 1<<31 - 1
)

var (
	// ErrNoRecipe means the resolved item cannot be crafted.
	ErrNoRecipe = errors.New("item has no recipe")
	// ErrCyclicRecipe means expansion revisited an item or exceeded the depth limit.
	ErrCyclicRecipe = errors.New("cyclic recipe")
	// ErrInvalidAmount is returned for amounts above MaxAmount. It is a bad query.
	ErrInvalidAmount = fmt.Errorf("%w: amount must be at most %d", lookup.ErrInvalidQuery, MaxAmount)
	// ErrQuantityTooLarge means an ingredient quantity left the supported range.
	ErrQuantityTooLarge = fmt.Errorf("%w: ingredient quantity too large", lookup.ErrInvalidQuery)
)

// CycleError describes where expansion stopped. It unwraps to ErrCyclicRecipe.
type CycleError struct {
	// Path is the chain of item ids from the root to the offending item.
	Path []int
	// DepthExceeded is set when the limit was hit rather than a revisit.
	DepthExceeded bool
	MaxDepth      int
}

func (e *CycleError) Error() string {
	ids := make([]string, len(e.Path))
	for i, id := range e.Path {
		ids[i] = strconv.Itoa(id)
	}
	if e.DepthExceeded {
		return fmt.Sprintf("%v: depth limit %d exceeded at %s", ErrCyclicRecipe, e.MaxDepth, strings.Join(ids, " -> "))
	}
	return fmt.Sprintf("%v: %s", ErrCyclicRecipe, strings.Join(ids, " -> "))
}

func (e *CycleError) Unwrap() error {
	return ErrCyclicRecipe
}
