package containers

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/npillmayer/containers/list"
	"github.com/npillmayer/containers/vector"
)

// Sizer is implemented by everything with a length.
type Sizer interface {
	Len() int
}

// Checker is implemented by stores which can validate their structural
// invariants.
type Checker interface {
	Check() error
}

// Store is the common surface of the stores of this module.
type Store interface {
	Sizer
	Checker
	IsEmpty() bool
	Clear()
}

var (
	_ Store = (*vector.Vector[int])(nil)
	_ Store = (*list.List[int])(nil)
)

// CheckAll validates every store and reports all violations at once.
// Violations are prefixed with the position of the offending store.
func CheckAll(stores ...Checker) error {
	var result *multierror.Error
	for i, s := range stores {
		if s == nil {
			result = multierror.Append(result, fmt.Errorf("store #%d is nil", i))
			continue
		}
		if err := s.Check(); err != nil {
			result = multierror.Append(result, fmt.Errorf("store #%d: %w", i, err))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		tracer().Errorf("containers: %d stores violate invariants", len(result.Errors))
		return err
	}
	return nil
}
