package list

import "errors"

var (
	// ErrInvalidConfig signals an invalid list configuration.
	ErrInvalidConfig = errors.New("list: invalid configuration")
	// ErrEmpty signals access to an element of an empty list.
	ErrEmpty = errors.New("list: empty")
	// ErrForeignElement signals a position handle which does not belong to
	// the list, including handles to erased elements.
	ErrForeignElement = errors.New("list: element not in list")
	// ErrInvalidRange signals a range [first, last) where last does not follow first.
	ErrInvalidRange = errors.New("list: invalid range")
	// ErrSelfSplice signals an attempt to splice a list into itself.
	ErrSelfSplice = errors.New("list: cannot splice list into itself")
	// ErrForeignAllocator signals a splice between lists with different allocators.
	ErrForeignAllocator = errors.New("list: lists use different allocators")
	// ErrInvalidArgument signals invalid counts.
	ErrInvalidArgument = errors.New("list: invalid argument")
	// ErrCorrupted signals a violated structural invariant.
	ErrCorrupted = errors.New("list: corrupted node ring")
)
