package domain

import (
	"fmt"
	"slices"
)

// AdFilter carries the auction filters taken from an ad request. Exclude
// lists campaigns that must not win, typically ones whose budget ran out
// during an earlier attempt of the same request.
type AdFilter struct {
	AdType   AdType
	Category Category
	MinBid   int64
	Exclude  []string
}

// Validate rejects filters no campaign could ever match.
func (f AdFilter) Validate() error {
	switch {
	case !f.AdType.Valid():
		return fmt.Errorf("%w: unsupported adType %q", ErrInvalidRequest, f.AdType)
	case !f.Category.Valid():
		return fmt.Errorf("%w: unsupported category %q", ErrInvalidRequest, f.Category)
	case f.MinBid < 0:
		return fmt.Errorf("%w: minBid must not be negative", ErrInvalidRequest)
	}
	return nil
}

// Excludes reports whether id is in the exclusion list.
func (f AdFilter) Excludes(id string) bool {
	return slices.Contains(f.Exclude, id)
}

// Without returns a copy of f that additionally excludes id.
func (f AdFilter) Without(id string) AdFilter {
	out := f
	out.Exclude = append(slices.Clone(f.Exclude), id)
	return out
}
