package sim

// Resource is one tile's depletable food store. A tile holds at most one
// resource; the World removes the tile entry the moment the store empties.
type Resource struct {
	Remaining int
	Size      int // initial units, kept for display scaling
}

// NewResource returns a full store of the given size.
func NewResource(size int) Resource {
	return Resource{Remaining: size, Size: size}
}

// Consume removes one unit and returns the new count. depleted is true when
// the store has just emptied; the caller must clear the tile, so a consume
// on an already-empty resource never happens.
func (r *Resource) Consume() (remaining int, depleted bool) {
	r.Remaining--
	if r.Remaining < 0 {
		r.Remaining = 0
	}
	return r.Remaining, r.Remaining == 0
}

// Fraction returns the remaining share of the initial store, for display.
func (r *Resource) Fraction() float64 {
	if r.Size == 0 {
		return 0
	}
	return float64(r.Remaining) / float64(r.Size)
}
