package model

import "fmt"

// ItemID is the caller-assigned identifier of an item. Uniqueness is
// required within a single candidate batch and is the caller's
// responsibility; it is not enforced here.
type ItemID uint32

// Item is the unit of comparison: an identifier plus an ordered
// feature vector. The vector length is fixed at construction and must
// match the query's length for any comparison.
//
// The score slot is absent until a similarity computation populates it
// through WithResult; it is never a sentinel numeric value.
type Item struct {
	// ID is the item identifier.
	ID ItemID

	// Values is the feature vector. It is shared, not copied; callers
	// must not mutate it after construction.
	Values []float32

	result    float32
	hasResult bool
}

// NewItem creates an item without a computed result.
func NewItem(id ItemID, values []float32) Item {
	return Item{ID: id, Values: values}
}

// Result returns the computed score and whether it is present.
func (i Item) Result() (float32, bool) {
	return i.result, i.hasResult
}

// WithResult returns a copy of the item carrying the given score. The
// feature vector is shared by reference; the receiver is unchanged.
func (i Item) WithResult(score float32) Item {
	i.result = score
	i.hasResult = true

	return i
}

// Dimension returns the length of the feature vector.
func (i Item) Dimension() int {
	return len(i.Values)
}

// String returns a string representation of the item.
func (i Item) String() string {
	if i.hasResult {
		return fmt.Sprintf("Item(%d dim=%d score=%v)", i.ID, len(i.Values), i.result)
	}

	return fmt.Sprintf("Item(%d dim=%d)", i.ID, len(i.Values))
}

// Neighbor is a ranked search result. The position of a neighbor in a
// result slice reflects its rank, best first.
type Neighbor struct {
	// ID is the identifier of the matched candidate.
	ID ItemID

	// Values references the candidate's feature vector.
	Values []float32

	// Score is the metric score (direction is metric-dependent).
	Score float32
}
