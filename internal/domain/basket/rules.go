package basket

import "fmt"

const (
	// MaxTotalQuantity caps the summed quantity across all entries of one user.
	MaxTotalQuantity = 10
	// MaxEntries caps the number of distinct entries of one user.
	MaxEntries = 10
)

// CapacityExceededError reports by how many units or entries a mutation would
// overshoot the basket limits. Overage is what callers surface to the user.
type CapacityExceededError struct {
	Kind    CapacityKind
	Overage int
}

type CapacityKind string

const (
	CapacityQuantity CapacityKind = "quantity"
	CapacityEntries  CapacityKind = "entries"
)

func (e *CapacityExceededError) Error() string {
	switch e.Kind {
	case CapacityEntries:
		return fmt.Sprintf("basket cannot hold more than %d positions (over by %d)", MaxEntries, e.Overage)
	default:
		return fmt.Sprintf("basket cannot hold more than %d units (over by %d)", MaxTotalQuantity, e.Overage)
	}
}

// CheckAdd validates adding quantity units on top of the current basket state.
// merging is true when the item already has an entry, so no new position is
// created.
func CheckAdd(currentTotal, entryCount, quantity int, merging bool) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if newTotal := currentTotal + quantity; newTotal > MaxTotalQuantity {
		return &CapacityExceededError{Kind: CapacityQuantity, Overage: newTotal - MaxTotalQuantity}
	}
	if !merging {
		if newCount := entryCount + 1; newCount > MaxEntries {
			return &CapacityExceededError{Kind: CapacityEntries, Overage: newCount - MaxEntries}
		}
	}
	return nil
}

// CheckUpdate validates replacing one entry's quantity given the summed
// quantity of all the user's other entries.
func CheckUpdate(othersTotal, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if newTotal := othersTotal + quantity; newTotal > MaxTotalQuantity {
		return &CapacityExceededError{Kind: CapacityQuantity, Overage: newTotal - MaxTotalQuantity}
	}
	return nil
}
