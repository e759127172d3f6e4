package menu

// ItemStatus models soft-deactivation as an explicit enum so future states
// ("pending", "archived") don't require schema churn.
type ItemStatus string

const (
	StatusActive   ItemStatus = "active"
	StatusArchived ItemStatus = "archived"
)

func (s ItemStatus) String() string {
	return string(s)
}

func (s ItemStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusArchived:
		return true
	default:
		return false
	}
}
