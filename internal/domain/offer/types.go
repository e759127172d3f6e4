package offer

// Status is one-way: an offer that expires goes ACTIVE -> INACTIVE and never
// comes back through the lifecycle sweep.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}
