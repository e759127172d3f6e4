package offer

import "errors"

var ErrInvalidPercent = errors.New("discount must be between 0 and 100 percent")

// Percent is a discount percentage in [0,100].
type Percent struct {
	value float64
}

func NewPercent(v float64) (Percent, error) {
	if v < 0 || v > 100 {
		return Percent{}, ErrInvalidPercent
	}
	return Percent{value: v}, nil
}

func (p Percent) Value() float64 {
	return p.value
}
