package mocks

// RandomSource allows mocking a [model.RandomSource].
type RandomSource struct {
	MockFloat64 func() float64

	MockIntN func(n int) int
}

// Float64 calls MockFloat64.
func (rs *RandomSource) Float64() float64 {
	return rs.MockFloat64()
}

// IntN calls MockIntN.
func (rs *RandomSource) IntN(n int) int {
	return rs.MockIntN(n)
}

// NewFixedRandomSource returns a [RandomSource] whose Float64 always
// returns value and whose IntN always returns index.
func NewFixedRandomSource(value float64, index int) *RandomSource {
	return &RandomSource{
		MockFloat64: func() float64 {
			return value
		},
		MockIntN: func(n int) int {
			return index
		},
	}
}
