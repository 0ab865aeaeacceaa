package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter_StartsAtOne(t *testing.T) {
	c := NewCounter()
	assert.Equal(t, 1, c.Value())
}

func TestCounter_IncrementDecrement(t *testing.T) {
	c := NewCounter()

	assert.Equal(t, 2, c.Increment())
	assert.Equal(t, 3, c.Increment())
	assert.Equal(t, 2, c.Decrement())
	assert.Equal(t, 1, c.Decrement())
}

func TestCounter_DecrementStopsAtFloor(t *testing.T) {
	c := NewCounter()

	for i := 0; i < 5; i++ {
		c.Decrement()
	}
	assert.Equal(t, 1, c.Value())
}

func TestCounter_Set(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{name: "positive", input: 42, want: 42},
		{name: "floor", input: 1, want: 1},
		{name: "zero clamps to floor", input: 0, want: 1},
		{name: "negative clamps to floor", input: -3, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCounter()
			c.Set(7)
			assert.Equal(t, tt.want, c.Set(tt.input))
		})
	}
}

// The floor holds under any sequence of operations.
func TestCounter_NeverBelowFloor(t *testing.T) {
	c := NewCounter()

	ops := []func(){
		func() { c.Increment() },
		func() { c.Decrement() },
		func() { c.Decrement() },
		func() { c.Set(-10) },
		func() { c.Decrement() },
		func() { c.Set(5) },
		func() { c.Set(0) },
		func() { c.Decrement() },
		func() { c.Reset() },
		func() { c.Decrement() },
	}
	for _, op := range ops {
		op()
		assert.GreaterOrEqual(t, c.Value(), 1)
	}
}

func TestCounter_Reset(t *testing.T) {
	c := NewCounter()
	c.Set(99)
	c.Reset()
	assert.Equal(t, 1, c.Value())
}
