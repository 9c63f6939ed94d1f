package sample

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, 0, Add(0, 0))
	assert.Equal(t, 12, Add(3, 9))
	assert.Equal(t, -6, Add(-3, -3))
}

func TestAddIsCommutative(t *testing.T) {
	assert.NoError(t, quick.Check(func(a, b int) bool {
		return Add(a, b) == Add(b, a)
	}, nil))
}

func TestAddHasIdentityZero(t *testing.T) {
	assert.NoError(t, quick.Check(func(a int) bool {
		return Add(a, 0) == a && Add(0, a) == a
	}, nil))
}

func TestAddWrapsOnOverflow(t *testing.T) {
	maxInt := int(^uint(0) >> 1)
	minInt := -maxInt - 1
	assert.Equal(t, minInt, Add(maxInt, 1))
}
