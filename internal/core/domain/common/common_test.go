package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)
}

func TestOptionalValueOr(t *testing.T) {
	assert := require.New(t)

	assert.Equal(uint32(60), Some(uint32(60)).ValueOr(3600))
	assert.Equal(uint32(3600), None[uint32]().ValueOr(3600))
}

func TestOptionalString(t *testing.T) {
	assert := require.New(t)

	some := Some(5)
	none := None[int]()
	assert.Equal("[5]", some.String())
	assert.Equal("[-]", none.String())
}
