package fontid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsContains(t *testing.T) {
	flags := IsOpenType.Union(HasPostScriptName)
	assert.True(t, flags.Contains(IsOpenType))
	assert.True(t, flags.Contains(HasPostScriptName))
	assert.True(t, flags.Contains(IsOpenType|HasPostScriptName))
	assert.False(t, IsOpenType.Contains(HasPostScriptName))
	assert.True(t, IsOpenType.Contains(0), "every set contains the empty set")
}

func TestFlagsUnionStaysInRange(t *testing.T) {
	flags := IsOpenType.Union(FontIDFlags(0xf0))
	assert.Equal(t, IsOpenType, flags)
	assert.Equal(t, allFlags, FontIDFlags(0xff).Union(0))
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "0", FontIDFlags(0).String())
	assert.Equal(t, "IsOpenType", IsOpenType.String())
	assert.Equal(t, "HasPostScriptName|IsOpenType", IsOpenType.Union(HasPostScriptName).String())
}
