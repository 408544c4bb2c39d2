package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("alice"))
	assert.True(t, IsValidUsername("a.l-i_ce42"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("has space"))
	assert.False(t, IsValidUsername(""))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("hunter2!x"))
	assert.False(t, IsValidPassword("short1!"))
	assert.False(t, IsValidPassword("nodigits!"))
	assert.False(t, IsValidPassword("nospecial1"))
}

func TestIsValidSymbol(t *testing.T) {
	assert.True(t, IsValidSymbol("AAPL"))
	assert.True(t, IsValidSymbol("BRK.A"))
	assert.False(t, IsValidSymbol("aapl"))
	assert.False(t, IsValidSymbol(""))
	assert.False(t, IsValidSymbol("TOOLONGSYMBOL"))
}
