package memzero

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	a := []byte("passphrase")
	b := []byte{1, 2, 3}
	Zero(a, nil, b, []byte{})

	assert.Equal(t, make([]byte, 10), a)
	assert.Equal(t, []byte{0, 0, 0}, b)
}
