package hashlife

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellAlive(t *testing.T) {
	assert.True(t, Alive.Alive())
	assert.False(t, Dead.Alive())
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "ALIVE", Alive.String())
	assert.Equal(t, "DEAD", Dead.String())
}
