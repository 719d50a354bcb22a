package uuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUUID_ShouldBeUnique(t *testing.T) {
	first := GenerateUUID()
	second := GenerateUUID()

	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
}
