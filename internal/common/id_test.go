package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectID(t *testing.T) {
	id := ProjectID("mobile-redesign")

	assert.Len(t, id, ProjectIDLength)
	assert.Equal(t, strings.ToLower(id), id)
	assert.Equal(t, id, ProjectID("mobile-redesign"))
	assert.NotEqual(t, id, ProjectID("Mobile-Redesign")) // case matters
	assert.NotEqual(t, id, ProjectID("mobile-redesign "))
}

func TestNewUnitID(t *testing.T) {
	a := NewUnitID()
	b := NewUnitID()

	assert.True(t, strings.HasPrefix(a, "unit_"))
	assert.NotEqual(t, a, b)
}
