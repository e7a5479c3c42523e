package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "vehicle-query:ABC123:123456789", Key("ABC123", "123456789"))
}
