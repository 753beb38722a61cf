package coupon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "apple", escapeLike("apple"))
	assert.Equal(t, `50\% off`, escapeLike("50% off"))
	assert.Equal(t, `big\_sale`, escapeLike("big_sale"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
}
