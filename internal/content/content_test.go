package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestimonials_ReturnsCopy(t *testing.T) {
	list := Testimonials()
	assert.Len(t, list, 3)

	list[0].Name = "x"
	assert.Equal(t, "Mariana Silva", Testimonials()[0].Name)
}

func TestFAQ(t *testing.T) {
	items := FAQ()
	assert.Len(t, items, 6)
	for _, it := range items {
		assert.NotEmpty(t, it.Question)
		assert.NotEmpty(t, it.Answer)
	}
}
