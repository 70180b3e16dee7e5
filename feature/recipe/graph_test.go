package recipe

import (
	"testing"

	"tataru/core/models"

	"github.com/stretchr/testify/assert"
)

func TestFindCycles(t *testing.T) {
	items := []models.Item{
		craft(3, "Gamma", 1, ing(1, 1)),
		craft(1, "Alpha", 1, ing(2, 1)),
		craft(2, "Beta", 1, ing(3, 1), ing(7, 1)),
		craft(9, "Ouroboros", 1, ing(9, 1)),
		craft(5057, "Iron Ingot", 1, ing(5111, 4)),
		raw(5111, "Iron Ore", "Stone"),
	}
	assert.Equal(t, [][]int{{1, 2, 3}, {9}}, FindCycles(items))
	assert.Empty(t, FindCycles(items[4:]))
}
