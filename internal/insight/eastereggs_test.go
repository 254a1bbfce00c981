package insight

import (
	"claty/internal/model"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestEasterEgg_NoMatch(t *testing.T) {
	_, ok := easterEgg("오늘 서울 날씨")

	assert.Equal(t, false, ok)
}

func TestEasterEgg_PayloadsAreFresh(t *testing.T) {
	first, _ := easterEgg("claty")
	first.Insights.Keywords[0] = "changed"

	second, _ := easterEgg("claty")

	assert.Equal(t, "혁신", second.Insights.Keywords[0])
	assert.Equal(t, model.SpecialClaty, second.IsSpecial)
	assert.Equal(t, 4, len(second.Questions))
}
