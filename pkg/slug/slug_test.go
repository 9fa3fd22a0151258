package slug_test

import (
	"testing"

	"katalog/pkg/slug"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Kids Hoodie", "kids_hoodie"},
		{"replaces spaces with underscores", "men tee shirt", "men_tee_shirt"},
		{"removes apostrophes", "Men's Chill Crew", "mens_chill_crew"},
		{"strips diacritics", "Ñandú Café", "nandu_cafe"},
		{"mixed", "Men's T-Shirt Ñandú", "mens_t-shirt_nandu"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slug.Normalize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "'")
			assert.NotContains(t, got, " ")
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"Men's T-Shirt Ñandú", "plain_slug", "Crème Brûlée"}
	for _, input := range inputs {
		once := slug.Normalize(input)
		twice := slug.Normalize(once)
		assert.Equal(t, once, twice, "normalizing %q twice should be stable", input)
	}
}
