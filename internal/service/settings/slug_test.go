package settings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Salon Maya", want: "salon-maya"},
		{name: "punctuation collapses", in: "Maya's  Nails & Spa!", want: "maya-s-nails-spa"},
		{name: "already clean", in: "barbershop", want: "barbershop"},
		{name: "hebrew letters kept", in: "מספרה של דנה", want: "מספרה-של-דנה"},
		{name: "empty falls back", in: "", want: "business"},
		{name: "only symbols falls back", in: "!!! ***", want: "business"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugify(tt.in))
		})
	}
}

func TestSlugify_Truncation(t *testing.T) {
	long := strings.Repeat("a", 80)
	got := slugify(long)
	assert.Len(t, got, 50)

	// Обрезка не оставляет висящий дефис
	withDash := strings.Repeat("a", 49) + " " + strings.Repeat("b", 30)
	got = slugify(withDash)
	assert.False(t, strings.HasSuffix(got, "-"))
}
