package settings

import (
	"strings"
	"unicode"

	"github.com/evenderechit/evenderechit/internal/domain"
)

// slugify превращает название бизнеса в слаг для публичной страницы записи.
// Буквы приводятся к нижнему регистру, последовательности прочих символов
// заменяются одним дефисом, результат обрезается до MaxSlugLength.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true // подавляем ведущий дефис

	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if runes := []rune(slug); len(runes) > domain.MaxSlugLength {
		slug = strings.Trim(string(runes[:domain.MaxSlugLength]), "-")
	}
	if slug == "" {
		slug = "business"
	}
	return slug
}
