package whatsapp

import (
	"regexp"
	"strings"
)

var (
	conditionalBlockRe = regexp.MustCompile(`(?s)\{\{#(\w+)\}\}(.*?)\{\{/(\w+)\}\}`)
	variableRe         = regexp.MustCompile(`\{\{(\w+)\}\}`)
)

// ProcessTemplate подставляет переменные в тело шаблона.
//
// Поддерживаются два синтаксиса:
//   - {{name}} заменяется значением переменной, неизвестные переменные
//     заменяются пустой строкой;
//   - {{#name}}...{{/name}} условный блок, который остаётся (с подстановкой
//     переменных внутри) только если переменная непустая.
func ProcessTemplate(body string, vars map[string]string) string {
	// Сначала условные блоки, чтобы {{name}} внутри них подставлялись после
	result := conditionalBlockRe.ReplaceAllStringFunc(body, func(match string) string {
		groups := conditionalBlockRe.FindStringSubmatch(match)
		name, inner, closing := groups[1], groups[2], groups[3]
		if name != closing {
			// Непарный блок оставляем как есть
			return match
		}
		if vars[name] == "" {
			return ""
		}
		return inner
	})

	result = variableRe.ReplaceAllStringFunc(result, func(match string) string {
		name := variableRe.FindStringSubmatch(match)[1]
		return vars[name]
	})

	return strings.TrimSpace(result)
}
