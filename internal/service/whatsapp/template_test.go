package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessTemplate_Variables(t *testing.T) {
	body := "Hi {{customerName}}, see you on {{date}} at {{time}}."
	vars := map[string]string{
		"customerName": "Dana",
		"date":         "2025-10-15",
		"time":         "10:00",
	}

	got := ProcessTemplate(body, vars)
	assert.Equal(t, "Hi Dana, see you on 2025-10-15 at 10:00.", got)
}

func TestProcessTemplate_UnknownVariableBecomesEmpty(t *testing.T) {
	got := ProcessTemplate("Hello {{missing}}!", map[string]string{})
	assert.Equal(t, "Hello !", got)
}

func TestProcessTemplate_ConditionalBlockKept(t *testing.T) {
	body := "Your appointment{{#serviceName}} for {{serviceName}}{{/serviceName}} is confirmed."
	vars := map[string]string{"serviceName": "Manicure"}

	got := ProcessTemplate(body, vars)
	assert.Equal(t, "Your appointment for Manicure is confirmed.", got)
}

func TestProcessTemplate_ConditionalBlockDropped(t *testing.T) {
	body := "Your appointment{{#serviceName}} for {{serviceName}}{{/serviceName}} is confirmed."

	got := ProcessTemplate(body, map[string]string{})
	assert.Equal(t, "Your appointment is confirmed.", got)
}

func TestProcessTemplate_MismatchedBlockLeftAsIs(t *testing.T) {
	body := "{{#a}}text{{/b}}"
	got := ProcessTemplate(body, map[string]string{"a": "x"})
	assert.Equal(t, "{{#a}}text{{/b}}", got)
}

func TestProcessTemplate_MultipleBlocks(t *testing.T) {
	body := "{{#first}}A{{/first}}{{#second}}B{{/second}}"
	got := ProcessTemplate(body, map[string]string{"second": "yes"})
	assert.Equal(t, "B", got)
}
