package validators

import (
	"fmt"
)

// Language selects the message table of a validator.
type Language string

const (
	English Language = "en"
	Russian Language = "ru"
)

// messages maps a validation tag to a format taking the field name and the
// tag parameter.
var messages = map[Language]map[string]string{
	English: {
		"required": "%[1]s is required",
		"notblank": "%[1]s must not be blank",
		"email":    "%[1]s must be a valid e-mail address",
		"e164":     "%[1]s must be a phone number in E.164 format",
		"min":      "%[1]s must be at least %[2]s characters long",
		"max":      "%[1]s must be at most %[2]s characters long",
		"gt":       "%[1]s must be greater than %[2]s",
		"gte":      "%[1]s must be greater than or equal to %[2]s",
		"default":  "%[1]s is invalid",
	},
	Russian: {
		"required": "поле %[1]s обязательно",
		"notblank": "поле %[1]s не может быть пустым",
		"email":    "поле %[1]s должно содержать корректный адрес электронной почты",
		"e164":     "поле %[1]s должно содержать номер телефона в формате E.164",
		"min":      "поле %[1]s должно содержать не менее %[2]s символов",
		"max":      "поле %[1]s должно содержать не более %[2]s символов",
		"gt":       "поле %[1]s должно быть больше %[2]s",
		"gte":      "поле %[1]s должно быть не меньше %[2]s",
		"default":  "поле %[1]s заполнено неверно",
	},
}

// ParseLanguage returns the language for code, falling back to English.
func ParseLanguage(code string) Language {
	if _, ok := messages[Language(code)]; ok {
		return Language(code)
	}
	return English
}

func message(lang Language, field, tag, param string) string {
	table, ok := messages[lang]
	if !ok {
		table = messages[English]
	}
	format, ok := table[tag]
	if !ok {
		format = table["default"]
	}
	return fmt.Sprintf(format, field, param)
}
