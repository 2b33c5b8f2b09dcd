// Package validation — движок проверки полей формы по набору правил.
// Нарушения собираются по всем полям сразу, чтобы форма показала их за один проход.
package validation

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// FieldError — нарушение одного ограничения одного поля.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Constraint проверяет значение поля и возвращает текст нарушения или пустую строку.
type Constraint func(value string) string

// Rule описывает обработку одного поля: нормализацию, значение по умолчанию
// для пустого ввода и список ограничений.
type Rule struct {
	Field       string
	Trim        bool
	Default     string
	Constraints []Constraint
}

// Apply прогоняет входные значения через правила.
// Возвращает нормализованные (и HTML-экранированные) значения всех полей
// и полный список нарушений. Правила проверяются независимо, без fail-fast.
func Apply(rules []Rule, input map[string]string) (map[string]string, []FieldError) {
	normalized := make(map[string]string, len(rules))
	var errs []FieldError

	for _, rule := range rules {
		value := input[rule.Field]
		if rule.Trim {
			value = strings.TrimSpace(value)
		}
		if value == "" && rule.Default != "" {
			value = rule.Default
		}

		for _, check := range rule.Constraints {
			if msg := check(value); msg != "" {
				errs = append(errs, FieldError{Field: rule.Field, Message: msg})
			}
		}

		// Экранируем всегда: значение возвращается в форму и сохраняется как есть.
		normalized[rule.Field] = html.EscapeString(value)
	}

	return normalized, errs
}

// Length ограничивает длину значения в символах, не в байтах.
func Length(min, max int) Constraint {
	return func(value string) string {
		if n := utf8.RuneCountInString(value); n < min || n > max {
			return fmt.Sprintf("must be between %d and %d characters", min, max)
		}
		return ""
	}
}

// Decimal требует числовое значение.
func Decimal() Constraint {
	return func(value string) string {
		if _, err := decimal.NewFromString(value); err != nil {
			return "must be a number"
		}
		return ""
	}
}

// NonNegativeDecimal требует неотрицательное числовое значение.
func NonNegativeDecimal() Constraint {
	return func(value string) string {
		d, err := decimal.NewFromString(value)
		if err != nil {
			return "must be a number"
		}
		if d.IsNegative() {
			return "must be zero or a positive amount"
		}
		return ""
	}
}

// NonNegativeInt требует целое значение >= 0 (остатки на складе).
func NonNegativeInt() Constraint {
	return func(value string) string {
		n, err := strconv.Atoi(value)
		if err != nil {
			return "must be a whole number"
		}
		if n < 0 {
			return "stock count must be zero or a positive whole number"
		}
		return ""
	}
}

// Check оборачивает произвольный предикат в ограничение.
func Check(message string, pred func(value string) bool) Constraint {
	return func(value string) string {
		if !pred(value) {
			return message
		}
		return ""
	}
}
