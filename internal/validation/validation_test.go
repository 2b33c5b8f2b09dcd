package validation

import (
	"strings"
	"testing"
)

func findError(errs []FieldError, field string) *FieldError {
	for i := range errs {
		if errs[i].Field == field {
			return &errs[i]
		}
	}
	return nil
}

func TestApplyTrimsAndNormalizes(t *testing.T) {
	rules := []Rule{
		{Field: "name", Trim: true, Constraints: []Constraint{Length(3, 50)}},
	}

	normalized, errs := Apply(rules, map[string]string{"name": "  Hats  "})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if normalized["name"] != "Hats" {
		t.Errorf("expected trimmed 'Hats', got %q", normalized["name"])
	}
}

func TestApplyEscapesHTML(t *testing.T) {
	rules := []Rule{
		{Field: "description", Trim: true, Constraints: []Constraint{Length(0, 400)}},
	}

	normalized, _ := Apply(rules, map[string]string{"description": `<script>alert("x")</script>`})
	if strings.Contains(normalized["description"], "<script>") {
		t.Errorf("markup was not escaped: %q", normalized["description"])
	}
	if !strings.Contains(normalized["description"], "&lt;script&gt;") {
		t.Errorf("expected escaped markup, got %q", normalized["description"])
	}
}

func TestApplyCollectsAllViolations(t *testing.T) {
	rules := []Rule{
		{Field: "name", Trim: true, Constraints: []Constraint{Length(3, 50)}},
		{Field: "price", Trim: true, Constraints: []Constraint{NonNegativeDecimal()}},
		{Field: "small", Trim: true, Default: "0", Constraints: []Constraint{NonNegativeInt()}},
	}

	_, errs := Apply(rules, map[string]string{
		"name":  "ab",
		"price": "-1",
		"small": "-1",
	})

	if len(errs) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(errs), errs)
	}
	if findError(errs, "name") == nil || findError(errs, "price") == nil || findError(errs, "small") == nil {
		t.Errorf("expected a violation per field, got %v", errs)
	}
}

func TestApplyDefaultForEmptyInput(t *testing.T) {
	rules := []Rule{
		{Field: "small", Trim: true, Default: "0", Constraints: []Constraint{NonNegativeInt()}},
	}

	normalized, errs := Apply(rules, map[string]string{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if normalized["small"] != "0" {
		t.Errorf("expected default '0', got %q", normalized["small"])
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		value string
		min   int
		max   int
		ok    bool
	}{
		{"Hat", 3, 50, true},
		{"Ha", 3, 50, false},
		{"", 3, 50, false},
		{"", 0, 400, true},
		{strings.Repeat("a", 50), 3, 50, true},
		{strings.Repeat("a", 51), 3, 50, false},
		{"Шляпа", 3, 50, true},
		{"Шу", 3, 50, false},
		{strings.Repeat("я", 50), 3, 50, true},
		{strings.Repeat("я", 51), 3, 50, false},
	}

	for _, tt := range tests {
		msg := Length(tt.min, tt.max)(tt.value)
		if tt.ok && msg != "" {
			t.Errorf("Length(%d,%d)(%q): unexpected violation %q", tt.min, tt.max, tt.value, msg)
		}
		if !tt.ok && msg == "" {
			t.Errorf("Length(%d,%d)(%q): expected a violation", tt.min, tt.max, tt.value)
		}
	}
}

func TestNonNegativeDecimal(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"12", true},
		{"12.99", true},
		{"0", true},
		{"-1", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		msg := NonNegativeDecimal()(tt.value)
		if tt.ok && msg != "" {
			t.Errorf("NonNegativeDecimal(%q): unexpected violation %q", tt.value, msg)
		}
		if !tt.ok && msg == "" {
			t.Errorf("NonNegativeDecimal(%q): expected a violation", tt.value)
		}
	}
}

func TestNonNegativeInt(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"0", true},
		{"7", true},
		{"-1", false},
		{"1.5", false},
		{"x", false},
	}

	for _, tt := range tests {
		msg := NonNegativeInt()(tt.value)
		if tt.ok && msg != "" {
			t.Errorf("NonNegativeInt(%q): unexpected violation %q", tt.value, msg)
		}
		if !tt.ok && msg == "" {
			t.Errorf("NonNegativeInt(%q): expected a violation", tt.value)
		}
	}
}

func TestCheckCustomPredicate(t *testing.T) {
	nonEmpty := Check("is required", func(v string) bool { return v != "" })

	if msg := nonEmpty(""); msg != "is required" {
		t.Errorf("expected custom message, got %q", msg)
	}
	if msg := nonEmpty("x"); msg != "" {
		t.Errorf("unexpected violation %q", msg)
	}
}
