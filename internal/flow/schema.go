package flow

import (
	"fmt"
	"math"
	"strings"

	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

// CleanJSON strips whitespace and a surrounding markdown code fence.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}

// ValidateReply checks a JSON document against schema. Every violation is
// reported as model.ErrModelOutputInvalid.
func ValidateReply(reply string, schema *genai.Schema) error {
	if !gjson.Valid(reply) {
		return fmt.Errorf("%w: reply is not valid JSON", model.ErrModelOutputInvalid)
	}
	if schema == nil {
		return nil
	}
	if err := validateValue("$", gjson.Parse(reply), schema); err != nil {
		return fmt.Errorf("%w: %v", model.ErrModelOutputInvalid, err)
	}
	return nil
}

func validateValue(path string, v gjson.Result, s *genai.Schema) error {
	switch s.Type {
	case genai.TypeObject:
		if !v.IsObject() {
			return fmt.Errorf("%s: expected object", path)
		}
		for _, name := range s.Required {
			if !v.Get(name).Exists() {
				return fmt.Errorf("%s.%s: required", path, name)
			}
		}
		for name, prop := range s.Properties {
			field := v.Get(name)
			if !field.Exists() {
				continue
			}
			if err := validateValue(path+"."+name, field, prop); err != nil {
				return err
			}
		}

	case genai.TypeArray:
		if !v.IsArray() {
			return fmt.Errorf("%s: expected array", path)
		}
		items := v.Array()
		if s.MinItems != nil && int64(len(items)) < *s.MinItems {
			return fmt.Errorf("%s: expected at least %d items, got %d", path, *s.MinItems, len(items))
		}
		if s.MaxItems != nil && int64(len(items)) > *s.MaxItems {
			return fmt.Errorf("%s: expected at most %d items, got %d", path, *s.MaxItems, len(items))
		}
		if s.Items != nil {
			for i, item := range items {
				if err := validateValue(fmt.Sprintf("%s[%d]", path, i), item, s.Items); err != nil {
					return err
				}
			}
		}

	case genai.TypeString:
		if v.Type != gjson.String {
			return fmt.Errorf("%s: expected string", path)
		}
		if s.MinLength != nil && int64(len(strings.TrimSpace(v.Str))) < *s.MinLength {
			return fmt.Errorf("%s: string too short", path)
		}

	case genai.TypeInteger:
		if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
			return fmt.Errorf("%s: expected integer", path)
		}
		return checkRange(path, v.Num, s)

	case genai.TypeNumber:
		if v.Type != gjson.Number {
			return fmt.Errorf("%s: expected number", path)
		}
		return checkRange(path, v.Num, s)

	case genai.TypeBoolean:
		if v.Type != gjson.True && v.Type != gjson.False {
			return fmt.Errorf("%s: expected boolean", path)
		}
	}
	return nil
}

func checkRange(path string, n float64, s *genai.Schema) error {
	if s.Minimum != nil && n < *s.Minimum {
		return fmt.Errorf("%s: %v is below minimum %v", path, n, *s.Minimum)
	}
	if s.Maximum != nil && n > *s.Maximum {
		return fmt.Errorf("%s: %v is above maximum %v", path, n, *s.Maximum)
	}
	return nil
}

func text(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description, MinLength: genai.Ptr[int64](1)}
}

func object(required []string, props map[string]*genai.Schema) *genai.Schema {
	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       props,
		Required:         required,
		PropertyOrdering: required,
	}
}
