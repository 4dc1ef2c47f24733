package content

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"pkt.systems/termfolio/schema"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Validate checks field constraints and id uniqueness.
func Validate(p schema.Portfolio) error {
	var problems []string
	if err := validatorInstance().Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", schema.ErrInvalidContent, err)
		}
		for _, fe := range verrs {
			problems = append(problems, describeFieldError(fe))
		}
	}
	problems = append(problems, duplicateIDs("projects", projectIDs(p.Projects))...)
	problems = append(problems, duplicateIDs("achievements", achievementIDs(p.Achievements))...)
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", schema.ErrInvalidContent, strings.Join(problems, "; "))
	}
	return nil
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Portfolio.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "url":
		return fmt.Sprintf("%s must be a URL (got %q)", field, fe.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

func duplicateIDs(section string, ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	var out []string
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			out = append(out, fmt.Sprintf("%s: duplicate id %q", section, id))
			continue
		}
		seen[id] = struct{}{}
	}
	return out
}

func projectIDs(in []schema.Project) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		out = append(out, p.ID)
	}
	return out
}

func achievementIDs(in []schema.Achievement) []string {
	out := make([]string, 0, len(in))
	for _, a := range in {
		out = append(out, a.ID)
	}
	return out
}
