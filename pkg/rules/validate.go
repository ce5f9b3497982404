package rules

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/settingsguard/pkg/errors"
	"github.com/arthur-debert/settingsguard/pkg/types"
	"github.com/go-playground/validator/v10"
)

var structValidator = newStructValidator()

// newStructValidator registers the severity tags used on rule structs
func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("conflict_severity", func(fl validator.FieldLevel) bool {
		return types.Severity(fl.Field().String()).IsConflictSeverity()
	})
	_ = v.RegisterValidation("warning_severity", func(fl validator.FieldLevel) bool {
		return types.Severity(fl.Field().String()).IsWarningSeverity()
	})
	return v
}

// Validate checks the structure of a rule set built in code, the way the
// schema checks rule files: categories and messages present, pairs of
// exactly two predicates, known severities.
func (rs RuleSet) Validate() error {
	err := structValidator.Struct(rs)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, errors.ErrInternal, "rule set validation failed")
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return errors.Newf(errors.ErrRulesInvalid, "invalid rule set: %s", strings.Join(problems, "; ")).
		WithDetail("problems", problems)
}
