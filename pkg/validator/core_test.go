package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestFailureReport(t *testing.T) {
	t.Parallel()

	report := validator.FailureReport{
		{Field: "email", Rule: "required"},
		{Field: "age", Rule: "numeric"},
		{Field: "age", Rule: "greater_than"},
	}

	assert.False(t, report.IsEmpty())
	assert.True(t, report.Has("age"))
	assert.False(t, report.Has("name"))
	assert.Equal(t, []string{"numeric", "greater_than"}, report.Rules("age"))
	assert.Nil(t, report.Rules("name"))
	assert.Equal(t, []string{"email", "age"}, report.Fields())
	assert.Equal(t, "validation.greater_than", report[2].TranslationKey())
}

func TestFailureReport_Err(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.FailureReport{}.Err())
	assert.NoError(t, validator.FailureReport(nil).Err())

	report := validator.FailureReport{{Field: "age", Rule: "greater_than"}, {Field: "email", Rule: "valid_mail"}}
	err := report.Err()
	assert.ErrorIs(t, err, validator.ErrValidationFailed)
	assert.EqualError(t, err, "validation failed: age: greater_than; email: valid_mail")

	wrapped := fmt.Errorf("signup: %w", err)
	assert.Equal(t, report, validator.ExtractFailures(wrapped))
	assert.Nil(t, validator.ExtractFailures(errors.New("other")))
	assert.Nil(t, validator.ExtractFailures(nil))
}
