package errors

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError("session_id", "is required", "")

	assert.Equal(t, "session_id", err.Field)
	assert.Equal(t, "validation error on field 'session_id': is required", err.Error())
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "validation failed", errs.Error())

	errs = append(errs, *NewValidationError("text", "is required", nil))
	assert.Equal(t, "validation failed: text is required", errs.Error())

	errs = append(errs, *NewValidationError("to", "must be a valid agent role (student, teacher, analysis, critique)", "grader"))
	assert.Equal(t, "validation failed: 2 field errors", errs.Error())
}

func TestNewValidationErrorWithRule(t *testing.T) {
	err := NewValidationErrorWithRule("to", "must be a valid agent role (student, teacher, analysis, critique)", "agent_role", "grader")

	assert.Equal(t, "agent_role", err.Rule)
	assert.Equal(t, "grader", err.Value)
}

func TestToValidationErrors(t *testing.T) {
	type routePayload struct {
		To        string `validate:"required,agent_role"`
		SessionID string `validate:"required"`
	}

	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("agent_role", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "student", "teacher", "analysis", "critique":
			return true
		}
		return false
	}))

	t.Run("maps tags to messages", func(t *testing.T) {
		err := validate.Struct(routePayload{To: "grader"})
		require.Error(t, err)

		converted := ToValidationErrors(err)
		require.Len(t, converted, 2)

		byField := make(map[string]ValidationError, len(converted))
		for _, ve := range converted {
			byField[ve.Field] = ve
		}

		assert.Equal(t, "must be a valid agent role (student, teacher, analysis, critique)", byField["To"].Message)
		assert.Equal(t, "agent_role", byField["To"].Rule)
		assert.Equal(t, "is required", byField["SessionID"].Message)
	})

	t.Run("non-validator error yields nothing", func(t *testing.T) {
		assert.Empty(t, ToValidationErrors(assert.AnError))
	})
}
