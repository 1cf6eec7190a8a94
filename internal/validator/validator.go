package validator

import (
	"reflect"
	"strings"

	apperrors "github.com/argumentor/analysis-service/internal/errors"
	"github.com/argumentor/analysis-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator wraps struct-tag validation with the custom tags this
// service uses on its request types.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()

	// Register all custom validators once
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator: structValidator,
	}
}

// ValidateStruct validates struct tags. Failures come back as
// apperrors.ValidationErrors so handlers can surface per-field messages.
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.structValidator.Struct(s)
	if err == nil {
		return nil
	}
	if converted := apperrors.ToValidationErrors(err); len(converted) > 0 {
		return converted
	}
	return err
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("agent_role", validateAgentRole)
	validate.RegisterValidation("modality", validateModality)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validation functions

func validateAgentRole(fl validator.FieldLevel) bool {
	return models.IsValidAgentRole(models.AgentRole(fl.Field().String()))
}

func validateModality(fl validator.FieldLevel) bool {
	value := models.Modality(fl.Field().String())
	if value == models.ModalityUndetermined {
		return true
	}
	for _, m := range models.Modalities {
		if m == value {
			return true
		}
	}
	return false
}
