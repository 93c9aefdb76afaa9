package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"reviewdeck_backend/internal/models"
	"reviewdeck_backend/internal/widgetconfig"
)

// registerCustomRules wires the enum validation tags used by the DTOs.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that cannot register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-widget-status", validateWidgetStatus)
	mustRegister("is-layout-type", validateLayoutType)
	mustRegister("is-provider", validateProvider)
	mustRegister("is-sort-key", validateSortKey)
}

func validateWidgetStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is handled by 'required'
	}
	for _, s := range models.ValidWidgetStatuses() {
		if value == string(s) {
			return true
		}
	}
	return false
}

func validateLayoutType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, t := range widgetconfig.ValidLayoutTypes() {
		if value == string(t) {
			return true
		}
	}
	return false
}

func validateProvider(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, p := range models.ValidProviders() {
		if value == string(p) {
			return true
		}
	}
	return false
}

func validateSortKey(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, k := range widgetconfig.ValidSortKeys() {
		if value == string(k) {
			return true
		}
	}
	return false
}
