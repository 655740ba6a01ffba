package models

import "github.com/go-playground/validator/v10"

// Shared validator instance for model struct tags.
var validate = validator.New()
