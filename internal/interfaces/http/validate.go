package http

import "github.com/go-playground/validator/v10"

// validate é a instância compartilhada do validador de DTOs.
var validate = validator.New()
