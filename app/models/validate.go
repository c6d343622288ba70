package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate runs struct-tag validation against any request payload or model.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
