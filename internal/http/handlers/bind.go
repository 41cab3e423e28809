package handlers

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message,omitempty"`
}

// BindJSON binds the body into out and responds with a 400 detailing
// what failed when it cannot. Returns false when the request was
// already answered.
func BindJSON(ctx *gin.Context, out interface{}) bool {
	err := ctx.ShouldBindJSON(out)

	if err != nil {
		RespondBadRequest(ctx, "Invalid request body", parseBindError(err, out))

		return false
	}

	return true
}

func parseBindError(err error, out interface{}) interface{} {
	// validator errors from binding tags
	var validatorErr validator.ValidationErrors

	if errors.As(err, &validatorErr) {
		fields := make([]FieldError, 0, len(validatorErr))

		for _, fe := range validatorErr {
			fields = append(fields, FieldError{
				Field:   jsonFieldName(out, fe.StructField()),
				Rule:    fe.Tag(),
				Message: validationMessage(fe.Tag()),
			})
		}
		return gin.H{"fields": fields}
	}

	var syntaxErr *json.SyntaxError

	if errors.As(err, &syntaxErr) {
		return gin.H{"json": "invalid_json_syntax"}
	}

	var typeErr *json.UnmarshalTypeError

	if errors.As(err, &typeErr) {
		return gin.H{
			"json":  "invalid_json_type",
			"field": typeErr.Field,
		}
	}

	return gin.H{"reason": err.Error()}
}

// jsonFieldName maps a struct field back to its json tag. Request DTOs
// here are flat structs, so no path walking is needed.
func jsonFieldName(out interface{}, structField string) string {
	t := reflect.TypeOf(out)

	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return structField
	}

	sf, ok := t.FieldByName(structField)

	if !ok {
		return structField
	}

	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")

	if name == "" || name == "-" {
		return structField
	}

	return name
}

func validationMessage(rule string) string {
	switch rule {
	case "required":
		return "is required"
	default:
		return "failed " + rule + " validation"
	}
}
