package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	domerrors "github.com/garyellow/askuenr-go/internal/errors"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Field messages returned in the 400 payload.
const (
	msgRequired = "This field is required."
	msgBlank    = "This field may not be blank."
	msgNotText  = "Not a valid string."
	msgBadBody  = "Request body must be a JSON object."
)

// Length limits in runes, checked after trimming.
const (
	maxQuestionLength  = 1000
	maxSessionIDLength = 100
)

var registerFieldNames sync.Once

// useJSONFieldNames makes validation errors report json names ("session_id")
// instead of Go field names ("SessionID").
func useJSONFieldNames() {
	registerFieldNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// validationFields maps a binding error to per-field messages.
func validationFields(err error) *domerrors.ValidationError {
	verr := &domerrors.ValidationError{}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), fieldMessage(fe))
		}
		return verr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return verr.Add(typeErr.Field, msgNotText)
	}

	return verr.Add("body", msgBadBody)
}

func fieldMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return msgRequired
	}
	return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
}

// checkTrimmed validates the trimmed request values. It returns nil when
// both are acceptable.
func checkTrimmed(question, sessionID string) *domerrors.ValidationError {
	verr := &domerrors.ValidationError{}
	switch {
	case question == "":
		verr.Add("question", msgBlank)
	case utf8.RuneCountInString(question) > maxQuestionLength:
		verr.Add("question", tooLongMessage(maxQuestionLength))
	}
	if utf8.RuneCountInString(sessionID) > maxSessionIDLength {
		verr.Add("session_id", tooLongMessage(maxSessionIDLength))
	}
	if len(verr.Fields) == 0 {
		return nil
	}
	return verr
}

func tooLongMessage(limit int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", limit)
}
