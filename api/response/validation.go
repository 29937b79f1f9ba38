package response

import (
	"bytes"
	"encoding/json"
	stdErrors "errors"
	"io"
	"reflect"
	"strings"
	"sync"

	apperrors "tasklist/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const invalidRequestMessage = "Invalid request parameters"

var (
	registerOnce sync.Once

	errMalformedJSON = stdErrors.New("body is not a single JSON value")
)

// UseJSONFieldNames makes binding validation errors report json tag names instead of Go field names.
func UseJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
}

// BindJSON decodes the request body into obj and validates it.
// Unlike ShouldBindJSON it rejects bodies with anything after the first JSON value.
func BindJSON(c *gin.Context, obj any) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) > 0 && !json.Valid(body) {
		return errMalformedJSON
	}
	return binding.JSON.BindBody(body, obj)
}

// HandleBindingError answers a request whose body failed to bind with a 422 envelope.
func HandleBindingError(c *gin.Context, err error) {
	HandleAppError(c, bindingError(err))
}

func bindingError(err error) *apperrors.AppError {
	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)

	var details []apperrors.FieldError
	switch {
	case stdErrors.As(err, &verrs):
		for _, fe := range verrs {
			details = append(details, apperrors.FieldError{Field: fe.Field(), Reason: fe.Tag()})
		}
	case stdErrors.As(err, &typeErr) && typeErr.Field == "":
		details = append(details, apperrors.FieldError{Field: "body", Reason: "must be object, got " + typeErr.Value})
	case stdErrors.As(err, &typeErr):
		details = append(details, apperrors.FieldError{
			Field:  typeErr.Field,
			Reason: "must be " + typeErr.Type.String() + ", got " + typeErr.Value,
		})
	case stdErrors.Is(err, errMalformedJSON), stdErrors.As(err, &syntaxErr), stdErrors.Is(err, io.ErrUnexpectedEOF):
		details = append(details, apperrors.FieldError{Field: "body", Reason: "malformed JSON"})
	case stdErrors.Is(err, io.EOF):
		details = append(details, apperrors.FieldError{Field: "body", Reason: "required"})
	default:
		details = append(details, apperrors.FieldError{Field: "body", Reason: err.Error()})
	}

	appErr := apperrors.Validation(invalidRequestMessage, details...)
	appErr.Err = err
	return appErr
}
