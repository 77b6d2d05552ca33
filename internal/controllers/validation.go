package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/rdSoftInc/DevConnect/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// jsonFieldName makes validation errors name fields the way clients send them.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// fieldMessages maps "field" or "field.tag" to the message shown to clients.
type fieldMessages map[string]string

func (m fieldMessages) lookup(field, tag string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := m[field]; ok {
		return msg
	}
	return "Invalid value"
}

// bindJSON decodes and validates the body into req. On failure it writes a
// 400 listing every invalid field and returns false.
func bindJSON(ctx *gin.Context, req interface{}, messages fieldMessages) bool {
	var err error
	if ctx.Request.Body == nil || ctx.Request.Body == http.NoBody {
		err = binding.Validator.ValidateStruct(req)
	} else if err = ctx.ShouldBindJSON(req); errors.Is(err, io.EOF) {
		// empty body: report every missing field
		err = binding.Validator.ValidateStruct(req)
	}
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]services.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, services.FieldError{
				Field: fe.Field(),
				Msg:   messages.lookup(fe.Field(), fe.Tag()),
			})
		}
		respondError(ctx, services.NewValidationError(fields...))
		return false
	}

	respondError(ctx, services.NewValidationError(services.FieldError{Msg: "Invalid request body"}))
	return false
}

// skillList accepts either a JSON array or a comma-separated string.
type skillList []string

func (s *skillList) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		var csv string
		if err := json.Unmarshal(data, &csv); err != nil {
			return err
		}
		raw = strings.Split(csv, ",")
	}

	var cleaned []string
	for _, skill := range raw {
		if skill = strings.TrimSpace(skill); skill != "" {
			cleaned = append(cleaned, skill)
		}
	}
	// nil so that `required` fails on an effectively empty list
	*s = cleaned
	return nil
}

// parseDate parses an already-validated YYYY-MM-DD value.
func parseDate(value string) time.Time {
	t, _ := time.Parse(dateLayout, value)
	return t
}

// parseOptionalDate is parseDate for optional fields.
func parseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t := parseDate(value)
	return &t
}
