package channel

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

var (
	topicPattern     = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	expoTokenPattern = regexp.MustCompile(`^Expo(nent)?PushToken\[[^\]]+\]$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("ntfytopic", func(fl validator.FieldLevel) bool {
		return topicPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("expotoken", func(fl validator.FieldLevel) bool {
		return expoTokenPattern.MatchString(fl.Field().String())
	})

	return v
}

// decodeConfig strictly decodes a stored config map into out and validates it.
// Unknown keys, wrong types and rule violations all yield a ValidationError.
func decodeConfig(config map[string]any, out any) error {
	if config == nil {
		config = map[string]any{}
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:  "json",
		Metadata: &md,
		Result:   out,
	})
	if err != nil {
		return fmt.Errorf("failed to build config decoder: %w", err)
	}

	if err := dec.Decode(config); err != nil {
		return domain.NewValidationError("config", err.Error())
	}

	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		return domain.NewValidationError("config", "unknown field(s): "+strings.Join(md.Unused, ", "))
	}

	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return domain.NewValidationError("config."+fe.Field(), describe(fe))
		}
		return domain.NewValidationError("config", err.Error())
	}

	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url", "http_url":
		return "must be a valid http(s) URL"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "ntfytopic":
		return "must be 1-64 characters of letters, digits, '-' or '_'"
	case "expotoken":
		return "must look like ExponentPushToken[...]"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
