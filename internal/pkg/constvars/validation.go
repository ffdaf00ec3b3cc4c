package constvars

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"oneof":    "must be one of: %s",
	"min":      "must be at least %s characters",
	"max":      "must be at most %s characters",
	"email":    "must be a valid email address",
	"datetime": "must match the expected date format",
}

var TagsWithParams = map[string]bool{
	"oneof":    true,
	"min":      true,
	"max":      true,
	"datetime": true,
}
