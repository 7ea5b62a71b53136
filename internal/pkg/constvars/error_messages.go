package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"oneof":    "must be one of [%s]",
	"alphanum": "must contain only alphanumeric characters",
	"max":      "maximum at %s characters long",
	"iso_date": "must be a date in the format YYYY-MM-DD",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"max":   true,
	"oneof": true,
}

// Friendly messages shown for issues on a given entry field.
var EntryFieldMessages = map[string]string{
	"description":       "Please provide a short description.",
	"date":              "Please enter a valid date in the format YYYY-MM-DD.",
	"specialist":        "Please provide the specialist's name.",
	"diagnosisCodes":    "Diagnosis codes must be valid codes (e.g., A10, B20).",
	"healthCheckRating": "Health rating must be a number from 0 (Healthy) to 3 (Critical).",
}

// Error messages for clients
const (
	ErrClientUnknownValidationError        = "Unknown validation error"
	ErrClientInvalidHealthCheckInput       = "Invalid input for HealthCheck entry."
	ErrClientUnexpected                    = "Unexpected error occurred."
	ErrClientFetchPatientFailed            = "An error occurred while fetching patient details."
	ErrClientAddEntryFailed                = "Failed to add entry."
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientTooManyRequests               = "Too many requests, please try again shortly."
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseForm            = "cannot parse form"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevReadResponseBody           = "failed to read response body"
	ErrDevDecodeResponse             = "failed to decode %s response"
	ErrDevBackendRejected            = "backend rejected %s request with status %d"
	ErrDevBackendContractViolation   = "backend %s payload violates contract"
	ErrDevURLParamIDValidationFailed = "URL param %s validation failed"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevUnsupportedEntryType       = "unsupported entry type %q"
	ErrDevUnhandledEntryType         = "unhandled entry type: %q"
	ErrDevRenderTemplate             = "failed to render template %s"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
)
