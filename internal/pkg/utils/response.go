package utils

import (
	"errors"
	"net/http"
	"patientor-service/internal/pkg/constvars"
	"patientor-service/internal/pkg/dto/responses"
	"patientor-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// ResolveError returns the status code and client message for err and logs
// the developer details.
func ResolveError(log *zap.Logger, err error) (int, string) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	var backendErr *exceptions.BackendError
	switch {
	case errors.As(err, &customErr):
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.Any("location", map[string]interface{}{
				"file":          customErr.Location.File,
				"line":          customErr.Location.Line,
				"function_name": customErr.Location.FunctionName,
			}),
		)
	case errors.As(err, &backendErr):
		code = constvars.StatusBadGateway
		clientMessage = constvars.ErrClientUnexpected
		log.Error(backendErr.Error())
	default:
		log.Error(err.Error())
	}
	return code, clientMessage
}
