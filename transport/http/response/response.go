package response

import (
	"encoding/json"
	"net/http"

	"lbm/shared/constant"
	"lbm/shared/failure"
	"lbm/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error is the uniform error envelope. Besides the error message it can carry
// field-level details, an operator hint, and a connectivity state.
type Error struct {
	Error   *string `json:"error,omitempty"`
	Message *string `json:"message,omitempty"`
	Details *string `json:"details,omitempty"`
	Hint    *string `json:"hint,omitempty"`
	State   *string `json:"state,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error envelope derived from the failure
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	envelope := Error{Error: &errMsg}

	if fail, ok := failure.As(err); ok {
		if fail.Details != "" {
			envelope.Details = &fail.Details
		}

		if fail.Hint != "" {
			envelope.Hint = &fail.Hint
		}

		if fail.State != "" {
			envelope.State = &fail.State
		}
	}

	response(writer, code, envelope)
}

// WithUnavailable sends the error envelope for an unreachable backing service.
func WithUnavailable(writer http.ResponseWriter, errMsg, message, state, hint string) {
	response(writer, http.StatusServiceUnavailable, Error{
		Error:   &errMsg,
		Message: &message,
		State:   &state,
		Hint:    &hint,
	})
}

// WithFile sends raw file bytes with a download disposition.
func WithFile(writer http.ResponseWriter, contentType, fileName string, payload []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.Header().Set(constant.RequestHeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(payload); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
