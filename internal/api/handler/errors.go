package handler

import (
	"net/http"

	"github.com/mcoot/werewolfgame-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest      = apierr.CodeInvalidRequest
	CodePlayerNotFound      = apierr.CodePlayerNotFound
	CodeRoomNotFound        = apierr.CodeRoomNotFound
	CodeRoomFull            = apierr.CodeRoomFull
	CodeNameTaken           = apierr.CodeNameTaken
	CodeGameInProgress      = apierr.CodeGameInProgress
	CodeNotHost             = apierr.CodeNotHost
	CodeInvalidSettings     = apierr.CodeInvalidSettings
	CodePlayersNotReady     = apierr.CodePlayersNotReady
	CodeInsufficientPlayers = apierr.CodeInsufficientPlayers
	CodeAlreadyActed        = apierr.CodeAlreadyActed
	CodeInternalError       = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
