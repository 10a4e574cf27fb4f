package web

// error_messages.go maps errors to the messages users see.
//
// # Error Codes Reference
//
// View Errors (VIEW001-VIEW099)
//
//	VIEW001 - View not found: no view is registered under the requested key
//	          Action: Pick a view from the dashboard
//
// Dataset Errors (DATA001-DATA099)
//
//	DATA001 - Not loaded: the first dataset load has not finished (or failed)
//	          Action: Please try again in a few moments
//	DATA002 - Invalid dataset: the source returned records with empty or
//	          duplicate ids or slugs; the previous snapshot stays active
//	          Action: Fix the reported records at the source and reload
//	DATA003 - Load timeout: the source did not answer within DATASET_LOAD_TIMEOUT
//	          Action: Check the dataset source and try again
//
// Source Errors (SRC001-SRC099), matched by pattern
//
//	SRC001 - Connection refused: the database or cache is unreachable
//	SRC002 - File missing: the configured dataset file does not exist
//	SRC003 - Decode error: the dataset file or document is malformed
//
// Rate Limiting (RATE001): too many requests from one address.
//
// ERR000 is the fallback when nothing matches; the log entry carrying the
// request id has the technical error.

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/JonMunkholm/admintables/internal/catalog"
	"github.com/JonMunkholm/admintables/internal/views"
)

// UserMessage is what a user sees for an error.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Support reference
}

// sentinelErrors are matched with errors.Is before any pattern, in order.
var sentinelErrors = []struct {
	target error
	status int
	msg    UserMessage
}{
	{
		target: views.ErrUnknownView,
		status: http.StatusNotFound,
		msg: UserMessage{
			Message: "View not found",
			Action:  "Pick a view from the dashboard",
			Code:    "VIEW001",
		},
	},
	{
		target: catalog.ErrNotLoaded,
		status: http.StatusServiceUnavailable,
		msg: UserMessage{
			Message: "Datasets are not loaded yet",
			Action:  "Please try again in a few moments",
			Code:    "DATA001",
		},
	},
	{
		target: catalog.ErrInvalidDataset,
		status: http.StatusBadGateway,
		msg: UserMessage{
			Message: "The dataset source returned invalid records",
			Action:  "Fix the reported records at the source and reload",
			Code:    "DATA002",
		},
	},
	{
		target: context.DeadlineExceeded,
		status: http.StatusGatewayTimeout,
		msg: UserMessage{
			Message: "Loading the datasets timed out",
			Action:  "Check the dataset source and try again",
			Code:    "DATA003",
		},
	},
}

// errorPatterns are matched case-insensitively against the error text.
// The first match wins.
var errorPatterns = []struct {
	pattern string
	status  int
	msg     UserMessage
}{
	{
		pattern: "connection refused",
		status:  http.StatusBadGateway,
		msg: UserMessage{
			Message: "Unable to reach the dataset source",
			Action:  "Please try again in a few moments",
			Code:    "SRC001",
		},
	},
	{
		pattern: "no such file",
		status:  http.StatusBadGateway,
		msg: UserMessage{
			Message: "The dataset file does not exist",
			Action:  "Check DATASET_PATH",
			Code:    "SRC002",
		},
	},
	{
		pattern: "decode",
		status:  http.StatusBadGateway,
		msg: UserMessage{
			Message: "The dataset source is malformed",
			Action:  "Check the file or documents for syntax errors",
			Code:    "SRC003",
		},
	},
	{
		pattern: "rate limit",
		status:  http.StatusTooManyRequests,
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts an error to a user message.
//
//	MapError(fmt.Errorf("%w: widgets", views.ErrUnknownView)).Code == "VIEW001"
func MapError(err error) UserMessage {
	msg, _ := classify(err)
	return msg
}

// classify returns the user message and HTTP status for err.
func classify(err error) (UserMessage, int) {
	if err == nil {
		return UserMessage{}, http.StatusOK
	}
	for _, s := range sentinelErrors {
		if errors.Is(err, s.target) {
			return s.msg, s.status
		}
	}
	text := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		if strings.Contains(text, p.pattern) {
			return p.msg, p.status
		}
	}
	return defaultMessage, http.StatusInternalServerError
}
