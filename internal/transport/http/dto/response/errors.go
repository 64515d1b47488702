package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrSessionRequired = ErrorResponse{
		Status:  "error",
		Error:   "session_required",
		Details: "Sign in with Discord to continue",
	}

	ErrUnknownSubmissionKind = ErrorResponse{
		Status:  "error",
		Error:   "unknown_kind",
		Details: "Submission kind must be showcase or gallery",
	}

	ErrDraftNotFound = ErrorResponse{
		Status:  "error",
		Error:   "draft_not_found",
		Details: "Draft does not exist or has expired",
	}

	ErrSubmissionNotFound = ErrorResponse{
		Status:  "error",
		Error:   "submission_not_found",
		Details: "Submission does not exist",
	}
)
