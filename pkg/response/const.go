package response

// Response message and code constants.
const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong. Please try again later."
	InternalServerErrorCode = 500
)

// DateTimeFormat is the layout used by the DateTime response type.
const DateTimeFormat = "2006-01-02 15:04:05"
