package theme

// Error codes attached to theme errors. Callers can recover them through
// the errors.ErrorCoder interface of github.com/agilira/go-errors.
const (
	ErrCodeInvalidTemplate  = "THEME_INVALID_TEMPLATE"
	ErrCodeTemplateNotFound = "THEME_TEMPLATE_NOT_FOUND"
	ErrCodeParseFailed      = "THEME_PARSE_FAILED"
	ErrCodeWatchFailed      = "THEME_WATCH_FAILED"
)
