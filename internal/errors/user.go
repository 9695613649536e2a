package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// A slice rather than a map because wrapped errors need errors.Is() traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Stream I/O
	// ===================
	{
		err: ErrInputRead,
		info: ErrorInfo{
			Message: "Could not read from standard input.",
			Action:  "Check that the upstream command is still producing output.",
		},
	},
	{
		err: ErrOutputWrite,
		info: ErrorInfo{
			Message: "Could not write to standard output.",
			Action:  "Check that the downstream command or terminal is still reading.",
		},
	},

	// ===================
	// Terminal & Time
	// ===================
	{
		err: ErrTerminalSize,
		info: ErrorInfo{
			Message: "Terminal width could not be detected.",
			Action:  "Pass --width to set the spacer width explicitly.",
		},
	},
	{
		err: ErrUnknownTimezone,
		info: ErrorInfo{
			Message: "Unknown timezone, falling back to local time.",
			Action:  "Use an IANA zone name such as Europe/London or America/New_York.",
		},
	},

	// ===================
	// Configuration
	// ===================
	{
		err: ErrConflictingFlags,
		info: ErrorInfo{
			Message: "The specified flags cannot be used together.",
			Action:  "Pass at most one of --no-color/--force-color and of --verbose/--quiet.",
		},
	},
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is not loaded.",
			Action:  "Ensure ~/.spacer/config.yaml is valid YAML.",
		},
	},
	{
		err: ErrValueOutOfRange,
		info: ErrorInfo{
			Message: "Value is outside the allowed range.",
			Action:  "Run 'spacer --help' for valid flag values.",
		},
	},
	{
		err: ErrInvalidDash,
		info: ErrorInfo{
			Message: "The fill character must be exactly one character.",
			Action:  "Pass a single character to --dash, for example --dash '-'.",
		},
	},
	{
		err: ErrInvalidDuration,
		info: ErrorInfo{
			Message: "Invalid duration format.",
			Action:  "Use seconds such as '1.5' or durations like '500ms', '2s'.",
		},
	},
	{
		err: ErrConfigExists,
		info: ErrorInfo{
			Message: "A config file already exists at this location.",
			Action:  "Use 'spacer config init --force' to overwrite it.",
		},
	},
	{
		err: ErrUnsupportedOutputFormat,
		info: ErrorInfo{
			Message: "Unsupported output format.",
			Action:  "Use --output yaml or --output json.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// Direct sentinels hit the map; wrapped errors fall back to errors.Is().
// Unknown errors keep their own message and carry no action.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that have no clear action, the action string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
