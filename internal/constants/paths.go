package constants

// Directory names and paths used by spacer.
const (
	// AppHome is the hidden directory in the user's home where spacer keeps
	// its configuration.
	AppHome = ".spacer"

	// ConfigFileName is the name of the configuration file inside AppHome.
	ConfigFileName = "config.yaml"
)

// Log file rotation settings, used when a log file is configured.
const (
	// LogMaxSizeMB is the size at which the log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days to keep rotated files.
	LogMaxAgeDays = 28

	// LogCompress enables gzip compression of rotated files.
	LogCompress = true
)
