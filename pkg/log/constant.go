package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Field names written by the JSON encoder.
const (
	keyTime    = "time"
	keyLevel   = "level"
	keyCaller  = "caller"
	keyMessage = "msg"
	keyLogger  = "logger"
)

const timeFormat = "2006-01-02 15:04:05.000"
