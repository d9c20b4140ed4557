package config

const (
	LogErrorColor   = "\033[31m"
	LogWarningColor = "\033[33m"
	LogInfoColor    = "\033[32m"
	LogColorReset   = "\033[0m"
)

// Color constants for logger prefixes and terminal drawing
const (
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorWhite   = "\033[37m"
	ColorReset   = "\033[0m"
)
