package ui

// ActionColor returns the ANSI color used to display a change action.
func ActionColor(action string) string {
	switch action {
	case "create":
		return ColorSuccess
	case "update":
		return ColorWarning
	case "delete":
		return ColorError
	case "read":
		return ColorInfo
	default:
		return ColorFaint
	}
}

// ImpactColor returns the ANSI color used to display an impact level.
func ImpactColor(level string) string {
	switch level {
	case "high":
		return ColorError
	case "medium":
		return ColorWarning
	case "low":
		return ColorSuccess
	default:
		return ColorFaint
	}
}
