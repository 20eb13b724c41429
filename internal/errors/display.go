package errors

import (
	"fmt"
	"os"

	"tfsum/internal/ui"
)

// DisplayError formats and displays an error message to the user.
// It formats different error types appropriately and uses color coding.
func DisplayError(err error) {
	if err == nil {
		return
	}

	errMsg := err.Error()

	switch {
	case IsErrPlanNotFound(err):
		fmt.Fprintf(os.Stderr, "%sPlan Not Found:%s %s\n", ui.ColorError, ui.ColorReset, errMsg)

	case IsErrMalformedPlan(err):
		fmt.Fprintf(os.Stderr, "%sInvalid Plan:%s %s\n", ui.ColorError, ui.ColorReset, errMsg)

	case IsParseError(err):
		fmt.Fprintf(os.Stderr, "%sParse Error:%s %s\n", ui.ColorError, ui.ColorReset, errMsg)

	case IsValidationError(err):
		// Validation errors are shown in yellow
		fmt.Fprintf(os.Stderr, "%sValidation Error:%s %s\n", ui.ColorWarning, ui.ColorReset, errMsg)

	case IsConfigurationError(err):
		fmt.Fprintf(os.Stderr, "%sConfiguration Error:%s %s\n", ui.ColorError, ui.ColorReset, errMsg)

	case IsErrUserAborted(err):
		// User aborted operations are shown in yellow
		fmt.Fprintf(os.Stderr, "%sOperation Aborted:%s %s\n", ui.ColorWarning, ui.ColorReset, errMsg)

	default:
		fmt.Fprintf(os.Stderr, "%sError:%s %s\n", ui.ColorError, ui.ColorReset, errMsg)
	}
}

// ExitWithError displays an error and exits with non-zero status code.
func ExitWithError(err error, code int) {
	DisplayError(err)
	os.Exit(code)
}
