package config

import (
	"errors"
	"fmt"
	"os"

	apperrors "github.com/louisbranch/sprawlsheet/internal/platform/errors"
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// ExitError writes err to stderr and exits with the status mapped from its
// domain code. Domain errors print their catalog message before the detail.
// A nil error returns without exiting.
func ExitError(prefix string, err error) {
	if err == nil {
		return
	}
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, domainErr.LocalizedMessage(""))
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", prefix, err)
	os.Exit(apperrors.CodeOf(err).ExitCode())
}
