package driveops

// This file is part of the package tests (package driveops) and provides
// helpers that allow tests in the external package to access internal
// package constructs. Helpers are exported so `driveops_test` can call them
// via the module import path.

// NewCommandError constructs a command error using the package-internal constructor.
func NewCommandError(family error, msg string, cause error) error {
	return newCommandError(family, msg, cause)
}

// Classify exposes the classification of remote failures.
func Classify(err error) error {
	return classify(err)
}
