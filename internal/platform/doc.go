package platform

// Package platform contains OS/platform integration glue: locating the
// directory beside the executable and filesystem helpers.
