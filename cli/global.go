package main

// <constants>
const configJSONErrMsg = `could not serialize config JSON: %s`
const resultJSONErrMsg = `could not serialize result JSON: %s`

// exit codes
const (
	exitOK           = 0
	exitUsage        = 1
	exitFailure      = 2
	exitChangesFound = 3
)

// environment variables
const (
	envBaseline      = "INTACT_BASELINE"
	envHashAlgorithm = "INTACT_HASH_ALGORITHM"
	envJSON          = "INTACT_JSON"
)

// </constants>
