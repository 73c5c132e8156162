package http

// ErrorStatus exposes the error-to-status mapping for tests
func ErrorStatus(err error) (int, string) {
	status, message, _ := errorStatus(err)
	return status, message
}
