package handler

import "fmt"

// MsgNoVideoData is returned with 400 when the body is empty.
const MsgNoVideoData = "No video data provided"

// FormatError renders a processing failure for the response body. The raw
// error text is exposed to the caller as-is.
func FormatError(err error) string {
	return fmt.Sprintf("Error: %v", err)
}

// FormatInternalError renders a recovered panic value.
func FormatInternalError(v any) string {
	return fmt.Sprintf("InternalError: %v", v)
}

func successMessage(key string) string {
	return "Successfully uploaded " + key
}
