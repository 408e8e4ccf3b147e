package header

import (
	"mime"
	"net/http"
)

// IsApplicationJSONContentType returns true if the content type of the
// request is application/json, with or without parameters.
func IsApplicationJSONContentType(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}
