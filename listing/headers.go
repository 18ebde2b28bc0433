package listing

import "net/http"

// SetCommonHeaders applies the headers every response carries, listings
// and streamed files alike.
func SetCommonHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Referrer-Policy", "same-origin")
	h.Set("Cache-Control", "no-cache")
	h.Set("X-Content-Type-Options", "nosniff")
}
