package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// uuidParam parses a UUID path parameter. Handlers respond with 400 on
// error: a non-UUID path segment is malformed input, not a missing resource.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// pageParams reads the optional "page" and "per_page" query parameters.
// Values that are absent or unparsable come back as zero; the store layer
// applies its own defaults.
func pageParams(r *http.Request) (int64, int64) {
	query := r.URL.Query()

	page, _ := strconv.ParseInt(query.Get("page"), 10, 64)
	perPage, _ := strconv.ParseInt(query.Get("per_page"), 10, 64)

	return page, perPage
}
