package handler

import (
	"net/http"
	"strconv"
)

// parsePage reads the current/pageSize query parameters. Missing or
// malformed values come back as zero and are normalized by the service.
func parsePage(r *http.Request) (int, int) {
	q := r.URL.Query()
	current, _ := strconv.Atoi(q.Get("current"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))
	return current, pageSize
}
