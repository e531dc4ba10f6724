package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"
)

const maxBodyBytes = 1 << 20 // 1mb

// readJSON decodes the request body into data, rejecting unknown fields and
// bodies over maxBodyBytes.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(data)
}

// writeJSON encodes data as the response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// parseDate accepts the wizard's date-only format as well as full RFC3339
// timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// parseOptionalDate returns nil for an absent value, which the domain treats
// as a continuously running campaign.
func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
