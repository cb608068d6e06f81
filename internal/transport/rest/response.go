package rest

import (
	"encoding/json"
	"encoding/xml"
	"net/http"
	"strings"
)

type format int

const (
	formatJSON format = iota
	formatXML
)

// negotiate picks the response format: ?format=xml or an Accept header
// naming XML selects XML, anything else is JSON.
func negotiate(r *http.Request) format {
	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "xml":
		return formatXML
	case "json":
		return formatJSON
	}
	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "application/xml") || strings.Contains(accept, "text/xml") {
		return formatXML
	}
	return formatJSON
}

// respond writes v in the negotiated format.
func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if negotiate(r) == formatXML {
		writeXML(w, status, v)
		return
	}
	writeJSON(w, status, v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeXML(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(xml.Header))
	xml.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeEmpty sends a status with no body.
func writeEmpty(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// errorResponse is the body of every non-validation error.
type errorResponse struct {
	XMLName xml.Name `json:"-" xml:"errors"`
	Error   string   `json:"error" xml:"error"`
}

// validationResponse is the body of a 422.
type validationResponse struct {
	XMLName xml.Name     `json:"-" xml:"errors"`
	Error   string       `json:"error" xml:"-"`
	Fields  []fieldError `json:"fields" xml:"error"`
}

type fieldError struct {
	Field   string `json:"field" xml:"field,attr"`
	Message string `json:"message" xml:",chardata"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	respond(w, r, status, errorResponse{Error: msg})
}
