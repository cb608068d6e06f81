package domain

// SessionState is the listing memory of one browsing session.
// It is loaded by the transport layer, passed into service calls and saved
// back after the call; services never reach for it on their own.
type SessionState struct {
	CurrentPage  int      `json:"current_page,omitempty"`
	CurrentQuery string   `json:"current_query,omitempty"`
	FilterByTags []string `json:"filter_by_tags,omitempty"`
}

// Page returns the remembered page, or 1 when none has been stored.
func (s *SessionState) Page() int {
	if s == nil || s.CurrentPage < 1 {
		return 1
	}
	return s.CurrentPage
}
