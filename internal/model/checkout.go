package model

// Resolution is the display record produced for a checkout selection.
// Empty fields signal "not resolved" or "not applicable".
type Resolution struct {
	Price string `json:"price"`
	Size  string `json:"size"`
	URL   string `json:"url"`
}

// Resolved reports whether the selection produced a payment link.
func (r Resolution) Resolved() bool {
	return r.URL != ""
}

// Navigation is the outbound payment link chosen for a proceed action.
type Navigation struct {
	URL      string `json:"url"`
	Fallback bool   `json:"fallback"`
}

// ResolveResponse represents the response payload for a resolve request.
type ResolveResponse struct {
	Product     string     `json:"product"`
	Resolution  Resolution `json:"resolution"`
	Resolved    bool       `json:"resolved"`
	ButtonLabel string     `json:"buttonLabel"`
}

// LinkResponse carries a single outbound URL.
type LinkResponse struct {
	URL string `json:"url"`
}
