package models

// SearchQuery is the variables payload of the search operation. Name is not
// encrypted on the way out; only its search token is attached under Hmacs.
type SearchQuery struct {
	Name  string            `json:"name"`
	Hmacs map[string]string `json:"hmacs,omitempty"`
}

// SearchResult is a minimal identity entry returned by the search
// operation. Only Name is decrypted.
type SearchResult struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
