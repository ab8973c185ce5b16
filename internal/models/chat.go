// internal/models/chat.go
package models

// ServiceListing is one entry of a canned HopeBot answer.
type ServiceListing struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Hours   string `json:"hours"`
	Notes   string `json:"notes,omitempty"`
}

// ChatResponse is either a listing (Understood) or a not-understood message.
type ChatResponse struct {
	Understood            bool             `json:"understood"`
	Location              string           `json:"location,omitempty"`
	ServiceType           string           `json:"serviceType,omitempty"`
	Services              []ServiceListing `json:"services,omitempty"`
	AvailableServiceTypes []string         `json:"availableServiceTypes,omitempty"`
	Message               string           `json:"message"`
}

// DirectoryEntry is a service listing as indexed for search.
type DirectoryEntry struct {
	ID          string `json:"id"`
	Location    string `json:"location"`
	ServiceType string `json:"serviceType"`
	ServiceListing
}

type DirectorySearchResult struct {
	Total   int64            `json:"total"`
	Entries []DirectoryEntry `json:"entries"`
}
