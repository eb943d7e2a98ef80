package domain

// IntegrationField describes one credential input an integration needs
// before it can connect. The field list is fixed per catalog entry.
type IntegrationField struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Kind  FieldKind `json:"type"`
}

// Integration is one third-party connection toggle. Name is the unique key
// within the catalog. AccessToken is only present while connected to a
// token-based provider; Settings holds the credential values the user
// supplied. Loading is transient: true only while a connect or disconnect
// handshake is in flight.
type Integration struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Connected   bool               `json:"connected"`
	Loading     bool               `json:"isLoading,omitempty"`
	Fields      []IntegrationField `json:"settings,omitempty"`
	AccessToken string             `json:"accessToken,omitempty"`
	Settings    map[string]string  `json:"config,omitempty"`
}
