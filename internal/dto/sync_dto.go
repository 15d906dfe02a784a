package dto

// SyncRequest carries the bearer token for the external file-storage API.
// The token comes from the client's own OAuth flow — this service never sees
// credentials, only the resulting access token.
type SyncRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}

type SyncResponse struct {
	Status   string `json:"status"`
	LastSync string `json:"lastSync,omitempty"`
}
