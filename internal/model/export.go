package model

// ExportDocument is the whole-database backup shape, used both for manual
// export/import and for cloud push/pull. On import, any subset of the three
// collections present is applied; unknown fields are ignored.
type ExportDocument struct {
	Customers  []Customer `json:"customers"`
	Products   []Product  `json:"products"`
	Logs       []StockLog `json:"logs"`
	ExportedAt string     `json:"exportedAt"`
	Owner      string     `json:"owner,omitempty"`
	Version    string     `json:"version,omitempty"`
}

// SyncState records the last successful cloud push for an identity.
type SyncState struct {
	LastSync string `json:"lastSync"`
}
