package models

// Wire payload types for the secrets endpoint. All byte-valued fields travel
// base64url-encoded inside the encrypted request/response envelopes.

// GetPayload is the request body of a get_secrets call. It is serialized to
// JSON and AES-GCM-encrypted under the transmission key before sending.
type GetPayload struct {
	// ClientVersion identifies the SDK build to the server.
	ClientVersion string `json:"clientVersion"`

	// ClientID is the client's identifier derived from its credential.
	ClientID string `json:"clientId"`

	// PublicKey carries the client's exported raw public key on the very
	// first (binding) call only; omitted once the app key is cached.
	PublicKey string `json:"publicKey,omitempty"`

	// RequestedRecords restricts the response to the listed record UIDs.
	// Empty means all records shared to the client.
	RequestedRecords []string `json:"requestedRecords,omitempty"`
}

// UpdatePayload is the request body of an update_secret call.
type UpdatePayload struct {
	ClientVersion string `json:"clientVersion"`
	ClientID      string `json:"clientId"`
	RecordUID     string `json:"recordUid"`
	// Data is the base64url of the record data encrypted under the record key.
	Data     string `json:"data"`
	Revision int64  `json:"revision"`
}

// CreatePayload is the request body of a create_secret call.
type CreatePayload struct {
	ClientVersion string `json:"clientVersion"`
	ClientID      string `json:"clientId"`
	RecordUID     string `json:"recordUid"`
	// RecordKey is the base64url of the new record key wrapped under the
	// app key.
	RecordKey string `json:"recordKey"`
	Data      string `json:"data"`
	FolderUID string `json:"folderUid,omitempty"`
}

// DeletePayload is the request body of a delete_secret call.
type DeletePayload struct {
	ClientVersion string   `json:"clientVersion"`
	ClientID      string   `json:"clientId"`
	RecordUIDs    []string `json:"recordUids"`
}

// SecretsResponse is the decrypted body of a get_secrets response.
type SecretsResponse struct {
	// EncryptedAppKey is present only on the first (binding) call: the
	// long-lived app key wrapped under the one-time token bytes.
	EncryptedAppKey string `json:"encryptedAppKey,omitempty"`

	// AppOwnerPublicKey is delivered alongside the app key on bind; needed
	// later to wrap record keys for record creation.
	AppOwnerPublicKey string `json:"appOwnerPublicKey,omitempty"`

	Records []EncryptedRecord `json:"records,omitempty"`
	Folders []EncryptedFolder `json:"folders,omitempty"`

	// Warnings carries non-fatal server-side notices.
	Warnings string `json:"warnings,omitempty"`
}

// EncryptedRecord is one record as it arrives from the server: the record
// key wrapped under the app key (or folder key) and the data blob encrypted
// under the record key.
type EncryptedRecord struct {
	RecordUID string          `json:"recordUid"`
	RecordKey string          `json:"recordKey,omitempty"`
	Data      string          `json:"data"`
	Revision  int64           `json:"revision"`
	Files     []EncryptedFile `json:"files,omitempty"`
}

// EncryptedFile is one attachment descriptor: the file key wrapped under the
// record key, encrypted metadata, and the download URL for the content.
type EncryptedFile struct {
	FileUID      string `json:"fileUid"`
	FileKey      string `json:"fileKey"`
	Data         string `json:"data"`
	URL          string `json:"url,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// EncryptedFolder groups records whose keys are wrapped under a shared
// folder key instead of the app key directly.
type EncryptedFolder struct {
	FolderUID string            `json:"folderUid"`
	FolderKey string            `json:"folderKey"`
	Records   []EncryptedRecord `json:"records,omitempty"`
}

// DeleteSecretsResponse reports per-record deletion status.
type DeleteSecretsResponse struct {
	Records []DeleteSecretStatus `json:"records,omitempty"`
}

// DeleteSecretStatus is the per-record outcome of a delete call.
type DeleteSecretStatus struct {
	RecordUID    string `json:"recordUid"`
	ResponseCode string `json:"responseCode"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}
