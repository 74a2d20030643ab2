package store

// ClientProfile is the persisted client state. All key material is stored
// base64url-encoded; the file as a whole is the secret, so deployments must
// protect it with filesystem permissions.
type ClientProfile struct {
	// Hostname pins the profile to the vault endpoint it was bound against.
	Hostname string `json:"hostname,omitempty"`

	// ClientID identifies the client credential to the server.
	ClientID string `json:"clientId"`

	// PrivateKey is the client's P-256 private key, PKCS8 DER, base64url.
	// Generated once on first use and kept for the lifetime of the binding.
	PrivateKey string `json:"privateKey,omitempty"`

	// AppKey is the long-lived secret key received during the one-time bind,
	// base64url. Empty until the bind completes.
	AppKey string `json:"appKey,omitempty"`

	// AppOwnerPublicKey is the vault owner's public key delivered on bind,
	// base64url of the 65-byte uncompressed point. Needed to wrap record
	// keys when creating records.
	AppOwnerPublicKey string `json:"appOwnerPublicKey,omitempty"`

	// ServerPublicKeyID selects the server public key the client last used.
	ServerPublicKeyID int `json:"serverPublicKeyId,omitempty"`
}

// Bound reports whether the one-time bind has completed for this profile.
func (p *ClientProfile) Bound() bool {
	return p != nil && p.AppKey != ""
}
