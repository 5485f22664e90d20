// ABOUTME: AuthorizationStatus model for permission query results.
// ABOUTME: Partitions requested types into granted/denied per direction.
package models

// AuthorizationStatus reports the grant state of a set of requested
// data types. Every requested read type lands in exactly one of
// ReadAuthorized/ReadDenied, and every requested write type in exactly
// one of WriteAuthorized/WriteDenied.
type AuthorizationStatus struct {
	ReadAuthorized  []string `json:"readAuthorized"`
	ReadDenied      []string `json:"readDenied"`
	WriteAuthorized []string `json:"writeAuthorized"`
	WriteDenied     []string `json:"writeDenied"`
}

// NewAuthorizationStatus returns a status with all four sets empty but
// non-nil, so the JSON encoding is always four arrays.
func NewAuthorizationStatus() *AuthorizationStatus {
	return &AuthorizationStatus{
		ReadAuthorized:  []string{},
		ReadDenied:      []string{},
		WriteAuthorized: []string{},
		WriteDenied:     []string{},
	}
}
