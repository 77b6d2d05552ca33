package services

// requireOwner allows a mutation only when the caller authored the resource.
// Existence is the caller's job: check it first so a missing resource is
// reported as not found rather than not authorized.
func requireOwner(ownerID, callerID string) error {
	if ownerID == "" || ownerID != callerID {
		return ErrNotAuthorized
	}
	return nil
}
