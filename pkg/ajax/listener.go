package ajax

// CallListener carries the lifecycle hooks attached to a single AJAX call.
// Hooks left zero are omitted from the serialized attributes.
type CallListener struct {
	// Before fires ahead of the request; it cannot affect the call flow.
	Before Code
	// Complete fires after the call finishes, successful or not. Snippet
	// hooks receive textStatus with the completion status.
	Complete Code
	// Precondition gates the call: returning false skips the request
	// entirely and no other hook fires.
	Precondition Code
	// Success fires with the parsed response payload in data.
	Success Code
}

// IsZero reports whether the listener carries no hooks at all.
func (l CallListener) IsZero() bool {
	return l.Before.IsZero() && l.Complete.IsZero() && l.Precondition.IsZero() && l.Success.IsZero()
}
