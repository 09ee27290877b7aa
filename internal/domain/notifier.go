package domain

// Notifier surfaces a human-readable message to the operator. It never fails
// the caller.
type Notifier interface {
	Notify(message string)
}
