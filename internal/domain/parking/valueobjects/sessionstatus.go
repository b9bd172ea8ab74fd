package valueobjects

// SessionStatus is the entry/exit axis of a parking session. The soft-delete
// marker is deliberately not a status: deletion is orthogonal and can strike
// a session in either state.
type SessionStatus string

const (
	SessionStatusOpen   SessionStatus = "open"
	SessionStatusClosed SessionStatus = "closed"
)

func (s SessionStatus) String() string {
	return string(s)
}
