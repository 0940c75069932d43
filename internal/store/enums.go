package store

// Call status ENUMs
const (
	CallStatusPending   = "pending"
	CallStatusCalling   = "calling"
	CallStatusAnswered  = "answered"
	CallStatusFailed    = "failed"
	CallStatusCompleted = "completed"
)

// callStatusRank orders the lifecycle; answered and failed share a rank
// because a call reaches exactly one of them.
var callStatusRank = map[string]int{
	CallStatusPending:   0,
	CallStatusCalling:   1,
	CallStatusAnswered:  2,
	CallStatusFailed:    2,
	CallStatusCompleted: 3,
}

// IsValidCallStatus reports whether status is a known lifecycle status
func IsValidCallStatus(status string) bool {
	_, ok := callStatusRank[status]
	return ok
}

// CanTransitionCallStatus reports whether a call may move from one status
// to another. Only strictly forward moves are allowed.
func CanTransitionCallStatus(from, to string) bool {
	fromRank, ok := callStatusRank[from]
	if !ok {
		return false
	}
	toRank, ok := callStatusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

// Provider status placed on calls whose outbound request was rejected
const ProviderStatusPlacementFailed = "placement_failed"
