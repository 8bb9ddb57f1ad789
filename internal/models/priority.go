package models

// Priority represents an order's production priority level
type Priority int

// Priority constants, ordered from most to least urgent
const (
	PriorityUrgent Priority = iota + 1
	PriorityHigh
	PriorityNormal
	PriorityLow
)

// DefaultPriority is assigned when the order service sends no priority
const DefaultPriority = PriorityNormal

// String returns the wire/display name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityUrgent:
		return "urgent"
	case PriorityHigh:
		return "high"
	case PriorityNormal:
		return "normal"
	case PriorityLow:
		return "low"
	default:
		return "normal"
	}
}

// ParsePriority maps a wire string to a Priority. Unknown values fall back
// to DefaultPriority so a malformed snapshot never rejects a card.
func ParsePriority(s string) Priority {
	switch s {
	case "urgent":
		return PriorityUrgent
	case "high":
		return PriorityHigh
	case "normal":
		return PriorityNormal
	case "low":
		return PriorityLow
	default:
		return DefaultPriority
	}
}
