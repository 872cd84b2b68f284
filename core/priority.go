package core

// Priority is the class derived from a task's (important, urgent) flags.
// It keys both the human-readable label and the export row styling.
type Priority int16

const (
	PriorityNormal Priority = iota
	PriorityImportant
	PriorityUrgent
	PriorityCritical
)

// Classify maps the two flags to exactly one priority class.
func Classify(important, urgent bool) Priority {
	switch {
	case important && urgent:
		return PriorityCritical
	case urgent:
		return PriorityUrgent
	case important:
		return PriorityImportant
	default:
		return PriorityNormal
	}
}

func (p Priority) Label() string {
	switch p {
	case PriorityCritical:
		return "Important & Urgent"
	case PriorityUrgent:
		return "NotImportant & Urgent"
	case PriorityImportant:
		return "Important & NotUrgent"
	default:
		return "NotImportant & NotUrgent"
	}
}

func (p Priority) Class() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityUrgent:
		return "urgent"
	case PriorityImportant:
		return "important"
	default:
		return "normal"
	}
}
