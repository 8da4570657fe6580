package activity

// DefaultListLimit bounds GetRecentActivity when no limit is given.
const DefaultListLimit = 50

// ListActivityOptions provides filtering options for listing activity.
type ListActivityOptions struct {
	ActivityType *ActivityType
	Limit        int
}
