package widgets

import "github.com/goliatone/go-landing/pkg/interfaces"

// Builtin returns the descriptors for the household landing widgets. The
// slice order is the canonical enumeration order: MissingKeys and the
// "insert widget" affordances present keys in this order, not document order.
func Builtin() []interfaces.WidgetDescriptor {
	return []interfaces.WidgetDescriptor{
		{
			Key:         "tasks-overview",
			Element:     "tasks-overview-widget",
			Title:       "Tasks Overview",
			Description: "Open and overdue tasks for the household.",
			Category:    "tasks",
		},
		{
			Key:         "your-balance",
			Element:     "your-balance-widget",
			Title:       "Your Balance",
			Description: "The signed amount the current member owes or is owed.",
			Category:    "finances",
		},
		{
			Key:         "fairness-score",
			Element:     "fairness-score-widget",
			Title:       "Fairness Score",
			Description: "How evenly chores are distributed across members.",
			Category:    "tasks",
		},
		{
			Key:         "household-balances",
			Element:     "household-balances-widget",
			Title:       "Household Balances",
			Description: "Per-member balance summary.",
			Category:    "finances",
		},
		{
			Key:         "recent-activity",
			Element:     "recent-activity-widget",
			Title:       "Recent Activity",
			Description: "Latest events from the household activity feed.",
			Category:    "activity",
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"limit": map[string]any{"type": "integer", "minimum": 1, "maximum": 50},
				},
				"additionalProperties": false,
			},
		},
		{
			Key:         "bucket-list-preview",
			Element:     "bucket-list-preview-widget",
			Title:       "Bucket List",
			Description: "Upcoming planned activities and their date votes.",
			Category:    "activity",
		},
		{
			Key:         "upcoming-dates",
			Element:     "upcoming-dates-widget",
			Title:       "Upcoming Dates",
			Description: "Confirmed dates from bucket list voting.",
			Category:    "activity",
		},
		{
			Key:         "task-reliability",
			Element:     "task-reliability-widget",
			Title:       "Task Reliability",
			Description: "Completion rate for tasks assigned to the current member.",
			Category:    "tasks",
		},
		{
			Key:         "finance-summary",
			Element:     "finance-summary-widget",
			Title:       "Finance Summary",
			Description: "Monthly spending totals for the household.",
			Category:    "finances",
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"months": map[string]any{"type": "integer", "minimum": 1, "maximum": 12},
				},
				"additionalProperties": false,
			},
		},
		{
			Key:         "shopping-list",
			Element:     "shopping-list-widget",
			Title:       "Shopping List",
			Description: "The shared shopping list with open items first.",
			Category:    "tasks",
		},
		{
			Key:         "member-roster",
			Element:     "member-roster-widget",
			Title:       "Members",
			Description: "Household members and their roles.",
			Category:    "household",
		},
	}
}

// DefaultKeys lists the widgets seeded into a household's default landing
// document when no document has been saved yet.
func DefaultKeys() []string {
	return []string{"tasks-overview", "your-balance", "recent-activity"}
}

// BuiltinCatalog builds the catalog for the compiled-in descriptor set.
func BuiltinCatalog() *Catalog {
	return MustNewCatalog(Builtin())
}
