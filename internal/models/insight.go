package models

// Priority ranks an insight for display: high > medium > low.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// InsightCategory selects which advisory rule set runs. It is chosen by the
// caller, not derived by the engine.
type InsightCategory string

const (
	CategoryProfit   InsightCategory = "profit"
	CategoryCost     InsightCategory = "cost"
	CategoryGrowth   InsightCategory = "growth"
	CategoryRisk     InsightCategory = "risk"
	CategoryCashFlow InsightCategory = "cashflow"
)

// ParseInsightCategory maps a query value to a rule category. Empty or
// unrecognized values fall back to the profit rules.
func ParseInsightCategory(s string) InsightCategory {
	switch InsightCategory(s) {
	case CategoryCost, CategoryGrowth, CategoryRisk, CategoryCashFlow:
		return InsightCategory(s)
	}
	return CategoryProfit
}

// ActionKind tags the follow-up an insight recommends. The presentation
// layer maps kinds to navigation targets via a lookup table; the engine
// never emits free-text actions.
type ActionKind string

const (
	ActionReviewPricing         ActionKind = "review-pricing"
	ActionAnalyzeExpenses       ActionKind = "analyze-expenses"
	ActionExploreGrowth         ActionKind = "explore-growth"
	ActionReviewExpenseCategory ActionKind = "review-expense-category"
	ActionSetupExpenseAlerts    ActionKind = "setup-expense-alerts"
	ActionDevelopMarketing      ActionKind = "develop-marketing"
	ActionReviewClientServices  ActionKind = "review-client-services"
	ActionPlanInvestments       ActionKind = "plan-investments"
	ActionFollowUpOverdue       ActionKind = "follow-up-overdue"
	ActionSetupReminders        ActionKind = "setup-payment-reminders"
	ActionAcquireClients        ActionKind = "acquire-clients"
	ActionCollectReceivables    ActionKind = "collect-receivables"
	ActionBuildCashReserve      ActionKind = "build-cash-reserve"
	ActionReviewPaymentTerms    ActionKind = "review-payment-terms"
	ActionAddFirstClient        ActionKind = "add-first-client"
)

// Label returns the button text shown for an action.
func (a ActionKind) Label() string {
	labels := map[ActionKind]string{
		ActionReviewPricing:         "Review Pricing Strategy",
		ActionAnalyzeExpenses:       "Analyze Expense Categories",
		ActionExploreGrowth:         "Explore Growth Opportunities",
		ActionReviewExpenseCategory: "Review Expense Category",
		ActionSetupExpenseAlerts:    "Set Up Expense Alerts",
		ActionDevelopMarketing:      "Develop Marketing Strategy",
		ActionReviewClientServices:  "Review Client Services",
		ActionPlanInvestments:       "Plan Strategic Investments",
		ActionFollowUpOverdue:       "Follow Up on Overdue Invoices",
		ActionSetupReminders:        "Set Up Payment Reminders",
		ActionAcquireClients:        "Develop New Client Acquisition",
		ActionCollectReceivables:    "Implement Collection Strategy",
		ActionBuildCashReserve:      "Build Cash Reserve",
		ActionReviewPaymentTerms:    "Review Payment Terms",
		ActionAddFirstClient:        "Add Your First Client",
	}
	if label, ok := labels[a]; ok {
		return label
	}
	return string(a)
}

// Insight is one advisory recommendation produced by the rule engine. It is
// computed on demand and never persisted.
type Insight struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Action      ActionKind `json:"action"`
	Priority    Priority   `json:"priority"`
	Impact      string     `json:"impact"`
}
