// Package insights evaluates a fixed table of advisory rules over
// precomputed aggregates. Rules are grouped by category; the caller selects
// the active category and the engine runs that category's rules in order.
// There is no state between evaluations and no learned component.
package insights

import (
	"fmt"

	"casense/internal/models"
)

// rule pairs a guard with an insight builder. Emission order within a
// category follows table order and is also the display order.
type rule struct {
	when  func(Aggregates) bool
	build func(Aggregates) models.Insight
}

var rulesByCategory = map[models.InsightCategory][]rule{
	models.CategoryProfit:   profitRules,
	models.CategoryCost:     costRules,
	models.CategoryGrowth:   growthRules,
	models.CategoryRisk:     riskRules,
	models.CategoryCashFlow: cashFlowRules,
}

// Generate runs the active category's rules against the aggregates. When no
// rule fires, exactly one "Getting Started" insight is returned so the panel
// is never empty.
func Generate(agg Aggregates, category models.InsightCategory) []models.Insight {
	rules, ok := rulesByCategory[category]
	if !ok {
		rules = profitRules
	}

	var out []models.Insight
	for _, r := range rules {
		if r.when(agg) {
			out = append(out, r.build(agg))
		}
	}

	if len(out) == 0 {
		out = append(out, models.Insight{
			Title:       "Getting Started",
			Description: "Add clients, transactions, and invoices to receive personalized business insights and recommendations.",
			Action:      models.ActionAddFirstClient,
			Priority:    models.PriorityLow,
			Impact:      "Start tracking your business",
		})
	}
	return out
}

var profitRules = []rule{
	{
		when: func(a Aggregates) bool {
			return a.Income > 0 && a.ProfitMargin > 0 && a.ProfitMargin < 10
		},
		build: func(a Aggregates) models.Insight {
			return models.Insight{
				Title: "Low Profit Margin Detected",
				Description: fmt.Sprintf(
					"Your current profit margin is %.1f%%. Industry average is 15-20%%. Consider reviewing your pricing strategy or reducing operational costs.",
					a.ProfitMargin),
				Action:   models.ActionReviewPricing,
				Priority: models.PriorityHigh,
				Impact:   fmt.Sprintf("Potential increase: %s", models.FormatINR(a.Income*0.15-a.Profit)),
			}
		},
	},
	{
		when: func(a Aggregates) bool { return a.Expenses > a.Income*0.7 },
		build: func(a Aggregates) models.Insight {
			return models.Insight{
				Title: "High Expense Ratio",
				Description: fmt.Sprintf(
					"Your expenses represent %.1f%% of revenue. Focus on cost optimization in high-expense categories.",
					a.ExpenseRatio()),
				Action:   models.ActionAnalyzeExpenses,
				Priority: models.PriorityHigh,
				Impact:   fmt.Sprintf("Potential savings: %s", models.FormatINR(a.Expenses*0.1)),
			}
		},
	},
	{
		when: func(a Aggregates) bool { return a.Profit > 0 && a.ProfitMargin > 20 },
		build: func(a Aggregates) models.Insight {
			return models.Insight{
				Title: "Excellent Profitability",
				Description: fmt.Sprintf(
					"Great job! Your profit margin of %.1f%% is above industry standards. Consider reinvesting profits for growth.",
					a.ProfitMargin),
				Action:   models.ActionExploreGrowth,
				Priority: models.PriorityLow,
				Impact:   "Growth potential identified",
			}
		},
	},
}

var costRules = []rule{
	{
		when: func(a Aggregates) bool {
			_, top := a.TopExpenseCategory()
			return top > a.Expenses*0.3
		},
		build: func(a Aggregates) models.Insight {
			name, top := a.TopExpenseCategory()
			return models.Insight{
				Title: "Major Expense Category Identified",
				Description: fmt.Sprintf(
					"%s accounts for %.1f%% of total expenses. Review this category for optimization opportunities.",
					name, (top/a.Expenses)*100),
				Action:   models.ActionReviewExpenseCategory,
				Priority: models.PriorityMedium,
				Impact:   fmt.Sprintf("Potential savings: %s", models.FormatINR(top*0.15)),
			}
		},
	},
	{
		when: func(a Aggregates) bool { return a.Expenses > 0 },
		build: func(a Aggregates) models.Insight {
			return models.Insight{
				Title:       "Automated Cost Tracking",
				Description: "Consider implementing automated expense tracking to identify recurring costs and subscription services that may be underutilized.",
				Action:      models.ActionSetupExpenseAlerts,
				Priority:    models.PriorityMedium,
				Impact:      "Improved cost visibility",
			}
		},
	},
}

var growthRules = []rule{
	{
		when: func(a Aggregates) bool { return a.ClientCount < 10 },
		build: func(a Aggregates) models.Insight {
			return models.Insight{
				Title: "Client Base Expansion Opportunity",
				Description: fmt.Sprintf(
					"You currently have %d clients. Expanding your client base by 20%% could increase revenue by approximately %s.",
					a.ClientCount, models.FormatINR(a.Income*0.2)),
				Action:   models.ActionDevelopMarketing,
				Priority: models.PriorityMedium,
				Impact:   fmt.Sprintf("Potential revenue: %s", models.FormatINR(a.Income*0.2)),
			}
		},
	},
	{
		when: func(a Aggregates) bool { return a.AvgClientValue() > 0 },
		build: func(a Aggregates) models.Insight {
			avg := a.AvgClientValue()
			return models.Insight{
				Title: "Client Value Optimization",
				Description: fmt.Sprintf(
					"Average client value is %s. Consider upselling additional services to existing clients.",
					models.FormatINR(avg)),
				Action:   models.ActionReviewClientServices,
				Priority: models.PriorityLow,
				Impact:   fmt.Sprintf("Potential increase: %s", models.FormatINR(avg*float64(a.ClientCount)*0.15)),
			}
		},
	},
	{
		when: func(a Aggregates) bool { return a.Income > 0 && a.ProfitMargin > 15 },
		build: func(a Aggregates) models.Insight {
			return models.Insight{
				Title:       "Investment Opportunity",
				Description: "Strong profitability indicates capacity for strategic investments in technology, marketing, or team expansion.",
				Action:      models.ActionPlanInvestments,
				Priority:    models.PriorityLow,
				Impact:      "Long-term growth potential",
			}
		},
	},
}

var riskRules = []rule{
	{
		when: func(a Aggregates) bool { return a.OverdueInvoices > 0 },
		build: func(a Aggregates) models.Insight {
			return models.Insight{
				Title: "Overdue Invoices Risk",
				Description: fmt.Sprintf(
					"You have %d overdue invoices totaling %s. This impacts cash flow and increases collection risk.",
					a.OverdueInvoices, models.FormatINR(a.OverdueAmount)),
				Action:   models.ActionFollowUpOverdue,
				Priority: models.PriorityHigh,
				Impact:   fmt.Sprintf("At risk: %s", models.FormatINR(a.OverdueAmount)),
			}
		},
	},
	{
		when: func(a Aggregates) bool { return a.PendingInvoices > 5 },
		build: func(a Aggregates) models.Insight {
			return models.Insight{
				Title: "High Pending Invoice Volume",
				Description: fmt.Sprintf(
					"You have %d pending invoices. Implement automated payment reminders to improve collection rates.",
					a.PendingInvoices),
				Action:   models.ActionSetupReminders,
				Priority: models.PriorityMedium,
				Impact:   "Improved cash flow",
			}
		},
	},
	{
		when: func(a Aggregates) bool { return a.ClientCount < 5 && a.Income > 0 },
		build: func(a Aggregates) models.Insight {
			return models.Insight{
				Title: "Client Concentration Risk",
				Description: fmt.Sprintf(
					"You have a small client base (%d clients). Diversifying your client portfolio reduces business risk.",
					a.ClientCount),
				Action:   models.ActionAcquireClients,
				Priority: models.PriorityMedium,
				Impact:   "Reduced business risk",
			}
		},
	},
}

var cashFlowRules = []rule{
	{
		when: func(a Aggregates) bool { return a.UnpaidAmount > a.Income*0.3 },
		build: func(a Aggregates) models.Insight {
			return models.Insight{
				Title: "Cash Flow Constraint",
				Description: fmt.Sprintf(
					"Unpaid invoices (%s) represent a significant portion of revenue. Accelerate collections to improve cash flow.",
					models.FormatINR(a.UnpaidAmount)),
				Action:   models.ActionCollectReceivables,
				Priority: models.PriorityHigh,
				Impact:   fmt.Sprintf("Potential cash inflow: %s", models.FormatINR(a.UnpaidAmount)),
			}
		},
	},
	{
		when: func(a Aggregates) bool { return a.Expenses > a.Income*0.8 },
		build: func(a Aggregates) models.Insight {
			return models.Insight{
				Title:       "Tight Cash Flow Margin",
				Description: "Your expenses are very close to income, leaving minimal cash buffer. Consider building a cash reserve for unexpected expenses.",
				Action:      models.ActionBuildCashReserve,
				Priority:    models.PriorityHigh,
				Impact:      "Improved financial stability",
			}
		},
	},
	{
		when: func(a Aggregates) bool {
			// Payment-pace heuristic carried over from the legacy rule set.
			if a.InvoiceCount == 0 {
				return false
			}
			avgPaymentDays := float64(a.PaidInvoices) * 30 / float64(a.InvoiceCount)
			return avgPaymentDays > 45
		},
		build: func(a Aggregates) models.Insight {
			return models.Insight{
				Title:       "Slow Payment Collection",
				Description: "Average payment collection appears slow. Consider offering early payment discounts or implementing stricter payment terms.",
				Action:      models.ActionReviewPaymentTerms,
				Priority:    models.PriorityMedium,
				Impact:      "Faster cash collection",
			}
		},
	},
}
