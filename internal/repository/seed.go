package repository

import "github.com/spec-kit/lead-dashboard/internal/domain"

const seedSubmitted = "02/02/2024 2:45 PM"

// SeedLeads returns the fixture the store starts with.
func SeedLeads() []domain.Lead {
	return []domain.Lead{
		{ID: "001", Name: "Jorge Ruiz", Submitted: seedSubmitted, Status: domain.LeadStatusPending, Country: "Mexico"},
		{ID: "002", Name: "Bahar Zamir", Submitted: seedSubmitted, Status: domain.LeadStatusPending, Country: "Mexico"},
		{ID: "003", Name: "Mary Lopez", Submitted: seedSubmitted, Status: domain.LeadStatusPending, Country: "Brazil"},
		{ID: "004", Name: "Li Zijin", Submitted: seedSubmitted, Status: domain.LeadStatusPending, Country: "South Korea"},
		{ID: "005", Name: "Mark Antonov", Submitted: seedSubmitted, Status: domain.LeadStatusPending, Country: "Russia"},
		{ID: "006", Name: "Jane Ma", Submitted: seedSubmitted, Status: domain.LeadStatusPending, Country: "Mexico"},
		{ID: "007", Name: "Anand Jain", Submitted: seedSubmitted, Status: domain.LeadStatusReachedOut, Country: "Mexico"},
		{ID: "008", Name: "Anna Voronova", Submitted: seedSubmitted, Status: domain.LeadStatusPending, Country: "France"},
	}
}
