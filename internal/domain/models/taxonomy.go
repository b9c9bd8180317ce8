// internal/domain/models/taxonomy.go
package models

// Facet values offered by the submission forms and browse filters.
// Categorical filters compare against these exactly (case-sensitive).
var (
	Industries = []string{
		"SaaS", "E-commerce", "FinTech", "EdTech", "HealthTech",
		"AI/ML", "Marketing", "Mobile Apps", "Marketplace", "Hardware",
		"Consumer Products", "B2B Services", "Social Media", "Gaming", "Other",
	}

	BusinessTypes = []string{
		"AI-ML", "AgTech", "Automobile", "B2B Services", "Blockchain",
		"CleanTech", "E-commerce", "EdTech", "FinTech", "Food Tech",
		"Gaming", "HealthTech", "IoT", "Marketplace", "Mobile Apps",
		"Real Estate", "SaaS", "Social Media", "Travel", "Other",
	}

	NeedTypes = []string{
		"Investment", "Marketing", "Partnership", "Technical",
		"Distribution", "Logistics", "Advisory", "Legal", "HR", "Other",
	}

	Countries = []string{
		"United States", "United Kingdom", "Canada", "Australia",
		"Germany", "France", "Singapore", "India", "Japan", "Brazil",
		"Spain", "Sweden", "Netherlands", "South Africa", "Other",
	}
)
