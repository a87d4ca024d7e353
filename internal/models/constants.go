package models

// Categories
const (
	// CategoryOthers is assigned when no taxonomy keyword matches an item name.
	CategoryOthers = "Others"
)

// Output formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
