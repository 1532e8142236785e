package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"source_account": "ariel-frischer",
		"source_repo":    "claude-guidelines",
		"source_branch":  "main",
		"base_url":       "",
		"transport":      "auto",
		"timeout":        120,
		"show_progress":  true,
	}
}
