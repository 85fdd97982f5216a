package config

import "os"

// Config holds all application configuration
type Config struct {
	Port string

	// Google Sheets backing store
	SpreadsheetID   string
	CredentialsJSON string
	CredentialsPath string

	// LINE push notifications
	LineChannelSecret string
	LineChannelToken  string
	LineGroupID       string

	// Base URL used in notification links
	AppURL string

	// Menu OCR
	GeminiAPIKey string

	// Image hosting
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		SpreadsheetID:       getEnv("SPREADSHEET_ID", ""),
		CredentialsJSON:     getEnv("GOOGLE_CREDENTIALS_JSON", ""),
		CredentialsPath:     getEnv("GOOGLE_CREDENTIALS_PATH", "credentials.json"),
		LineChannelSecret:   getEnv("LINE_CHANNEL_SECRET", ""),
		LineChannelToken:    getEnv("LINE_CHANNEL_ACCESS_TOKEN", ""),
		LineGroupID:         getEnv("LINE_GROUP_ID", ""),
		AppURL:              getEnv("APP_URL", "http://localhost:5173"),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}
}

// LineEnabled reports whether push notifications are configured.
func (c *Config) LineEnabled() bool {
	return c.LineChannelToken != "" && c.LineGroupID != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
