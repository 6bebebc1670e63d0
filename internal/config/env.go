package config

// Environment variable names consumed by FromEnv.
const (
	EnvAzureEndpoint   = "AZURE_OPENAI_ENDPOINT"
	EnvAzureAPIKey     = "AZURE_OPENAI_API_KEY"
	EnvAzureDeployment = "AZURE_OPENAI_DEPLOYMENT"
	EnvAzureAPIVersion = "AZURE_OPENAI_API_VERSION"

	EnvOpenAIAPIKey = "OPENAI_API_KEY"
	EnvOpenAIModel  = "OPENAI_MODEL"

	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
	EnvAnthropicModel  = "ANTHROPIC_MODEL"

	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvGeminiModel  = "GEMINI_MODEL"

	EnvWeatherEmail    = "WEATHER_AGENT_EMAIL"
	EnvWeatherPassword = "WEATHER_AGENT_PASSWORD"

	EnvCalendarCredentials = "GOOGLE_CALENDAR_CREDENTIALS"
	EnvCalendarToken       = "GOOGLE_CALENDAR_TOKEN"
)

const (
	DefaultAzureDeployment = "gpt-4o"
	DefaultAzureAPIVersion = "2024-08-01-preview"
	DefaultOpenAIModel     = "gpt-4o"
	DefaultAnthropicModel  = "claude-sonnet-4-5"
	DefaultGeminiModel     = "gemini-2.5-flash"

	DefaultCalendarCredentialsFile = "credentials.json"
	DefaultCalendarTokenFile       = "token.json"
)

// FromEnv fills cfg.Credentials from getenv, applying defaults for optional values.
// It does not decide which provider wins; see the provider factory for that.
func FromEnv(cfg *Config, getenv func(string) string) {
	c := &cfg.Credentials

	c.Azure = AzureCredentials{
		Endpoint:   getenv(EnvAzureEndpoint),
		APIKey:     getenv(EnvAzureAPIKey),
		Deployment: envOr(getenv, EnvAzureDeployment, DefaultAzureDeployment),
		APIVersion: envOr(getenv, EnvAzureAPIVersion, DefaultAzureAPIVersion),
	}
	c.OpenAI = ModelCredentials{
		APIKey: getenv(EnvOpenAIAPIKey),
		Model:  envOr(getenv, EnvOpenAIModel, DefaultOpenAIModel),
	}
	c.Anthropic = ModelCredentials{
		APIKey: getenv(EnvAnthropicAPIKey),
		Model:  envOr(getenv, EnvAnthropicModel, DefaultAnthropicModel),
	}
	c.Gemini = ModelCredentials{
		APIKey: getenv(EnvGeminiAPIKey),
		Model:  envOr(getenv, EnvGeminiModel, DefaultGeminiModel),
	}

	c.WeatherEmail = getenv(EnvWeatherEmail)
	c.WeatherPassword = getenv(EnvWeatherPassword)

	c.CalendarCredentialsFile = envOr(getenv, EnvCalendarCredentials, DefaultCalendarCredentialsFile)
	c.CalendarTokenFile = envOr(getenv, EnvCalendarToken, DefaultCalendarTokenFile)
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}
