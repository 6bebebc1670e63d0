package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// Secrets never come from the dotfile; they are read from the environment by FromEnv.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Agent    AgentConfig    `json:"agent"`
	Provider ProviderConfig `json:"provider"`
	Weather  WeatherConfig  `json:"weather"`
	Calendar CalendarConfig `json:"calendar"`
	Cache    CacheConfig    `json:"cache"`
	Log      LogConfig      `json:"log"`
	UI       UIConfig       `json:"ui"`

	Credentials Credentials `json:"-"`
}

type AgentConfig struct {
	MaxIterations int `json:"max_iterations"` // Default: 20
}

type ProviderConfig struct {
	MaxOutputTokens int `json:"max_output_tokens"` // Default: 4096
}

type WeatherConfig struct {
	BaseURL        string `json:"base_url"`        // Default: https://weather.com
	LoginURL       string `json:"login_url"`       // Default: https://weather.com/en-GB/login
	HomeURL        string `json:"home_url"`        // Default: https://weather.com/en-GB/
	Headless       bool   `json:"headless"`        // Default: true
	TimeoutSeconds int    `json:"timeout_seconds"` // Default: 10
}

type CalendarConfig struct {
	CalendarID        string `json:"calendar_id"`         // Default: primary
	TimeZone          string `json:"time_zone"`           // Default: UTC
	MaxEventsPerDay   int64  `json:"max_events_per_day"`  // Default: 100
	DefaultMaxResults int64  `json:"default_max_results"` // Default: 10
}

type CacheConfig struct {
	Enabled bool   `json:"enabled"` // Default: true
	Path    string `json:"path"`    // Default: ~/.config/weatheragent/locations.db
}

type LogConfig struct {
	Path  string `json:"path"`  // Default: ~/.config/weatheragent/agent.log
	Level string `json:"level"` // Default: info
}

type UIConfig struct {
	ColorPrimary string `json:"color_primary"` // Default: "51" (cyan)
	ColorUser    string `json:"color_user"`    // Default: "42" (green)
	ColorAnswer  string `json:"color_answer"`  // Default: "213" (magenta)
	ColorTitle   string `json:"color_title"`   // Default: "220" (yellow)
	ColorError   string `json:"color_error"`   // Default: "196" (red)
	ColorStatus  string `json:"color_status"`  // Default: "39" (blue)
}

// Credentials are populated from the process environment only.
type Credentials struct {
	Azure     AzureCredentials
	OpenAI    ModelCredentials
	Anthropic ModelCredentials
	Gemini    ModelCredentials

	WeatherEmail    string
	WeatherPassword string

	CalendarCredentialsFile string
	CalendarTokenFile       string
}

type AzureCredentials struct {
	Endpoint   string
	APIKey     string
	Deployment string
	APIVersion string
}

type ModelCredentials struct {
	APIKey string
	Model  string
}

// DefaultConfig returns the default configuration.
// Paths that depend on the home directory are left empty and resolved by the Loader.
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			MaxIterations: 20,
		},
		Provider: ProviderConfig{
			MaxOutputTokens: 4096,
		},
		Weather: WeatherConfig{
			BaseURL:        "https://weather.com",
			LoginURL:       "https://weather.com/en-GB/login",
			HomeURL:        "https://weather.com/en-GB/",
			Headless:       true,
			TimeoutSeconds: 10,
		},
		Calendar: CalendarConfig{
			CalendarID:        "primary",
			TimeZone:          "UTC",
			MaxEventsPerDay:   100,
			DefaultMaxResults: 10,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			ColorPrimary: "51",
			ColorUser:    "42",
			ColorAnswer:  "213",
			ColorTitle:   "220",
			ColorError:   "196",
			ColorStatus:  "39",
		},
	}
}
