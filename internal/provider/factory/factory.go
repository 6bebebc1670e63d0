package factory

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cyclone1070/weatheragent/internal/config"
	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/provider/anthropic"
	"github.com/Cyclone1070/weatheragent/internal/provider/gemini"
	"github.com/Cyclone1070/weatheragent/internal/provider/openai"
)

// ErrNoProviderConfigured is returned when no backend has credentials.
var ErrNoProviderConfigured = errors.New("no LLM provider configured: set " +
	config.EnvAzureEndpoint + " and " + config.EnvAzureAPIKey + ", or " +
	config.EnvOpenAIAPIKey + ", " + config.EnvAnthropicAPIKey + " or " + config.EnvGeminiAPIKey)

// Backend identifies a chat-completion service.
type Backend string

const (
	BackendAzure     Backend = "azure-openai"
	BackendOpenAI    Backend = "openai"
	BackendAnthropic Backend = "anthropic"
	BackendGemini    Backend = "gemini"
)

// Select picks the backend from the available credentials. The enterprise
// deployment wins over direct keys; it needs both endpoint and key.
func Select(creds config.Credentials) (Backend, error) {
	switch {
	case creds.Azure.Endpoint != "" && creds.Azure.APIKey != "":
		return BackendAzure, nil
	case creds.OpenAI.APIKey != "":
		return BackendOpenAI, nil
	case creds.Anthropic.APIKey != "":
		return BackendAnthropic, nil
	case creds.Gemini.APIKey != "":
		return BackendGemini, nil
	default:
		return "", ErrNoProviderConfigured
	}
}

// New builds the provider chosen by Select.
func New(ctx context.Context, cfg *config.Config) (provider.Provider, error) {
	backend, err := Select(cfg.Credentials)
	if err != nil {
		return nil, err
	}

	creds := cfg.Credentials
	maxTokens := cfg.Provider.MaxOutputTokens

	switch backend {
	case BackendAzure:
		return openai.NewAzure(creds.Azure.Endpoint, creds.Azure.APIKey, creds.Azure.APIVersion, creds.Azure.Deployment, maxTokens), nil
	case BackendOpenAI:
		return openai.NewDirect(creds.OpenAI.APIKey, creds.OpenAI.Model, maxTokens), nil
	case BackendAnthropic:
		return anthropic.NewClient(creds.Anthropic.APIKey, creds.Anthropic.Model, maxTokens), nil
	case BackendGemini:
		client, err := gemini.NewClient(ctx, creds.Gemini.APIKey)
		if err != nil {
			return nil, fmt.Errorf("gemini.NewClient: %w", err)
		}
		return gemini.New(client, creds.Gemini.Model, maxTokens), nil
	default:
		return nil, fmt.Errorf("unsupported backend %q", backend)
	}
}
