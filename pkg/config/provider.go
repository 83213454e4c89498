package config

import (
	"fmt"
	"os"

	"github.com/entrhq/snaplog/pkg/llm/openai"
)

// BuildProvider creates an LLM provider based on configuration precedence:
// CLI flags > Environment variables > Config file > Defaults
func BuildProvider(cliModel, cliBaseURL, cliAPIKey string) (*openai.Provider, error) {
	finalModel := cliModel
	finalBaseURL := cliBaseURL
	finalAPIKey := cliAPIKey

	// Fall back to environment variables if CLI values are empty
	if finalAPIKey == "" {
		finalAPIKey = os.Getenv("OPENAI_API_KEY")
	}
	if finalBaseURL == "" {
		finalBaseURL = os.Getenv("OPENAI_BASE_URL")
	}

	// Fall back to config file if still empty
	if llmConfig := GetLLM(); llmConfig != nil {
		if finalModel == "" {
			finalModel = llmConfig.GetModel()
		}
		if finalBaseURL == "" {
			finalBaseURL = llmConfig.GetBaseURL()
		}
		if finalAPIKey == "" {
			finalAPIKey = llmConfig.GetAPIKey()
		}
	}

	if finalAPIKey == "" {
		return nil, fmt.Errorf("API key is required: set OPENAI_API_KEY, use -api-key, or configure it in ~/.snaplog/config.yaml")
	}

	providerOpts := []openai.ProviderOption{}
	if finalModel != "" {
		providerOpts = append(providerOpts, openai.WithModel(finalModel))
	}
	if finalBaseURL != "" {
		providerOpts = append(providerOpts, openai.WithBaseURL(finalBaseURL))
	}

	provider, err := openai.NewProvider(finalAPIKey, providerOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}

	return provider, nil
}
