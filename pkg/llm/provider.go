// Package llm provides the abstraction over the external multimodal
// generation capability.
//
// Providers handle API communication with LLM services and nothing else.
// The diary layer is responsible for composing requests, handling
// capability failures, and persisting results; this separation keeps
// providers reusable outside the diary pipeline and testable with stubs.
package llm

import (
	"context"

	"github.com/entrhq/snaplog/pkg/types"
)

// Provider defines the interface for LLM integrations.
//
// Diary generation is a single blocking round trip: send one composed
// message (text instruction plus ordered inlined images), receive the
// full text response. No streaming surface is required.
type Provider interface {
	// Complete sends messages to the LLM and returns the full response.
	//
	// Message part order must be preserved on the wire: the instruction
	// text precedes the image payloads, and images keep their input
	// order. Returns the assistant's response message or an error.
	Complete(ctx context.Context, messages []*types.Message) (*types.Message, error)

	// GetModelInfo returns information about the model being used.
	GetModelInfo() *types.ModelInfo

	// GetModel returns the model name being used.
	GetModel() string

	// GetBaseURL returns the base URL being used for API requests.
	GetBaseURL() string
}
