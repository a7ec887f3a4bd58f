package llm

import (
	"sync"

	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

type implClient struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
}

// New creates a Client that rotates through the supplied Gemini API
// keys on quota errors.
func New(apiKeys []string, model string, log logger.Logger) Client {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &implClient{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
	}
}
