package processor

import (
	"github.com/nguyentantai21042004/meeting-flow/internal/config"
	"github.com/nguyentantai21042004/meeting-flow/internal/flow"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

type implProcessor struct {
	cfg    *config.Config
	flows  flow.Registry
	logger logger.Logger
}

// New creates a Processor backed by the flow registry.
func New(cfg *config.Config, flows flow.Registry, log logger.Logger) Processor {
	return &implProcessor{
		cfg:    cfg,
		flows:  flows,
		logger: log,
	}
}
