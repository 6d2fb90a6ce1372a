// Package container provides dependency injection for the application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"time"

	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/analyzer"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/batch"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/common"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/config"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/dateutils"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/extractor"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/gemini"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/logging"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/store"
)

// Container holds all application dependencies and provides methods to
// access them. It is immutable after creation; all fields are private and
// reachable only through getters.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     *store.ReferenceStore
	aiClient  *gemini.Client
	analyzer  *analyzer.Service
	processor *batch.Processor
}

// NewContainer creates and wires all application dependencies. The context
// is used for the Gemini client handshake when AI analysis is enabled.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Logger first, everything else logs through it
	baseLogger := config.ConfigureLoggingFromConfig(cfg)
	logger := logging.NewLogrusAdapterFromLogger(baseLogger)

	common.SetLogger(baseLogger)
	dateutils.SetLogger(baseLogger)
	store.SetLogger(baseLogger)
	refStore := store.NewReferenceStore(cfg.Reference.IssuersFile)
	issuers, err := refStore.LoadIssuers()
	if err != nil {
		return nil, fmt.Errorf("failed to load insurance issuers: %w", err)
	}

	extractor.SetLogger(baseLogger)
	ext := extractor.New(issuers)

	var aiClient *gemini.Client
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		timeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second
		client, err := gemini.NewClient(ctx, cfg.AI.APIKey, cfg.AI.Model, timeout, baseLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		aiClient = client
		logger.Info("AI analysis enabled",
			logging.Field{Key: logging.FieldModel, Value: cfg.AI.Model})
	} else {
		logger.Info("AI analysis disabled, using local rules")
	}

	// The analyzer takes the interface; a nil *gemini.Client must not become
	// a non-nil interface value.
	var svcClient analyzer.AIClient
	if aiClient != nil {
		svcClient = aiClient
	}
	svc := analyzer.New(svcClient, ext, logger)

	return &Container{
		logger:    logger,
		config:    cfg,
		store:     refStore,
		aiClient:  aiClient,
		analyzer:  svc,
		processor: batch.NewProcessor(svc, logger),
	}, nil
}

// GetLogger returns the application logger.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the application configuration.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the reference data store.
func (c *Container) GetStore() *store.ReferenceStore {
	return c.store
}

// GetAnalyzer returns the message analysis service.
func (c *Container) GetAnalyzer() *analyzer.Service {
	return c.analyzer
}

// GetProcessor returns the batch processor.
func (c *Container) GetProcessor() *batch.Processor {
	return c.processor
}

// Close releases held resources, currently just the Gemini client.
func (c *Container) Close() error {
	if c.aiClient != nil {
		return c.aiClient.Close()
	}
	return nil
}
