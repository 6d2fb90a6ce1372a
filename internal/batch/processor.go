// Package batch provides CSV batch processing of financial SMS messages.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/common"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/logging"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/models"
)

// Status describes the state of a batch run.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Progress is a snapshot of a batch run. Callers may poll Processor.Progress
// from another goroutine while ProcessFile runs.
type Progress struct {
	Total     int
	Processed int
	Succeeded int
	Failed    int
	Status    Status
}

// Record is one input row of the batch CSV.
type Record struct {
	CustomerID   int    `csv:"customer_id"`
	CustomerName string `csv:"customer_name"`
	PhoneNumber  string `csv:"phone_number"`
	Message      string `csv:"message"`
	Date         string `csv:"date"`
}

// ResultRow is one output row. ExtractedData and ImportantPoints hold the
// per-message analysis serialized as JSON.
type ResultRow struct {
	CustomerID      int    `csv:"customer_id"`
	CustomerName    string `csv:"customer_name"`
	PhoneNumber     string `csv:"phone_number"`
	MessageType     string `csv:"message_type"`
	ExtractedData   string `csv:"extracted_data"`
	ImportantPoints string `csv:"important_points"`
	Status          string `csv:"status"`
	Error           string `csv:"error"`
}

// Analyzer is the per-message analysis the processor delegates to.
type Analyzer interface {
	Analyze(ctx context.Context, msg models.RawMessage) (*models.AnalysisResult, error)
}

// Processor runs a CSV of messages through the analyzer, one row at a time.
type Processor struct {
	analyzer Analyzer
	logger   logging.Logger

	mu   sync.RWMutex
	prog Progress
}

// NewProcessor creates a Processor.
func NewProcessor(analyzer Analyzer, logger logging.Logger) *Processor {
	return &Processor{
		analyzer: analyzer,
		logger:   logger,
		prog:     Progress{Status: StatusIdle},
	}
}

// Progress returns a snapshot of the current run.
func (p *Processor) Progress() Progress {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.prog
}

func (p *Processor) update(fn func(*Progress)) {
	p.mu.Lock()
	fn(&p.prog)
	p.mu.Unlock()
}

// ProcessFile reads the input CSV, analyzes every row and writes the results
// CSV. A row that fails to analyze is recorded in the output and counted as
// failed; processing continues with the next row. The returned Progress is
// the final state of the run.
func (p *Processor) ProcessFile(ctx context.Context, inputPath, outputPath string) (Progress, error) {
	records, err := common.ReadCSVFile[Record](inputPath)
	if err != nil {
		p.update(func(pr *Progress) { *pr = Progress{Status: StatusFailed} })
		return p.Progress(), err
	}

	p.update(func(pr *Progress) {
		*pr = Progress{Total: len(records), Status: StatusProcessing}
	})

	results := make([]ResultRow, 0, len(records))
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			p.update(func(pr *Progress) { pr.Status = StatusFailed })
			return p.Progress(), fmt.Errorf("batch canceled at row %d: %w", i+1, err)
		}

		results = append(results, p.processRecord(ctx, i, rec))
		p.update(func(pr *Progress) { pr.Processed++ })
	}

	if err := common.WriteCSVFile(results, outputPath); err != nil {
		p.update(func(pr *Progress) { pr.Status = StatusFailed })
		return p.Progress(), err
	}

	p.update(func(pr *Progress) { pr.Status = StatusCompleted })

	final := p.Progress()
	p.logger.Info("Batch processing finished",
		logging.Field{Key: logging.FieldFile, Value: outputPath},
		logging.Field{Key: logging.FieldCount, Value: final.Total},
		logging.Field{Key: "succeeded", Value: final.Succeeded},
		logging.Field{Key: "failed", Value: final.Failed})
	return final, nil
}

func (p *Processor) processRecord(ctx context.Context, index int, rec Record) ResultRow {
	row := ResultRow{
		CustomerID:   rec.CustomerID,
		CustomerName: rec.CustomerName,
		PhoneNumber:  rec.PhoneNumber,
	}

	hintDate := rec.Date
	if hintDate == "" {
		hintDate = time.Now().Format("2006-01-02")
	}

	msg := models.RawMessage{
		Text:     rec.Message,
		HintDate: hintDate,
		Customer: &models.CustomerInfo{
			ID:    rec.CustomerID,
			Name:  rec.CustomerName,
			Phone: rec.PhoneNumber,
		},
	}

	result, err := p.analyzer.Analyze(ctx, msg)
	if err != nil {
		p.logger.WithError(err).Error("Row analysis failed",
			logging.Field{Key: logging.FieldRow, Value: index + 1},
			logging.Field{Key: logging.FieldCustomerID, Value: rec.CustomerID})
		p.update(func(pr *Progress) { pr.Failed++ })
		row.Status = "failed"
		row.Error = err.Error()
		return row
	}

	row.MessageType = result.Category.String()
	row.ExtractedData = mustJSON(result.Fields)
	row.ImportantPoints = mustJSON(result.Highlights)
	row.Status = "ok"

	p.update(func(pr *Progress) { pr.Succeeded++ })
	return row
}

// mustJSON serializes a value that cannot fail to marshal.
func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
