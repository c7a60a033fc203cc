package worker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/eggcorn/internal/model"
)

// Processor handles a single comment
type Processor interface {
	Process(ctx context.Context, c model.Comment) (*model.Outcome, error)
}

// CheckJob runs one comment through a Processor
type CheckJob struct {
	Comment   model.Comment
	Processor Processor
}

// Execute executes the check job
func (j *CheckJob) Execute(ctx context.Context) Result {
	outcome, err := j.Processor.Process(ctx, j.Comment)
	return &CheckResult{
		CommentID: j.Comment.ID,
		Outcome:   outcome,
		Error:     err,
	}
}

// CheckResult represents the result of a check job
type CheckResult struct {
	CommentID string
	Outcome   *model.Outcome
	Error     error
}

// GetError returns the error from the check result
func (r *CheckResult) GetError() error {
	return r.Error
}

// BatchProcessor checks many comments concurrently
type BatchProcessor struct {
	processor   Processor
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(processor Processor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
	}
}

// ProcessComments checks comments concurrently and returns one result per
// comment, in input order. Comments that could not be queued because ctx
// ended carry ctx's error.
func (b *BatchProcessor) ProcessComments(ctx context.Context, comments []model.Comment) []*CheckResult {
	if len(comments) == 0 {
		return []*CheckResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	submitted := 0
	for _, c := range comments {
		if !pool.Submit(&CheckJob{Comment: c, Processor: b.processor}) {
			break
		}
		submitted++
	}

	results := pool.Wait()

	checkResults := make([]*CheckResult, 0, len(comments))
	for _, result := range results {
		checkResults = append(checkResults, result.(*CheckResult))
	}
	for _, c := range comments[submitted:] {
		checkResults = append(checkResults, &CheckResult{CommentID: c.ID, Error: ctx.Err()})
	}

	return checkResults
}

// ProcessFile reads comments from a JSON lines file and checks them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*CheckResult, error) {
	comments, err := ReadCommentsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read comments: %w", err)
	}

	return b.ProcessComments(ctx, comments), nil
}

// ReadCommentsFromFile reads one JSON comment per line, skipping blank lines
// and # comments. Later duplicates of an ID are dropped.
func ReadCommentsFromFile(filePath string) ([]model.Comment, error) {
	return readJSONLines(filePath, func(c model.Comment) string { return c.ID })
}

// ReadMessagesFromFile reads one JSON inbox message per line
func ReadMessagesFromFile(filePath string) ([]model.Message, error) {
	return readJSONLines(filePath, func(m model.Message) string { return m.ID })
}

func readJSONLines[T any](filePath string, id func(T) string) ([]T, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var items []T
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var item T
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		key := id(item)
		if key == "" {
			return nil, fmt.Errorf("line %d: missing id", lineNo)
		}
		if !seen[key] {
			seen[key] = true
			items = append(items, item)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return items, nil
}
