// Package convert runs plain-text subtitle conversions for one or more files.
package convert

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/mgpai22/subconv/internal/config"
	"github.com/mgpai22/subconv/internal/logging"
	"github.com/mgpai22/subconv/internal/subtitle"
	"github.com/mgpai22/subconv/internal/subtitle/txt"
)

// single file to convert
type Job struct {
	Input  string
	Output string
	Format subtitle.Format
}

// outcome of a finished job
type Result struct {
	Job  Job
	Cues int
	Mode txt.Mode
}

type Converter struct {
	cfg    *config.Config
	parser *txt.Parser
	logger *logging.Logger
}

func NewConverter(cfg *config.Config, logger *logging.Logger) *Converter {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Converter{
		cfg:    cfg,
		parser: txt.NewParser(logger.SugaredLogger),
		logger: logger,
	}
}

// reads, decodes and parses a file into the intermediate representation
func (c *Converter) Load(path string) (*subtitle.Subtitle, txt.Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, txt.Analysis{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, err := subtitle.Decode(data, c.cfg.Input.FallbackCharset)
	if err != nil {
		return nil, txt.Analysis{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	text = subtitle.Normalize(text)
	if !txt.CanParse(text) {
		return nil, txt.Analysis{DominantColons: -1}, fmt.Errorf("failed to parse %s: %w", path, txt.ErrEmptyResult)
	}

	sub, analysis, err := c.parser.ParseWithAnalysis(text)
	if err != nil {
		return nil, analysis, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return sub, analysis, nil
}

// converts a single file
func (c *Converter) Convert(ctx context.Context, job Job) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	sub, analysis, err := c.Load(job.Input)
	if err != nil {
		return Result{}, err
	}

	writer, err := c.cfg.NewWriter(job.Format)
	if err != nil {
		return Result{}, err
	}
	if err := subtitle.WriteFile(writer, sub, job.Output); err != nil {
		return Result{}, err
	}

	c.logger.Infow("Converted subtitle file",
		"input", job.Input,
		"output", job.Output,
		"mode", analysis.Mode.String(),
		"cues", len(sub.Cues),
	)
	return Result{Job: job, Cues: len(sub.Cues), Mode: analysis.Mode}, nil
}

// converts jobs with up to concurrency workers. The first failure cancels
// the remaining jobs; results come back in job order.
func (c *Converter) Run(
	ctx context.Context,
	jobs []Job,
	concurrency int,
) ([]Result, error) {
	if len(jobs) == 0 {
		return []Result{}, nil
	}

	if concurrency <= 0 {
		concurrency = c.cfg.Convert.Concurrency
	}

	if len(jobs) == 1 {
		res, err := c.Convert(ctx, jobs[0])
		if err != nil {
			return nil, err
		}
		return []Result{res}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type jobResult struct {
		Index  int
		Result Result
		Error  error
	}

	workChan := make(chan int)
	resultChan := make(chan jobResult, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < concurrency && i < len(jobs); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case jobIdx, ok := <-workChan:
					if !ok {
						return
					}
					if ctx.Err() != nil {
						return
					}

					res, err := c.Convert(ctx, jobs[jobIdx])
					if err != nil {
						cancel()
					}
					resultChan <- jobResult{
						Index:  jobIdx,
						Result: res,
						Error:  err,
					}
				}
			}
		}()
	}

	go func() {
		defer close(workChan)
		for i := range jobs {
			select {
			case <-ctx.Done():
				return
			case workChan <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]jobResult, 0, len(jobs))
	var firstErr error
	for result := range resultChan {
		if result.Error != nil && firstErr == nil {
			firstErr = fmt.Errorf(
				"job %d (%s) failed: %w",
				result.Index,
				jobs[result.Index].Input,
				result.Error,
			)
			cancel()
		}
		if result.Error == nil {
			results = append(results, result)
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil && len(results) < len(jobs) {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	out := make([]Result, len(results))
	for i, r := range results {
		out[i] = r.Result
	}
	return out, nil
}
