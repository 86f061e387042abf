// Package scanner 提供目录扫描调度能力。
// 该层负责目录遍历、任务分发和结果聚合，不负责单文件的行级分析细节。
package scanner

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"projstat/internal/analyzer"
	"projstat/internal/filter"
	"projstat/internal/logger"
	"projstat/internal/model"
)

// Options 是扫描服务的可配置参数。
type Options struct {
	// Extensions 为后缀白名单，nil 时使用 filter.DefaultExtensions。
	Extensions *filter.ExtensionSet
	// Workers 为分析文件时的并发数，<= 1 表示严格顺序执行。
	Workers int
	// SkipUnreadable 为 true 时，无法读取或解码的文件会被记录并跳过，
	// 默认 false：任何文件错误都会中断整个扫描。
	SkipUnreadable bool
	// Logger 接收遍历过程日志，nil 时丢弃。
	Logger *logger.ConsoleLogger
}

// Service 是扫描服务对象。
type Service struct {
	extensions     *filter.ExtensionSet
	workers        int
	skipUnreadable bool
	log            *logger.ConsoleLogger
	analyze        func(path string) (model.FileRecord, error)
}

// scanTask 表示一个待分析文件任务，index 为该文件在遍历顺序中的位置。
type scanTask struct {
	index int
	path  string
}

// workerResult 表示 worker 的执行产物。
type workerResult struct {
	index  int
	record model.FileRecord
	err    error
}

// NewService 创建扫描服务。
func NewService(options Options) *Service {
	extensions := options.Extensions
	if extensions == nil {
		extensions = filter.NewExtensionSet(filter.DefaultExtensions...)
	}

	log := options.Logger
	if log == nil {
		log = logger.NewConsoleLogger(nil, "")
	}

	workers := options.Workers
	if workers <= 0 {
		workers = 1
	}

	return &Service{
		extensions:     extensions,
		workers:        workers,
		skipUnreadable: options.SkipUnreadable,
		log:            log,
		analyze:        analyzer.AnalyzeFile,
	}
}

// ScanPath 扫描目录并生成项目级结果。
func (s *Service) ScanPath(targetPath string) (model.ScanResult, error) {
	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return model.ScanResult{}, errors.New("scan path is empty")
	}

	absoluteTarget, err := filepath.Abs(trimmedPath)
	if err != nil {
		return model.ScanResult{}, fmt.Errorf("resolve absolute path: %w", err)
	}

	s.log.LogDebug(fmt.Sprintf("scanning %s for %s", absoluteTarget, strings.Join(s.extensions.Extensions(), ", ")))

	records, scanErrors, err := s.Walk(absoluteTarget)
	if err != nil {
		return model.ScanResult{}, err
	}

	result := Aggregate(records)
	result.ScannedPath = absoluteTarget
	if len(scanErrors) > 0 {
		result.Errors = scanErrors
	}

	s.log.LogDebug(fmt.Sprintf("scanned %d files, %d lines", len(result.Files), result.TotalLines))
	return result, nil
}

// Walk 遍历 root 并返回遍历顺序下的文件记录。
// 第二个返回值仅在 SkipUnreadable 策略下可能非空。
func (s *Service) Walk(root string) ([]model.FileRecord, []model.ScanError, error) {
	if err := checkRoot(root); err != nil {
		return nil, nil, err
	}

	if s.workers <= 1 {
		return s.walkSequential(root)
	}
	return s.walkParallel(root)
}

// walkSequential 在遍历到文件时立即分析，与遍历严格交替执行。
func (s *Service) walkSequential(root string) ([]model.FileRecord, []model.ScanError, error) {
	records := make([]model.FileRecord, 0)
	var scanErrors []model.ScanError

	err := s.walkDir(root, func(path string) error {
		record, analyzeErr := s.analyze(path)
		if analyzeErr != nil {
			return s.handleFileError(path, analyzeErr, &scanErrors)
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return records, scanErrors, nil
}

// walkParallel 先完成遍历，再把文件分发给 worker 并发分析。
// 结果按遍历顺序回填，因此与顺序执行得到的记录顺序一致。
func (s *Service) walkParallel(root string) ([]model.FileRecord, []model.ScanError, error) {
	var paths []string
	err := s.walkDir(root, func(path string) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	outcomes := s.analyzeAll(paths)

	records := make([]model.FileRecord, 0, len(outcomes))
	var scanErrors []model.ScanError
	for i, outcome := range outcomes {
		if outcome.err != nil {
			if handleErr := s.handleFileError(paths[i], outcome.err, &scanErrors); handleErr != nil {
				return nil, nil, handleErr
			}
			continue
		}
		records = append(records, outcome.record)
	}
	return records, scanErrors, nil
}

// analyzeAll 使用 worker 池分析全部文件，返回值与 paths 一一对应。
func (s *Service) analyzeAll(paths []string) []workerResult {
	tasks := make(chan scanTask, s.workers*4)
	results := make(chan workerResult, s.workers*4)

	var workerGroup sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			s.runWorker(tasks, results)
		}()
	}

	go func() {
		defer close(tasks)
		for index, path := range paths {
			tasks <- scanTask{index: index, path: path}
		}
	}()

	go func() {
		workerGroup.Wait()
		close(results)
	}()

	outcomes := make([]workerResult, len(paths))
	for item := range results {
		outcomes[item.index] = item
	}
	return outcomes
}

// runWorker 执行真实的文件读取和分析。
func (s *Service) runWorker(tasks <-chan scanTask, results chan<- workerResult) {
	for task := range tasks {
		record, err := s.analyze(task.path)
		results <- workerResult{
			index:  task.index,
			record: record,
			err:    err,
		}
	}
}

// handleFileError 根据错误策略决定中断扫描还是记录后继续。
// 分析目录属于遍历逻辑错误，任何策略下都会中断。
func (s *Service) handleFileError(path string, err error, scanErrors *[]model.ScanError) error {
	if !s.skipUnreadable || errors.Is(err, analyzer.ErrNotAFile) {
		return err
	}

	s.log.LogWarn(fmt.Sprintf("skipping unreadable file: %v", err))
	*scanErrors = append(*scanErrors, model.ScanError{
		Path:  path,
		Error: err.Error(),
	})
	return nil
}
