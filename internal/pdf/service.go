package pdf

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/a3tai/irdai-parser/internal/pdf/security"
	"github.com/a3tai/irdai-parser/internal/regulatory"
)

// ServiceConfig holds the limits and switches of a Service
type ServiceConfig struct {
	MaxFileSize int64
	Directory   string
	// Validate runs the pdfcpu structural check before text extraction
	Validate bool
	CacheTTL time.Duration
}

// Service handles filing operations by orchestrating the PDF components and
// the regulatory parser
type Service struct {
	cfg           ServiceConfig
	reader        *Reader
	validator     *Validator
	search        *Search
	parser        *regulatory.Parser
	pathValidator *security.PathValidator
	cache         *resultCache
	logger        *zap.Logger
}

// NewService creates a new filing service with all components
func NewService(cfg ServiceConfig, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	pathValidator, err := security.NewPathValidator(cfg.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to create path validator: %w", err)
	}

	s := &Service{
		cfg:           cfg,
		reader:        NewReader(cfg.MaxFileSize, logger),
		validator:     NewValidator(cfg.MaxFileSize),
		search:        NewSearch(),
		parser:        regulatory.NewParser(),
		pathValidator: pathValidator,
		cache:         newResultCache(cfg.CacheTTL),
		logger:        logger,
	}
	if err := s.ValidateConfiguration(); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseFiling extracts and parses one filing. Results are cached per file
// version; a cached result is returned with Cached set.
func (s *Service) ParseFiling(req ParseFilingRequest) (*ParseFilingResult, error) {
	path, err := s.pathValidator.Resolve(req.Path)
	if err != nil {
		return nil, err
	}

	info, err := statPDF(path, s.cfg.MaxFileSize)
	if err != nil {
		return nil, err
	}

	key := cacheKey(path, info)
	if cached, ok := s.cache.get(key); ok {
		s.logger.Debug("parse cache hit", zap.String("path", path))
		hit := *cached
		hit.Cached = true
		return &hit, nil
	}

	pageCount := 0
	if s.cfg.Validate {
		if pageCount, err = s.validator.ValidateFile(path); err != nil {
			return nil, err
		}
	}

	doc, err := s.reader.ExtractText(path)
	if err != nil {
		return nil, err
	}
	if pageCount == 0 {
		pageCount = doc.PageCount()
	}

	res := s.parser.Parse(doc)
	s.logger.Info("parsed filing",
		zap.String("path", path),
		zap.Int("pages", pageCount),
		zap.Strings("forms", res.FormsFound),
		zap.Int("fields", res.FieldCount()))
	for _, d := range res.Diagnostics {
		s.logger.Debug("extraction miss", zap.String("path", path), zap.String("detail", d))
	}

	result := &ParseFilingResult{
		Path:      path,
		PageCount: pageCount,
		Result:    res,
	}
	s.cache.set(key, result)

	return result, nil
}

// IdentifyForms reports which known forms a filing contains and who filed it
func (s *Service) IdentifyForms(req IdentifyFormsRequest) (*IdentifyFormsResult, error) {
	parsed, err := s.ParseFiling(ParseFilingRequest(req))
	if err != nil {
		return nil, err
	}

	return &IdentifyFormsResult{
		Path:      parsed.Path,
		PageCount: parsed.PageCount,
		Forms:     parsed.Result.FormsFound,
		Metadata:  parsed.Result.Metadata,
	}, nil
}

// ListFilings finds filings in a directory, the configured one by default.
// A relative directory is taken relative to the configured one.
func (s *Service) ListFilings(req ListFilingsRequest) (*ListFilingsResult, error) {
	directory := s.pathValidator.Root()
	if req.Directory != "" {
		resolved, err := s.pathValidator.ResolveDirectory(req.Directory)
		if err != nil {
			return nil, fmt.Errorf("security validation failed: %w", err)
		}
		directory = resolved
	} else if err := s.pathValidator.ValidateDirectory(directory); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}

	files, err := s.search.FindFilings(directory, req.Query)
	if err != nil {
		return nil, err
	}

	return &ListFilingsResult{
		Files:       files,
		TotalCount:  len(files),
		Directory:   directory,
		SearchQuery: req.Query,
	}, nil
}

// Directory returns the configured filing directory
func (s *Service) Directory() string {
	return s.pathValidator.Root()
}

// GetMaxFileSize returns the maximum file size limit
func (s *Service) GetMaxFileSize() int64 {
	return s.cfg.MaxFileSize
}

// CachedCount returns the number of parse results currently cached
func (s *Service) CachedCount() int {
	return s.cache.count()
}

// FormCodes returns the form codes the parser recognises, in identification order
func (s *Service) FormCodes() []string {
	return s.parser.Registry().FormCodes()
}

// ClearCache drops every cached parse result
func (s *Service) ClearCache() {
	s.cache.flush()
}

// ValidateConfiguration validates the service configuration
func (s *Service) ValidateConfiguration() error {
	if s.cfg.MaxFileSize <= 0 {
		return fmt.Errorf("maxFileSize must be greater than 0")
	}

	if s.cfg.MaxFileSize > 1024*1024*1024 { // 1GB limit
		return fmt.Errorf("maxFileSize cannot exceed 1GB")
	}

	return nil
}
