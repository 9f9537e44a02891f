package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/a3tai/irdai-parser/internal/config"
	"github.com/a3tai/irdai-parser/internal/descriptions"
	"github.com/a3tai/irdai-parser/internal/pdf"
	"github.com/a3tai/irdai-parser/internal/regulatory"
)

const shutdownTimeout = 5 * time.Second

// Server represents the MCP server instance
type Server struct {
	config     *config.Config
	pdfService *pdf.Service
	mcpServer  *server.MCPServer
	logger     *zap.Logger
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, pdfService *pdf.Service, logger *zap.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if pdfService == nil {
		return nil, fmt.Errorf("pdfService cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s := &Server{
		config:     cfg,
		pdfService: pdfService,
		mcpServer:  mcpServer,
		logger:     logger,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	parseFilingTool := mcp.NewTool(
		"irdai_parse_filing",
		mcp.WithDescription(descriptions.ParseFilingDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the filing PDF, absolute or relative to the configured directory"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: text report, json or yaml document"),
			mcp.Enum("text", "json", "yaml"),
			mcp.DefaultString("text"),
		),
	)
	s.mcpServer.AddTool(parseFilingTool, s.handleParseFiling)

	identifyFormsTool := mcp.NewTool(
		"irdai_identify_forms",
		mcp.WithDescription(descriptions.IdentifyFormsDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the filing PDF, absolute or relative to the configured directory"),
		),
	)
	s.mcpServer.AddTool(identifyFormsTool, s.handleIdentifyForms)

	listFilingsTool := mcp.NewTool(
		"irdai_list_filings",
		mcp.WithDescription(descriptions.ListFilingsDescription),
		mcp.WithString("directory",
			mcp.Description("Directory to scan (uses the configured directory if empty)"),
		),
		mcp.WithString("query",
			mcp.Description("Optional fuzzy match on file names"),
		),
	)
	s.mcpServer.AddTool(listFilingsTool, s.handleListFilings)

	serverInfoTool := mcp.NewTool(
		"irdai_server_info",
		mcp.WithDescription(descriptions.ServerInfoDescription),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions
func (s *Server) handleParseFiling(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format := request.GetString("format", "text")

	result, err := s.pdfService.ParseFiling(pdf.ParseFilingRequest{Path: path})
	if err != nil {
		s.logger.Warn("parse filing failed", zap.String("path", path), zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	if format == "text" {
		return mcp.NewToolResultText(s.formatParseFilingResult(result)), nil
	}

	exportFormat, err := regulatory.ParseFormat(format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var buf strings.Builder
	if err := regulatory.Export(&buf, result.Result, exportFormat); err != nil {
		return mcp.NewToolResultErrorFromErr("failed to export filing", err), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) handleIdentifyForms(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.pdfService.IdentifyForms(pdf.IdentifyFormsRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatIdentifyFormsResult(result)), nil
}

func (s *Server) handleListFilings(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req := pdf.ListFilingsRequest{
		Directory: request.GetString("directory", ""),
		Query:     request.GetString("query", ""),
	}

	result, err := s.pdfService.ListFilings(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if result.TotalCount == 0 {
		text := fmt.Sprintf("No filings found in directory: %s", result.Directory)
		if result.SearchQuery != "" {
			text += fmt.Sprintf(" (searched for: %s)", result.SearchQuery)
		}
		return mcp.NewToolResultText(text), nil
	}

	return mcp.NewToolResultText(s.formatListFilingsResult(result)), nil
}

func (s *Server) handleServerInfo(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(s.formatServerInfo()), nil
}

// Formatting methods
func (s *Server) formatParseFilingResult(result *pdf.ParseFilingResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Parsed filing: %s\n", result.Path)
	fmt.Fprintf(&b, "Pages: %d\n", result.PageCount)
	fmt.Fprintf(&b, "Forms found: %s\n", joinOrNone(result.Result.FormsFound))
	fmt.Fprintf(&b, "Fields extracted: %d\n", result.Result.FieldCount())
	if result.Cached {
		b.WriteString("Served from cache\n")
	}
	b.WriteString("\n")
	b.WriteString(regulatory.FormatReport(result.Result))
	return b.String()
}

func (s *Server) formatIdentifyFormsResult(result *pdf.IdentifyFormsResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Filing: %s\n", result.Path)
	fmt.Fprintf(&b, "Pages: %d\n", result.PageCount)
	if md := result.Metadata; !md.IsEmpty() {
		if md.InsurerName != "" {
			fmt.Fprintf(&b, "Insurer: %s\n", md.InsurerName)
		}
		if md.RegistrationNumber != "" {
			fmt.Fprintf(&b, "Registration Number: %s\n", md.RegistrationNumber)
		}
		if md.ReportingPeriod != "" {
			fmt.Fprintf(&b, "Reporting Period: %s\n", md.ReportingPeriod)
		}
	}

	if len(result.Forms) == 0 {
		b.WriteString("No known IRDAI forms found\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Forms found (%d):\n", len(result.Forms))
	for _, form := range result.Forms {
		fmt.Fprintf(&b, "  • %s\n", form)
	}
	return b.String()
}

func (s *Server) formatListFilingsResult(result *pdf.ListFilingsResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d filing(s) in directory: %s\n", result.TotalCount, result.Directory)
	if result.SearchQuery != "" {
		fmt.Fprintf(&b, "Search query: %s\n", result.SearchQuery)
	}
	b.WriteString("\nFiles:\n")

	for i, file := range result.Files {
		fmt.Fprintf(&b, "%d. %s\n", i+1, file.Name)
		fmt.Fprintf(&b, "   Path: %s\n", file.Path)
		fmt.Fprintf(&b, "   Size: %d bytes\n", file.Size)
		fmt.Fprintf(&b, "   Modified: %s\n", file.ModifiedTime)
	}
	return b.String()
}

func (s *Server) formatServerInfo() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s v%s\n", s.config.ServerName, s.config.Version)
	fmt.Fprintf(&b, "Filing directory: %s\n", s.pdfService.Directory())
	fmt.Fprintf(&b, "Max file size: %d bytes\n", s.pdfService.GetMaxFileSize())
	fmt.Fprintf(&b, "Structural validation: %t\n", s.config.ValidatePDF)
	fmt.Fprintf(&b, "Cached filings: %d\n", s.pdfService.CachedCount())
	fmt.Fprintf(&b, "Recognised forms: %s\n", strings.Join(s.pdfService.FormCodes(), ", "))

	b.WriteString("\nAvailable tools:\n")
	for _, name := range descriptions.GetAllToolNames() {
		fmt.Fprintf(&b, "  • %s\n", name)
	}
	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

// Run starts the MCP server in the configured mode and blocks until ctx is
// cancelled or the transport fails
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx, os.Stdin, os.Stdout)
}

// runStdioMode serves newline-delimited JSON-RPC read from in and written to out
func (s *Server) runStdioMode(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("starting MCP server in stdio mode",
		zap.String("directory", s.config.PDFDirectory))

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(zap.NewStdLog(s.logger))

	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode serves MCP over HTTP server-sent events at Address()
func (s *Server) runServerMode(ctx context.Context) error {
	addr := s.config.Address()
	httpServer := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 10 * time.Second,
	}
	sse := server.NewSSEServer(s.mcpServer,
		server.WithBaseURL("http://"+addr),
		server.WithHTTPServer(httpServer),
		server.WithKeepAlive(true),
	)
	httpServer.Handler = sse

	s.logger.Info("starting MCP server in server mode",
		zap.String("address", addr),
		zap.String("sse_endpoint", "/sse"),
		zap.String("directory", s.config.PDFDirectory))

	errCh := make(chan error, 1)
	go func() {
		errCh <- sse.Start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := sse.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	s.logger.Info("MCP server stopped")
	return nil
}
