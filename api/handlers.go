package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-word-stats/internal/engine"
	"github.com/gcbaptista/go-word-stats/model"
	"github.com/gcbaptista/go-word-stats/services"
)

// API holds dependencies for API handlers, primarily the analysis engine.
type API struct {
	analyzer    services.Analyzer
	defaultTopN int
}

// NewAPI creates a new API handler structure.
func NewAPI(analyzer services.Analyzer, defaultTopN int) *API {
	return &API{
		analyzer:    analyzer,
		defaultTopN: defaultTopN,
	}
}

// SetupRoutes defines all the API routes for the word statistics service.
func SetupRoutes(router *gin.Engine, analyzer services.Analyzer, defaultTopN int) {
	apiHandler := NewAPI(analyzer, defaultTopN)

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Analysis routes
	router.POST("/analyze", apiHandler.AnalyzeTextHandler)      // Synchronous text analysis
	router.POST("/analyze/file", apiHandler.AnalyzeFileHandler) // Background file analysis

	// Job management routes
	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.GET("", apiHandler.ListJobsHandler)              // List jobs, optionally by status
		jobRoutes.GET("/metrics", apiHandler.GetJobMetricsHandler) // Get job performance metrics
		jobRoutes.GET("/:jobId", apiHandler.GetJobHandler)         // Get job status by ID
	}

	// Report routes
	reportRoutes := router.Group("/reports")
	{
		reportRoutes.GET("", apiHandler.ListReportsHandler)         // List completed analysis reports
		reportRoutes.GET("/:reportId", apiHandler.GetReportHandler) // Get a specific report
	}
}

// AnalyzeTextRequest is the request body for synchronous text analysis.
type AnalyzeTextRequest struct {
	Text string `json:"text"`
	TopN int    `json:"top_n,omitempty"` // 0 means use the service default
}

// AnalyzeTextHandler handles synchronous word-frequency analysis of a text body.
func (api *API) AnalyzeTextHandler(c *gin.Context) {
	var req AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if req.Text == "" {
		SendValidationError(c, "text", "Text is required")
		return
	}

	topN := req.TopN
	if topN <= 0 {
		topN = api.defaultTopN
	}

	result, err := api.analyzer.AnalyzeText(req.Text, topN)
	if err != nil {
		SendAnalysisError(c, "analyze text", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnalyzeFileRequest is the request body for background file analysis.
type AnalyzeFileRequest struct {
	InputPath  string `json:"input_path"`
	OutputPath string `json:"output_path"`
}

// AnalyzeFileHandler handles requests to analyze a file in the background.
// Responds 202 with a job ID when the analyzer supports async execution.
func (api *API) AnalyzeFileHandler(c *gin.Context) {
	var req AnalyzeFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if req.InputPath == "" {
		SendValidationError(c, "input_path", "Input path is required")
		return
	}
	if req.OutputPath == "" {
		SendValidationError(c, "output_path", "Output path is required")
		return
	}

	if asyncAnalyzer, ok := api.analyzer.(services.AsyncAnalyzer); ok {
		jobID, err := asyncAnalyzer.AnalyzeFileAsync(req.InputPath, req.OutputPath)
		if err != nil {
			SendAnalysisError(c, "start file analysis", err)
			return
		}

		c.JSON(http.StatusAccepted, gin.H{
			"status":  "accepted",
			"message": "File analysis started for '" + req.InputPath + "'",
			"job_id":  jobID,
		})
		return
	}

	// Synchronous fallback for analyzers without job support
	report, err := api.analyzer.AnalyzeFile(req.InputPath, req.OutputPath, nil)
	if err != nil {
		SendAnalysisError(c, "analyze file", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetJobHandler handles requests to get job status by ID
func (api *API) GetJobHandler(c *gin.Context) {
	jobID := c.Param("jobId")

	jobManager, ok := api.analyzer.(services.JobManager)
	if !ok {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Job management not supported by this analyzer"})
		return
	}

	job, err := jobManager.GetJob(jobID)
	if err != nil {
		SendJobNotFoundError(c, jobID)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListJobsHandler handles requests to list jobs, optionally filtered by status
func (api *API) ListJobsHandler(c *gin.Context) {
	statusParam := c.Query("status")

	var statusFilter *model.JobStatus
	if statusParam != "" {
		status := model.JobStatus(statusParam)
		statusFilter = &status
	}

	jobManager, ok := api.analyzer.(services.JobManager)
	if !ok {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Job management not supported by this analyzer"})
		return
	}

	jobs := jobManager.ListJobs(statusFilter)
	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// GetJobMetricsHandler handles requests to get job performance metrics
func (api *API) GetJobMetricsHandler(c *gin.Context) {
	engineWithMetrics, ok := api.analyzer.(*engine.Engine)
	if !ok {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Job metrics not supported by this analyzer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"metrics":          engineWithMetrics.GetJobMetrics(),
		"success_rate":     engineWithMetrics.GetJobSuccessRate(),
		"current_workload": engineWithMetrics.GetCurrentWorkload(),
	})
}

// GetReportHandler handles requests to get a completed analysis report by ID
func (api *API) GetReportHandler(c *gin.Context) {
	reportID := c.Param("reportId")

	provider, ok := api.analyzer.(services.ReportProvider)
	if !ok {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Reports not supported by this analyzer"})
		return
	}

	report, err := provider.GetReport(reportID)
	if err != nil {
		SendReportNotFoundError(c, reportID)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ListReportsHandler handles requests to list completed analysis reports
func (api *API) ListReportsHandler(c *gin.Context) {
	provider, ok := api.analyzer.(services.ReportProvider)
	if !ok {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Reports not supported by this analyzer"})
		return
	}

	reports := provider.ListReports()
	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
		"total":   len(reports),
	})
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "go-word-stats",
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}
