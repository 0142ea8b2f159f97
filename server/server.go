package server

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fairbnb/image-integrity/core"
	"github.com/fairbnb/image-integrity/core/exif"
)

// Server wires the scoring engine behind a gin router.
type Server struct {
	cfg    *Config
	log    *slog.Logger
	engine *gin.Engine
}

// New builds a Server with recovery and request logging middleware.
func New(cfg *Config, log *slog.Logger) *Server {
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{cfg: cfg, log: log}
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/healthz", s.handleHealth)
	api := engine.Group("/api/v1")
	api.POST("/analyze", s.handleAnalyze)

	s.engine = engine
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run blocks serving HTTP on the configured address.
func (s *Server) Run() error {
	s.log.Info("integrity server listening", "addr", s.cfg.Addr)
	return s.engine.Run(s.cfg.Addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// analyzeResponse wraps the engine result with request-level fields.
type analyzeResponse struct {
	ID     string               `json:"id"`
	Format core.FormatID        `json:"format"`
	// Strategy names the extraction strategy that produced the score;
	// always the scan strategy, recorded so stored reports stay
	// comparable if a versioned alternative ever ships.
	Strategy string               `json:"strategy"`
	Result   *core.AnalysisResult `json:"result"`
}

// handleAnalyze accepts a multipart upload under the "image" field, scores
// it, and returns the full analysis. The engine never fails, so the only
// error responses here are malformed requests and oversized uploads.
func (s *Server) handleAnalyze(c *gin.Context) {
	start := time.Now()
	id := uuid.NewString()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes)

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "missing or unreadable 'image' form field: " + err.Error(),
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		status := http.StatusBadRequest
		if _, ok := err.(*http.MaxBytesError); ok {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, gin.H{"error": "reading upload: " + err.Error()})
		return
	}

	res := core.AnalyzeBytes(data, header.Filename)

	s.log.Info("image analyzed",
		"id", id,
		"filename", header.Filename,
		"size", len(data),
		"score", res.IntegrityScore,
		"duration", time.Since(start),
	)

	c.JSON(http.StatusOK, analyzeResponse{
		ID:       id,
		Format:   core.DetectFormat(data),
		Strategy: exif.StrategyScan,
		Result:   res,
	})
}
