package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"complexity-analyzer/src/config"
	"complexity-analyzer/src/controller"
	"complexity-analyzer/src/service/bigo"
	"complexity-analyzer/src/service/language"
)

const (
	defaultGrowthMax  = 50
	defaultGrowthStep = 2
	maxGrowthN        = 1000
)

// AnalyzeRequest is the JSON body of POST /api/v1/analyze
type AnalyzeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	FileName string `json:"fileName"`
}

// LanguageInfo describes one supported language
type LanguageInfo struct {
	Tag        string   `json:"tag"`
	Extensions []string `json:"extensions"`
}

// Handler serves the analysis endpoints
type Handler struct {
	analysis     *controller.AnalysisController
	maxBodyBytes int64
}

// NewHandler creates an HTTP handler
func NewHandler(analysisCtrl *controller.AnalysisController, cfg *config.Config) *Handler {
	return &Handler{
		analysis:     analysisCtrl,
		maxBodyBytes: cfg.Server.MaxBodyBytes,
	}
}

// Analyze runs the engine on the posted source text
func (h *Handler) Analyze(c *gin.Context) {
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	fileName := req.FileName
	if fileName == "" {
		fileName = "code.txt"
	}

	report := h.analysis.Analyze(controller.AnalyzeRequest{
		Source:   req.Code,
		Language: req.Language,
		FileName: fileName,
	})
	c.JSON(http.StatusOK, report)
}

// Languages lists the supported language tags
func (h *Handler) Languages(c *gin.Context) {
	tags := language.Tags()
	out := make([]LanguageInfo, 0, len(tags))
	for _, tag := range tags {
		p, _ := language.Lookup(tag)
		out = append(out, LanguageInfo{Tag: tag, Extensions: p.Extensions})
	}
	c.JSON(http.StatusOK, gin.H{
		"languages": out,
		"default":   language.DefaultTag,
	})
}

// Growth returns sample points of every complexity class
func (h *Handler) Growth(c *gin.Context) {
	maxN, err := intQuery(c, "max", defaultGrowthMax)
	if err != nil || maxN < 1 || maxN > maxGrowthN {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max must be an integer between 1 and 1000"})
		return
	}
	step, err := intQuery(c, "step", defaultGrowthStep)
	if err != nil || step < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "step must be a positive integer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": bigo.GrowthCurve(maxN, step)})
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
