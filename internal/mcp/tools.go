package mcp

import (
	"encoding/json"
	"errors"

	"github.com/scanready/scanready/internal/classifier"
	"github.com/scanready/scanready/internal/suggest"
)

// ClassifyResult is the response shape for the classify_scan_error tool.
type ClassifyResult struct {
	Category          string   `json:"category"`
	Recoverable       bool     `json:"recoverable"`
	AffectedPaths     []string `json:"affected_paths"`
	MissingParameters []string `json:"missing_parameters"`
	SuggestedFix      string   `json:"suggested_fix"`
	Recommendation    string   `json:"recommendation"`
}

// ScoreResult is the response shape for the score_config tool.
type ScoreResult struct {
	Path               string   `json:"path"`
	ConfigExists       bool     `json:"config_exists"`
	CompletenessScore  int      `json:"completeness_score"`
	ScanQuality        string   `json:"scan_quality"`
	MissingCritical    []string `json:"missing_critical"`
	MissingRecommended []string `json:"missing_recommended"`
}

// SuggestResult is the response shape for the suggest_improvements tool.
type SuggestResult struct {
	Suggestions []suggest.Suggestion `json:"suggestions"`
}

var (
	pathSchema    = json.RawMessage(`{"type":"object","properties":{"path":{"type":"string","description":"Project root directory to inspect"}},"required":["path"],"additionalProperties":false}`)
	errorSchema   = json.RawMessage(`{"type":"object","properties":{"error_text":{"type":"string","description":"Raw scanner error output to classify"}},"required":["error_text"],"additionalProperties":false}`)
	recoverSchema = json.RawMessage(`{"type":"object","properties":{"path":{"type":"string","description":"Project root directory"},"error_text":{"type":"string","description":"Raw scanner error output"}},"required":["path","error_text"],"additionalProperties":false}`)
)

// addTools registers all MCP tool handlers on s.
func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "validate_project",
		Description: "Run pre-scan validation on a project directory and return the full result.",
		InputSchema: pathSchema,
		Handler:     s.handleValidateProject,
	})
	s.registerTool(toolDef{
		Name:        "classify_scan_error",
		Description: "Classify a raw scanner error message into a failure category with extracted paths and a suggested fix.",
		InputSchema: errorSchema,
		Handler:     s.handleClassifyScanError,
	})
	s.registerTool(toolDef{
		Name:        "score_config",
		Description: "Score an existing sonar-project.properties file against detected project properties.",
		InputSchema: pathSchema,
		Handler:     s.handleScoreConfig,
	})
	s.registerTool(toolDef{
		Name:        "plan_recovery",
		Description: "Classify a scan failure and, when recoverable, propose regenerated configuration properties.",
		InputSchema: recoverSchema,
		Handler:     s.handlePlanRecovery,
	})
	s.registerTool(toolDef{
		Name:        "suggest_improvements",
		Description: "Ranked suggestions for improving a project's scan configuration.",
		InputSchema: pathSchema,
		Handler:     s.handleSuggestImprovements,
	})
}

// decodePath parses the common {"path": ...} argument shape.
func decodePath(args json.RawMessage) (string, error) {
	var params struct {
		Path string `json:"path"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return "", err
	}
	if params.Path == "" {
		return "", errors.New("path is required")
	}
	return params.Path, nil
}

// handleValidateProject runs a full validation and returns the raw result.
func (s *Server) handleValidateProject(args json.RawMessage) (any, error) {
	path, err := decodePath(args)
	if err != nil {
		return nil, err
	}
	result := s.validator.Validate(path)
	return result, nil
}

// handleClassifyScanError classifies raw scanner output.
func (s *Server) handleClassifyScanError(args json.RawMessage) (any, error) {
	var params struct {
		ErrorText string `json:"error_text"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, err
	}
	if params.ErrorText == "" {
		return nil, errors.New("error_text is required")
	}

	parsed := classifier.Classify(params.ErrorText)
	return ClassifyResult{
		Category:          string(parsed.Category),
		Recoverable:       classifier.IsRecoverable(parsed),
		AffectedPaths:     parsed.AffectedPaths,
		MissingParameters: parsed.MissingParameters,
		SuggestedFix:      parsed.SuggestedFix,
		Recommendation:    classifier.RecoveryRecommendation(parsed),
	}, nil
}

// handleScoreConfig validates a project and reports only the config scoring.
func (s *Server) handleScoreConfig(args json.RawMessage) (any, error) {
	path, err := decodePath(args)
	if err != nil {
		return nil, err
	}

	result := s.validator.Validate(path)
	return ScoreResult{
		Path:               result.ExistingConfig.Path,
		ConfigExists:       result.ExistingConfig.Exists,
		CompletenessScore:  result.ExistingConfig.CompletenessScore,
		ScanQuality:        string(result.ScanQuality),
		MissingCritical:    result.ExistingConfig.MissingCritical,
		MissingRecommended: result.ExistingConfig.MissingRecommended,
	}, nil
}

// handlePlanRecovery classifies a failure and proposes regeneration.
func (s *Server) handlePlanRecovery(args json.RawMessage) (any, error) {
	var params struct {
		Path      string `json:"path"`
		ErrorText string `json:"error_text"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, err
	}
	if params.Path == "" || params.ErrorText == "" {
		return nil, errors.New("path and error_text are required")
	}

	plan := s.coordinator.Plan(params.Path, params.ErrorText)
	return plan, nil
}

// handleSuggestImprovements validates a project and ranks suggestions.
func (s *Server) handleSuggestImprovements(args json.RawMessage) (any, error) {
	path, err := decodePath(args)
	if err != nil {
		return nil, err
	}

	result := s.validator.Validate(path)
	suggestions := s.engine.Run(&suggest.Context{Result: &result})
	return SuggestResult{Suggestions: suggestions}, nil
}
