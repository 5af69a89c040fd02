package mcp

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// callTool sends one tools/call request through the pipe harness and
// decodes the wrapped content text into result.
func callTool(t *testing.T, sendLine func(string) string, name string, args any, result any) (isError bool) {
	t.Helper()

	argsJSON, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("marshal args: %v", err)
	}
	req := fmt.Sprintf(`{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":%q,"arguments":%s}}`,
		name, argsJSON)
	resp := sendLine(req)

	var parsed struct {
		Result struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
			IsError bool `json:"isError"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(resp), &parsed); err != nil {
		t.Fatalf("unmarshal response: %v\nresponse: %s", err, resp)
	}
	if len(parsed.Result.Content) == 0 {
		t.Fatalf("response has no content; response: %s", resp)
	}
	if parsed.Result.IsError {
		return true
	}
	if result != nil {
		if err := json.Unmarshal([]byte(parsed.Result.Content[0].Text), result); err != nil {
			t.Fatalf("unmarshal tool result: %v\ntext: %s", err, parsed.Result.Content[0].Text)
		}
	}
	return false
}

func TestToolsCall_ClassifyScanError(t *testing.T) {
	s := newTestServer()
	sendLine, _, cleanup := runServer(t, s)
	defer cleanup()

	var result ClassifyResult
	isError := callTool(t, sendLine, "classify_scan_error",
		map[string]string{"error_text": "ERROR: Unable to find source files in /project/src"}, &result)

	if isError {
		t.Fatal("classify_scan_error returned isError")
	}
	if result.Category != "SOURCES_NOT_FOUND" {
		t.Errorf("Category = %q, want SOURCES_NOT_FOUND", result.Category)
	}
	if !result.Recoverable {
		t.Error("SOURCES_NOT_FOUND should be recoverable")
	}
	if len(result.AffectedPaths) != 1 || result.AffectedPaths[0] != "/project/src" {
		t.Errorf("AffectedPaths = %v, want [/project/src]", result.AffectedPaths)
	}
}

func TestToolsCall_ValidateProject(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := newTestServer()
	sendLine, _, cleanup := runServer(t, s)
	defer cleanup()

	var result struct {
		ScanQuality string `json:"scan_quality"`
		CanProceed  bool   `json:"can_proceed"`
		Languages   []struct {
			Language string `json:"language"`
		} `json:"languages"`
	}
	isError := callTool(t, sendLine, "validate_project", map[string]string{"path": dir}, &result)

	if isError {
		t.Fatal("validate_project returned isError")
	}
	if !result.CanProceed {
		t.Error("validation must always report can_proceed")
	}
	if len(result.Languages) != 1 || result.Languages[0].Language != "go" {
		t.Errorf("Languages = %v, want one go entry", result.Languages)
	}
}

func TestToolsCall_ScoreConfigMissingFile(t *testing.T) {
	s := newTestServer()
	sendLine, _, cleanup := runServer(t, s)
	defer cleanup()

	var result ScoreResult
	isError := callTool(t, sendLine, "score_config", map[string]string{"path": t.TempDir()}, &result)

	if isError {
		t.Fatal("score_config returned isError")
	}
	if result.ConfigExists {
		t.Error("no properties file exists in an empty directory")
	}
}

func TestToolsCall_MissingRequiredArgument(t *testing.T) {
	s := newTestServer()
	sendLine, _, cleanup := runServer(t, s)
	defer cleanup()

	if isError := callTool(t, sendLine, "classify_scan_error", map[string]string{}, nil); !isError {
		t.Error("missing error_text should produce an isError result")
	}
}

func TestToolsCall_UnknownTool(t *testing.T) {
	s := newTestServer()
	sendLine, _, cleanup := runServer(t, s)
	defer cleanup()

	if isError := callTool(t, sendLine, "no_such_tool", map[string]string{}, nil); !isError {
		t.Error("unknown tool should produce an isError result")
	}
}
