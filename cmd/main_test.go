package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"prompt-lab/domain"
	"prompt-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("COLOURS", "false")
	t.Setenv("LOG_LEVEL", "ERROR")
	var out bytes.Buffer
	err := run(args, &out)
	return out.String(), err
}

func TestRun_Optimize(t *testing.T) {
	req := require.New(t)

	out, err := runCLI(t, "optimize", "-model", "midjourney-v6", "-text", "고양이 일러스트", "-override", "aspect_ratio=wide")

	req.NoError(err)
	req.Contains(out, "midjourney-v6")
	req.Contains(out, "16:9")
}

func TestRun_Optimize_Json(t *testing.T) {
	req := require.New(t)

	out, err := runCLI(t, "optimize", "-model", "gpt-4o", "-text", "블로그 글을 써줘", "-json")

	req.NoError(err)
	var result domain.PromptResult
	req.NoError(json.Unmarshal([]byte(out), &result))
	req.True(result.Success)
	req.Equal("gpt-4o", result.ModelID)
}

func TestRun_Optimize_Unknown_Model_Fails(t *testing.T) {
	req := require.New(t)

	out, err := runCLI(t, "optimize", "-model", "gpt-5", "-text", "안녕")

	req.Error(err)
	req.Contains(out, "지원하지 않는 모델 ID: gpt-5")
	req.Contains(out, "suno")
}

func TestRun_Optimize_Input_Errors(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	binary := filepath.Join(dir, "image.png")
	req.NoError(os.WriteFile(binary, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0o600))

	tests := []struct {
		description string
		args        []string
		target      error
	}{
		{"Should reject an empty prompt", []string{"-model", "gpt-4o", "-text", "  "}, errors.ErrEmptyPrompt},
		{"Should reject a binary file", []string{"-model", "gpt-4o", "-file", binary}, errors.ErrNotText},
	}

	for _, tt := range tests {
		_, err := runCLI(t, append([]string{"optimize"}, tt.args...)...)
		req.ErrorIs(err, tt.target, tt.description)
	}

	_, err := runCLI(t, "optimize", "-text", "안녕")
	req.ErrorContains(err, "-model is required")
}

func TestRun_Optimize_From_File(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "prompt.txt")
	req.NoError(os.WriteFile(path, []byte("재즈 피아노 곡을 만들어줘\n"), 0o600))

	out, err := runCLI(t, "optimize", "-model", "suno", "-file", path)

	req.NoError(err)
	req.Contains(out, "suno")
}

func TestRun_Batch_Reports_Failures(t *testing.T) {
	req := require.New(t)

	out, err := runCLI(t, "batch", "-models", "gpt-4o, nope", "-text", "바다 풍경")

	req.ErrorContains(err, "1 of 2 optimizations failed")
	req.Contains(out, "지원하지 않는 모델 ID: nope")
}

func TestRun_Listing_Commands(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		description string
		args        []string
		contains    string
	}{
		{"Should list video models", []string{"models", "-type", "video"}, "google-veo-3"},
		{"Should print tips", []string{"tips", "-model", "gpt-o3"}, "gpt-o3"},
		{"Should print the structure", []string{"structure", "-model", "imagen-3"}, "negative_prompt"},
		{"Should compare providers", []string{"compare", "-models", "gpt-4o,imagen-3"}, "Google"},
		{"Should list templates", []string{"templates"}, "claude-3"},
		{"Should search templates", []string{"templates", "-search", "summarization"}, "summarization"},
		{"Should validate a prompt", []string{"validate", "-model", "gpt-4o", "-text", "hi"}, "estimated_tokens"},
		{"Should print stats", []string{"stats"}, "rss_bytes"},
		{"Should print example tasks", []string{"template", "-model", "gpt-4", "-examples"}, "- "},
	}

	for _, tt := range tests {
		out, err := runCLI(t, tt.args...)
		req.NoError(err, tt.description)
		req.Contains(out, tt.contains, tt.description)
	}
}

func TestRun_Template_Missing_Variable(t *testing.T) {
	req := require.New(t)

	_, err := runCLI(t, "template", "-category", "writing", "-model", "gpt-4")

	req.ErrorIs(err, errors.ErrMissingTemplateVariable)
}

func TestRun_Unknown_Command(t *testing.T) {
	req := require.New(t)

	out, err := runCLI(t, "explode")

	req.ErrorContains(err, "unknown command")
	req.Contains(out, "Usage: prompt-lab")
}

func TestRun_Invalid_Config(t *testing.T) {
	req := require.New(t)
	t.Setenv("USAGE_STORE", "redis")

	_, err := runCLI(t, "models")

	req.ErrorContains(err, "USAGE_STORE")
}

func TestRun_Badger_Store_Persists_Usage(t *testing.T) {
	req := require.New(t)
	t.Setenv("USAGE_STORE", "badger")
	t.Setenv("BADGER_FILEPATH", t.TempDir())

	// Given two invocations sharing the same store
	_, err := runCLI(t, "optimize", "-model", "dalle-3", "-text", "노을 지는 해변")
	req.NoError(err)

	// When stats are read by a third one
	out, err := runCLI(t, "stats", "-json")
	req.NoError(err)

	// Then the first request is counted
	var snapshot struct {
		Usage domain.UsageStats `json:"usage"`
	}
	req.NoError(json.Unmarshal([]byte(out), &snapshot))
	req.Equal(1, snapshot.Usage.TotalRequests)
	req.Equal(1, snapshot.Usage.ModelUsage["dalle-3"])
}

func TestPairs_Set(t *testing.T) {
	req := require.New(t)
	p := pairs{}

	req.NoError(p.Set("style=cinematic"))
	req.NoError(p.Set(" include = a=b"))
	req.Error(p.Set("novalue"))
	req.Error(p.Set("=x"))

	req.Equal(pairs{"style": "cinematic", "include": " a=b"}, p)
	req.Equal("include= a=b,style=cinematic", p.String())
	req.Nil(pairs{}.overrides())
}

func TestSplitList(t *testing.T) {
	req := require.New(t)

	req.Equal([]string{"a", "b"}, splitList(" a, ,b,"))
	req.Empty(splitList(""))
}
