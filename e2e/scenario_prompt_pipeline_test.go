package e2e

import (
	"prompt-lab/domain"
	"prompt-lab/errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
)

var unfilledSlot = regexp.MustCompile(`\{[a-z_]+\}`)

type PromptPipelineSuite struct {
	BaseSuite
}

func TestPromptPipelineSuite(t *testing.T) {
	suite.Run(t, new(PromptPipelineSuite))
}

func (s *PromptPipelineSuite) TestEveryModelRendersCleanPrompts() {
	inputs := []string{
		"미소 짓는 여성의 초상화, 워터마크 없이",
		"해질녘 바닷가 풍경을 시네마틱하게 보여줘",
		"REST API 설계 문서를 작성해줘. 3 sections",
		"신나는 일렉트로닉 댄스 음악",
	}
	for _, id := range s.Models() {
		s.Step("Optimize for "+id, func() {
			for _, input := range inputs {
				result := s.Optimizer.OptimizePrompt(input, id, nil)
				s.Dump(id, result)

				s.Require().True(result.Success, "%s: %s", id, result.Error)
				s.Require().NotEmpty(result.OptimizedPrompt)
				s.Require().False(unfilledSlot.MatchString(result.OptimizedPrompt), result.OptimizedPrompt)
				s.Require().Equal(result.ModelInfo.Category != domain.TextCategory, len(result.GenerationParams) > 0)
			}
		})
	}
}

func (s *PromptPipelineSuite) TestBatchThenStats() {
	var before domain.UsageStats
	s.Step("Read usage before", func() {
		var err error
		before, err = s.Optimizer.UsageStats()
		s.Require().NoError(err)
	})

	s.Step("Batch across categories", func() {
		results, err := s.Optimizer.BatchOptimize("숲 속의 오두막", []string{"imagen-3", "sora", "suno", "unknown"}, nil)
		s.Require().NoError(err)
		s.Dump("batch", results)
		s.Require().Len(results, 4)
		s.Require().False(results[3].Success)
		s.Require().Contains(results[3].AvailableModels, "imagen-3")
	})

	s.Step("Usage counts the successful requests", func() {
		after, err := s.Optimizer.UsageStats()
		s.Require().NoError(err)
		s.Require().Equal(before.TotalRequests+3, after.TotalRequests)
		s.Require().Equal(before.CategoryUsage["video"]+1, after.CategoryUsage["video"])
	})
}

func (s *PromptPipelineSuite) TestTemplateLibrary() {
	s.Step("Apply a template", func() {
		vars, err := s.Library.Variables("summarization", "claude-3")
		s.Require().NoError(err)
		values := make(map[string]string, len(vars))
		for _, v := range vars {
			values[v] = "값 " + v
		}
		text, err := s.Library.ApplyTemplate("summarization", "claude-3", values)
		s.Require().NoError(err)
		s.Require().False(unfilledSlot.MatchString(text))
	})

	s.Step("Report a missing variable", func() {
		_, err := s.Library.ApplyTemplate("analysis", "llama-2", map[string]string{})
		s.Require().ErrorIs(err, errors.ErrMissingTemplateVariable)
	})
}
