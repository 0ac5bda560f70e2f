package e2e

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"prompt-lab/analyzer"
	"prompt-lab/intent"
	"prompt-lab/registry"
	"prompt-lab/repositories"
	"prompt-lab/services"
	"prompt-lab/templates"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// BaseSuite wires the whole pipeline in process, the way the CLI does.
type BaseSuite struct {
	suite.Suite
	Config    Config
	Optimizer *services.Optimizer
	Usage     *repositories.MemoryUsageRepository
	Library   *templates.Library
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	log := logs.GetLoggerFromLevel(slog.LevelInfo)
	s.Usage = repositories.NewMemoryUsageRepository(log, 0)
	s.Optimizer = services.NewOptimizer(log, registry.NewDefaultRegistry(), analyzer.NewAnalyzer(log),
		intent.NewKeywordDetector(), s.Usage, 0)
	s.Library = templates.NewLibrary(log)
}

// Models returns the configured model ids, every registered one by default.
func (s *BaseSuite) Models() []string {
	if len(s.Config.Models) > 0 {
		return s.Config.Models
	}
	return registry.NewDefaultRegistry().IDs()
}

// Step prints a header for one contextual test step and runs it.
func (s *BaseSuite) Step(name string, fn func()) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	fn()
}

// Dump logs v as indented JSON when E2E_DEBUG_JSON is enabled.
func (s *BaseSuite) Dump(label string, v any) {
	if !s.Config.DebugJSON {
		return
	}
	body, err := json.MarshalIndent(v, "", "  ")
	s.Require().NoError(err)
	s.T().Logf("%s:\n%s", label, body)
}
