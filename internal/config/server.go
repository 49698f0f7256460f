package config

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"ProjectCaddie/internal/api/caddie"
	caddieService "ProjectCaddie/internal/api/caddie/service"
	patternRepository "ProjectCaddie/internal/api/pattern/repository"
	patternService "ProjectCaddie/internal/api/pattern/service"
	sessionService "ProjectCaddie/internal/api/session/service"
	contextPkg "ProjectCaddie/pkg/context"
	"ProjectCaddie/pkg/llm"
	"ProjectCaddie/pkg/nlp"
	"ProjectCaddie/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	log         *logrus.Logger
	validator   *validator.Validate
	utils       utils.IUtils
	normalizer  nlp.INormalizer
	intentModel llm.IIntentModel
	checker     caddie.PrerequisiteChecker
	shotRepo    patternRepository.Repository

	sessions sessionService.ISessionService
	patterns patternService.IPatternService
	caddie   caddieService.ICaddieService
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.intentModel == nil {
		return nil, fmt.Errorf("intent model is required")
	}

	return server, nil
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validate *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validate
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithNormalizer() ServerOption {
	return func(s *Server) error {
		s.normalizer = nlp.NewNormalizer()
		return nil
	}
}

func WithIntentModel() ServerOption {
	return func(s *Server) error {
		if os.Getenv("GEMINI_API_KEY") != "" {
			model, err := llm.NewGeminiModel()
			if err != nil {
				return fmt.Errorf("failed to create Gemini model: %w", err)
			}
			s.intentModel = model
			return nil
		}
		s.intentModel = llm.NewOpenAIModel()
		return nil
	}
}

func WithPrerequisiteChecker(checker caddie.PrerequisiteChecker) ServerOption {
	return func(s *Server) error {
		s.checker = checker
		return nil
	}
}

func WithShotRepository() ServerOption {
	return func(s *Server) error {
		s.shotRepo = patternRepository.NewMemoryRepository()
		return nil
	}
}

// RegisterServices builds the domain services once all collaborators are set.
func (s *Server) RegisterServices() {
	s.sessions = sessionService.NewSessionService(
		s.log, s.validator, s.utils, sessionService.SessionConfig{HistoryLimit: 10},
	)

	s.patterns = patternService.NewPatternService(
		s.log, s.shotRepo, nil, patternService.DefaultPatternConfig(),
	)

	s.caddie = caddieService.NewCaddieService(
		s.log,
		s.normalizer,
		s.intentModel,
		s.checker,
		s.sessions,
		caddie.DefaultRegistry(),
		s.utils,
		caddieService.DefaultCaddieConfig(),
	)
}

func (s *Server) Sessions() sessionService.ISessionService { return s.sessions }
func (s *Server) Patterns() patternService.IPatternService { return s.patterns }
func (s *Server) Caddie() caddieService.ICaddieService     { return s.caddie }

// Run reads utterances line by line and prints the routing decision; it is the
// development driver, not a product surface.
func (s *Server) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("caddie ready. type an utterance, or \"quit\" to exit")

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return nil
		}

		turnCtx := contextPkg.NewTurnContext(ctx)
		result := s.caddie.HandleUtterance(turnCtx, line)
		printRoutingResult(result)
	}
}

func printRoutingResult(result caddie.RoutingResult) {
	switch res := result.(type) {
	case caddie.Navigate:
		fmt.Printf("navigate  %s/%s %v\n  %s\n", res.Target.Module, res.Target.Screen, res.Target.Parameters, res.Message)
	case caddie.NoNavigation:
		fmt.Printf("reply     %s\n", res.Response)
	case caddie.PrerequisiteMissing:
		fmt.Printf("blocked   missing=%v\n  %s\n", res.Missing, res.Message)
	case caddie.ConfirmationRequired:
		fmt.Printf("confirm   %s\n", res.Message)
	}
}
