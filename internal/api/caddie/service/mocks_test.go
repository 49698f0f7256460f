package caddieService

import (
	"context"
	"io"
	"time"

	"ProjectCaddie/internal/api/caddie"
	sessionService "ProjectCaddie/internal/api/session/service"
	"ProjectCaddie/internal/entity"
	"ProjectCaddie/pkg/llm"
	"ProjectCaddie/pkg/nlp"
	"ProjectCaddie/pkg/utils"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

type mockIntentModel struct {
	ClassifyIntentFunc func(ctx context.Context, text string, session *llm.ClassifyContext) (*llm.ModelResponse, error)
}

func (m *mockIntentModel) ClassifyIntent(ctx context.Context, text string, session *llm.ClassifyContext) (*llm.ModelResponse, error) {
	return m.ClassifyIntentFunc(ctx, text, session)
}

type mockChecker struct {
	CheckFunc func(ctx context.Context, p entity.Prerequisite) (bool, error)
}

func (m *mockChecker) Check(ctx context.Context, p entity.Prerequisite) (bool, error) {
	return m.CheckFunc(ctx, p)
}

func (m *mockChecker) CheckAll(ctx context.Context, ps []entity.Prerequisite) ([]entity.Prerequisite, error) {
	var missing []entity.Prerequisite
	for _, p := range ps {
		ok, err := m.CheckFunc(ctx, p)
		if err != nil {
			return nil, err
		}
		if !ok {
			missing = append(missing, p)
		}
	}
	return missing, nil
}

func allSatisfiedChecker() *mockChecker {
	return &mockChecker{
		CheckFunc: func(context.Context, entity.Prerequisite) (bool, error) {
			return true, nil
		},
	}
}

func modelReturning(intent string, confidence float64, entities map[string]interface{}) *mockIntentModel {
	body := map[string]interface{}{
		"intent":     intent,
		"confidence": confidence,
		"user_goal":  "test goal",
	}
	if entities != nil {
		body["entities"] = entities
	}
	payload, _ := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(body)

	return &mockIntentModel{
		ClassifyIntentFunc: func(context.Context, string, *llm.ClassifyContext) (*llm.ModelResponse, error) {
			return &llm.ModelResponse{
				RawPayload: payload,
				Latency:    5 * time.Millisecond,
				ModelID:    "mock-model",
				Timestamp:  time.Now(),
			}, nil
		},
	}
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestNormalizer() nlp.INormalizer {
	return nlp.NewNormalizer()
}

func newTestUtils() utils.IUtils {
	return utils.New()
}

func newTestSessions() sessionService.ISessionService {
	return sessionService.NewSessionService(
		testLogger(), validator.New(), utils.New(),
		sessionService.SessionConfig{HistoryLimit: 10},
	)
}

func newTestService(model llm.IIntentModel, checker caddie.PrerequisiteChecker) ICaddieService {
	return NewCaddieService(
		testLogger(),
		nlp.NewNormalizer(),
		model,
		checker,
		newTestSessions(),
		caddie.DefaultRegistry(),
		utils.New(),
		DefaultCaddieConfig(),
	)
}
