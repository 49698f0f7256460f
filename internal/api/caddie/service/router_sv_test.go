package caddieService

import (
	"context"
	"errors"
	"testing"

	"ProjectCaddie/internal/api/caddie"
	"ProjectCaddie/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routeFor(intentType entity.IntentType, target entity.RoutingTarget) caddie.Route {
	return caddie.Route{
		Intent: entity.ParsedIntent{
			IntentID:   "test-intent",
			Type:       intentType,
			Confidence: 0.9,
		},
		Target: target,
	}
}

func TestRoute_NavigateWhenPrerequisitesSatisfied(t *testing.T) {
	svc := newTestService(modelReturning("club_adjustment", 0.85, nil), allSatisfiedChecker())

	target := entity.RoutingTarget{
		Module:     entity.ModuleBag,
		Screen:     "ClubAdjustmentScreen",
		Parameters: map[string]string{"clubId": "7 iron"},
	}
	result := svc.Route(context.Background(), routeFor(entity.IntentClubAdjustment, target))

	nav, ok := result.(caddie.Navigate)
	require.True(t, ok, "expected Navigate, got %T", result)
	assert.Equal(t, target, nav.Target)
	assert.NotEmpty(t, nav.Message)
}

func TestRoute_PrerequisiteMissingSingle(t *testing.T) {
	checker := &mockChecker{
		CheckFunc: func(_ context.Context, p entity.Prerequisite) (bool, error) {
			return p != entity.PrerequisiteRecoveryData, nil
		},
	}
	svc := newTestService(modelReturning("recovery_check", 0.88, nil), checker)

	result := svc.Route(context.Background(),
		routeFor(entity.IntentRecoveryCheck, entity.RoutingTarget{Module: entity.ModuleRecovery, Screen: "ReadinessScreen"}))

	missing, ok := result.(caddie.PrerequisiteMissing)
	require.True(t, ok, "expected PrerequisiteMissing, got %T", result)
	assert.Equal(t, []entity.Prerequisite{entity.PrerequisiteRecoveryData}, missing.Missing)
	assert.Contains(t, missing.Message, "recovery data")
}

func TestRoute_NoPrerequisitesNeverBlocked(t *testing.T) {
	checker := &mockChecker{
		CheckFunc: func(context.Context, entity.Prerequisite) (bool, error) {
			return false, nil
		},
	}
	svc := newTestService(modelReturning("bag_view", 0.9, nil), checker)

	result := svc.Route(context.Background(),
		routeFor(entity.IntentBagView, entity.RoutingTarget{Module: entity.ModuleBag, Screen: "BagOverviewScreen"}))

	_, ok := result.(caddie.Navigate)
	assert.True(t, ok, "intent with no prerequisites must never yield PrerequisiteMissing, got %T", result)
}

func TestRoute_CheckerErrorFailsClosed(t *testing.T) {
	checker := &mockChecker{
		CheckFunc: func(context.Context, entity.Prerequisite) (bool, error) {
			return true, errors.New("storage offline")
		},
	}
	svc := newTestService(modelReturning("course_info", 0.9, nil), checker)

	result := svc.Route(context.Background(),
		routeFor(entity.IntentCourseInfo, entity.RoutingTarget{Module: entity.ModuleCourse, Screen: "CourseDetailScreen"}))

	missing, ok := result.(caddie.PrerequisiteMissing)
	require.True(t, ok, "checker failure must read as missing, got %T", result)
	assert.Equal(t, []entity.Prerequisite{entity.PrerequisiteCourseSelected}, missing.Missing)
}

func TestRoute_NoNavigationIntents(t *testing.T) {
	svc := newTestService(modelReturning("help", 0.95, nil), allSatisfiedChecker())

	for _, intentType := range []entity.IntentType{
		entity.IntentPatternQuery,
		entity.IntentHelp,
		entity.IntentFeedback,
	} {
		result := svc.Route(context.Background(), routeFor(intentType, entity.RoutingTarget{}))

		noNav, ok := result.(caddie.NoNavigation)
		require.True(t, ok, "%s should never navigate, got %T", intentType, result)
		assert.NotEmpty(t, noNav.Response)
		assert.Equal(t, intentType, noNav.Intent.Type)
	}
}

func TestRoute_ConfirmPassesThrough(t *testing.T) {
	svc := newTestService(modelReturning("help", 0.6, nil), allSatisfiedChecker())

	result := svc.Route(context.Background(), caddie.Confirm{
		Intent:  entity.ParsedIntent{Type: entity.IntentScoreEntry, Confidence: 0.6},
		Message: "I think you want to enter a score. Is that right?",
	})

	confirmation, ok := result.(caddie.ConfirmationRequired)
	require.True(t, ok)
	assert.Equal(t, "I think you want to enter a score. Is that right?", confirmation.Message)
}

func TestRoute_ClarifyBecomesNoNavigation(t *testing.T) {
	svc := newTestService(modelReturning("help", 0.2, nil), allSatisfiedChecker())

	result := svc.Route(context.Background(), caddie.Clarify{
		Response: caddie.ClarificationResponse{
			Message: "Did you mean one of these?",
			Suggestions: []caddie.Suggestion{
				{Intent: entity.IntentBagView, Label: "bag view"},
			},
			OriginalInput: "bg",
		},
	})

	noNav, ok := result.(caddie.NoNavigation)
	require.True(t, ok)
	assert.Contains(t, noNav.Response, "Did you mean one of these?")
	assert.Contains(t, noNav.Response, "bag view")
	assert.Zero(t, noNav.Intent.Confidence)
}

func TestRoute_ErrorBecomesApology(t *testing.T) {
	svc := newTestService(modelReturning("help", 0.2, nil), allSatisfiedChecker())

	result := svc.Route(context.Background(), caddie.ClassificationError{
		Cause:   caddie.ErrBoundaryFailed,
		Message: "I'm having trouble understanding right now.",
	})

	noNav, ok := result.(caddie.NoNavigation)
	require.True(t, ok)
	assert.Contains(t, noNav.Response, "Sorry")
}

func TestHandleUtterance_EndToEndNavigate(t *testing.T) {
	entities := map[string]interface{}{"club": "7-iron"}
	checker := &mockChecker{
		CheckFunc: func(_ context.Context, p entity.Prerequisite) (bool, error) {
			return p == entity.PrerequisiteBagConfigured, nil
		},
	}
	svc := newTestService(modelReturning("club_adjustment", 0.85, entities), checker)

	result := svc.HandleUtterance(context.Background(), "my 7 iron needs adjusting")

	nav, ok := result.(caddie.Navigate)
	require.True(t, ok, "expected Navigate, got %T", result)
	assert.Equal(t, "ClubAdjustmentScreen", nav.Target.Screen)
	assert.Equal(t, "7 iron", nav.Target.Parameters["clubId"])
}

func TestHandleUtterance_RecoveryCheckBlocked(t *testing.T) {
	checker := &mockChecker{
		CheckFunc: func(_ context.Context, p entity.Prerequisite) (bool, error) {
			return p != entity.PrerequisiteRecoveryData, nil
		},
	}
	svc := newTestService(modelReturning("recovery_check", 0.88, nil), checker)

	result := svc.HandleUtterance(context.Background(), "am i recovered enough to play")

	missing, ok := result.(caddie.PrerequisiteMissing)
	require.True(t, ok, "expected PrerequisiteMissing, got %T", result)
	assert.Equal(t, []entity.Prerequisite{entity.PrerequisiteRecoveryData}, missing.Missing)
	assert.NotEmpty(t, missing.Message)
}

func TestHandleUtterance_RecordsConversationTurn(t *testing.T) {
	sessions := newTestSessions()
	svc := NewCaddieService(
		testLogger(), newTestNormalizer(), modelReturning("bag_view", 0.9, nil),
		allSatisfiedChecker(), sessions, caddie.DefaultRegistry(), newTestUtils(), DefaultCaddieConfig(),
	)

	svc.HandleUtterance(context.Background(), "show my bag")

	history := sessions.Snapshot().ConversationHistory
	require.Len(t, history, 2)
	assert.Equal(t, entity.TurnRoleUser, history[0].Role)
	assert.Equal(t, "show my bag", history[0].Content)
	assert.Equal(t, entity.TurnRoleAssistant, history[1].Role)
	assert.NotEmpty(t, history[1].Content)
}
