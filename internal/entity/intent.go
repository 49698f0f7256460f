package entity

import "time"

type IntentType string

const (
	IntentUnknown            IntentType = "unknown"
	IntentStartRound         IntentType = "start_round"
	IntentEndRound           IntentType = "end_round"
	IntentScoreEntry         IntentType = "score_entry"
	IntentScoreQuery         IntentType = "score_query"
	IntentShotRecommendation IntentType = "shot_recommendation"
	IntentShotRecord         IntentType = "shot_record"
	IntentClubAdjustment     IntentType = "club_adjustment"
	IntentBagView            IntentType = "bag_view"
	IntentRecoveryCheck      IntentType = "recovery_check"
	IntentFatigueReport      IntentType = "fatigue_report"
	IntentPainReport         IntentType = "pain_report"
	IntentCourseInfo         IntentType = "course_info"
	IntentHoleInfo           IntentType = "hole_info"
	IntentWeatherCheck       IntentType = "weather_check"
	IntentStatsView          IntentType = "stats_view"
	IntentPracticePlan       IntentType = "practice_plan"
	IntentPatternQuery       IntentType = "pattern_query"
	IntentHelp               IntentType = "help"
	IntentFeedback           IntentType = "feedback"
)

func (t IntentType) Valid() bool {
	_, ok := intentTypeSet[t]
	return ok
}

var intentTypeSet = map[IntentType]struct{}{
	IntentUnknown: {}, IntentStartRound: {}, IntentEndRound: {},
	IntentScoreEntry: {}, IntentScoreQuery: {}, IntentShotRecommendation: {},
	IntentShotRecord: {}, IntentClubAdjustment: {}, IntentBagView: {},
	IntentRecoveryCheck: {}, IntentFatigueReport: {}, IntentPainReport: {},
	IntentCourseInfo: {}, IntentHoleInfo: {}, IntentWeatherCheck: {},
	IntentStatsView: {}, IntentPracticePlan: {}, IntentPatternQuery: {},
	IntentHelp: {}, IntentFeedback: {},
}

type AppModule string

const (
	ModuleHome     AppModule = "home"
	ModulePlay     AppModule = "play"
	ModuleScoring  AppModule = "scoring"
	ModuleBag      AppModule = "bag"
	ModuleRecovery AppModule = "recovery"
	ModuleCourse   AppModule = "course"
	ModuleStats    AppModule = "stats"
	ModuleSettings AppModule = "settings"
)

type Prerequisite string

const (
	PrerequisiteRecoveryData   Prerequisite = "recovery_data"
	PrerequisiteRoundActive    Prerequisite = "round_active"
	PrerequisiteBagConfigured  Prerequisite = "bag_configured"
	PrerequisiteCourseSelected Prerequisite = "course_selected"
)

type ExtractedEntities struct {
	Club         string `json:"club,omitempty"`
	Yardage      int    `json:"yardage,omitempty"`
	Lie          string `json:"lie,omitempty"`
	Wind         string `json:"wind,omitempty"`
	Fatigue      int    `json:"fatigue,omitempty"`
	Pain         string `json:"pain,omitempty"`
	ScoreContext string `json:"score_context,omitempty"`
	HoleNumber   int    `json:"hole_number,omitempty"`
}

type RoutingTarget struct {
	Module     AppModule         `json:"module"`
	Screen     string            `json:"screen"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

type ParsedIntent struct {
	IntentID      string            `json:"intent_id"`
	Type          IntentType        `json:"type"`
	Confidence    float64           `json:"confidence"`
	Entities      ExtractedEntities `json:"entities"`
	UserGoal      string            `json:"user_goal,omitempty"`
	RoutingTarget *RoutingTarget    `json:"routing_target,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
}
