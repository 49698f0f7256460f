package caddie

import "ProjectCaddie/internal/entity"

// IntentDefinition is one row of the intent registry: everything the classifier,
// clarification handler and router need to know about an intent type.
type IntentDefinition struct {
	Type             entity.IntentType
	Description      string
	Examples         []string
	Keywords         []string
	RequiredEntities []string
	Prerequisites    []entity.Prerequisite
	Target           *entity.RoutingTarget
	NoNavigation     bool
	RoundScoped      bool
}

// IntentRegistry is passed into the service constructors; there is no package-level
// mutable registry.
type IntentRegistry struct {
	Definitions          map[entity.IntentType]IntentDefinition
	PrerequisiteMessages map[entity.Prerequisite]string
	PersonaResponses     map[entity.IntentType]string
	EntityLabels         map[string]string
}

func (r IntentRegistry) Definition(t entity.IntentType) (IntentDefinition, bool) {
	def, ok := r.Definitions[t]
	return def, ok
}

func target(module entity.AppModule, screen string) *entity.RoutingTarget {
	return &entity.RoutingTarget{Module: module, Screen: screen}
}

func DefaultRegistry() IntentRegistry {
	defs := []IntentDefinition{
		{
			Type:        entity.IntentStartRound,
			Description: "start a new round of golf on a course",
			Examples:    []string{"start a round", "let's play the front nine", "tee off at pebble"},
			Keywords:    []string{"start", "tee", "play", "round", "begin"},
			Target:      target(entity.ModulePlay, "RoundSetupScreen"),
		},
		{
			Type:          entity.IntentEndRound,
			Description:   "finish the current round and see the summary",
			Examples:      []string{"end my round", "finish up", "we're done for today"},
			Keywords:      []string{"end", "finish", "done", "wrap"},
			Prerequisites: []entity.Prerequisite{entity.PrerequisiteRoundActive},
			Target:        target(entity.ModuleScoring, "RoundSummaryScreen"),
			RoundScoped:   true,
		},
		{
			Type:             entity.IntentScoreEntry,
			Description:      "enter a score for a hole",
			Examples:         []string{"i made a bogey on 7", "put me down for a par", "score a 5 on this hole"},
			Keywords:         []string{"score", "bogey", "birdie", "par", "eagle", "made"},
			RequiredEntities: []string{"score_context"},
			Prerequisites:    []entity.Prerequisite{entity.PrerequisiteRoundActive},
			Target:           target(entity.ModuleScoring, "ScoreEntryScreen"),
			RoundScoped:      true,
		},
		{
			Type:        entity.IntentScoreQuery,
			Description: "check the current scorecard or totals",
			Examples:    []string{"what am i shooting", "how many over am i", "show my scorecard"},
			Keywords:    []string{"scorecard", "shooting", "total", "over", "under"},
			Target:      target(entity.ModuleScoring, "ScorecardScreen"),
			RoundScoped: true,
		},
		{
			Type:             entity.IntentShotRecommendation,
			Description:      "get a club or shot recommendation for the current situation",
			Examples:         []string{"what club should i hit", "150 yards into the wind", "recommendation for this shot"},
			Keywords:         []string{"club", "hit", "recommend", "yards", "wind", "shot"},
			RequiredEntities: []string{"yardage"},
			Prerequisites:    []entity.Prerequisite{entity.PrerequisiteBagConfigured},
			Target:           target(entity.ModulePlay, "CaddieAdviceScreen"),
			RoundScoped:      true,
		},
		{
			Type:             entity.IntentShotRecord,
			Description:      "log the shot just played and how it missed",
			Examples:         []string{"log that shot", "missed left with the driver", "record a push right"},
			Keywords:         []string{"log", "record", "missed", "miss", "push", "pull"},
			RequiredEntities: []string{"club"},
			Target:           target(entity.ModulePlay, "ShotRecordScreen"),
			RoundScoped:      true,
		},
		{
			Type:             entity.IntentClubAdjustment,
			Description:      "adjust distances or settings for a club in the bag",
			Examples:         []string{"my 7 iron is going 160 now", "adjust my driver distance", "update the gap wedge"},
			Keywords:         []string{"adjust", "update", "distance", "carry", "gapping"},
			RequiredEntities: []string{"club"},
			Prerequisites:    []entity.Prerequisite{entity.PrerequisiteBagConfigured},
			Target:           target(entity.ModuleBag, "ClubAdjustmentScreen"),
		},
		{
			Type:        entity.IntentBagView,
			Description: "see the clubs currently configured in the bag",
			Examples:    []string{"show my bag", "what clubs do i carry", "open the bag"},
			Keywords:    []string{"bag", "clubs", "carry", "setup"},
			Target:      target(entity.ModuleBag, "BagOverviewScreen"),
		},
		{
			Type:          entity.IntentRecoveryCheck,
			Description:   "check readiness and recovery before playing",
			Examples:      []string{"am i recovered enough to play", "check my readiness", "how recovered am i"},
			Keywords:      []string{"recovered", "recovery", "readiness", "ready", "rest"},
			Prerequisites: []entity.Prerequisite{entity.PrerequisiteRecoveryData},
			Target:        target(entity.ModuleRecovery, "ReadinessScreen"),
		},
		{
			Type:             entity.IntentFatigueReport,
			Description:      "report how tired or fresh you feel",
			Examples:         []string{"i'm feeling pretty tired", "fatigue is about a 7", "legs are gassed"},
			Keywords:         []string{"tired", "fatigue", "exhausted", "gassed", "fresh"},
			RequiredEntities: []string{"fatigue"},
			Target:           target(entity.ModuleRecovery, "FatigueLogScreen"),
		},
		{
			Type:             entity.IntentPainReport,
			Description:      "report pain or soreness somewhere",
			Examples:         []string{"my back hurts", "shoulder is sore after the range", "wrist pain on full swings"},
			Keywords:         []string{"pain", "hurts", "sore", "ache", "injury"},
			RequiredEntities: []string{"pain"},
			Target:           target(entity.ModuleRecovery, "PainLogScreen"),
		},
		{
			Type:          entity.IntentCourseInfo,
			Description:   "look up details about the selected course",
			Examples:      []string{"tell me about this course", "course layout", "slope and rating here"},
			Keywords:      []string{"course", "layout", "slope", "rating"},
			Prerequisites: []entity.Prerequisite{entity.PrerequisiteCourseSelected},
			Target:        target(entity.ModuleCourse, "CourseDetailScreen"),
		},
		{
			Type:        entity.IntentHoleInfo,
			Description: "details for a specific hole",
			Examples:    []string{"what's hole 12 like", "how long is this hole", "where's the trouble on 3"},
			Keywords:    []string{"hole", "long", "trouble", "dogleg"},
			Target:      target(entity.ModuleCourse, "HoleDetailScreen"),
			RoundScoped: true,
		},
		{
			Type:        entity.IntentWeatherCheck,
			Description: "current weather and wind at the course",
			Examples:    []string{"how's the wind", "is it going to rain", "weather for the back nine"},
			Keywords:    []string{"weather", "wind", "rain", "forecast", "temperature"},
			Target:      target(entity.ModuleCourse, "WeatherScreen"),
		},
		{
			Type:        entity.IntentStatsView,
			Description: "review performance statistics over past rounds",
			Examples:    []string{"show my stats", "fairways hit this month", "how's my putting trending"},
			Keywords:    []string{"stats", "statistics", "fairways", "putting", "trend"},
			Target:      target(entity.ModuleStats, "StatsOverviewScreen"),
		},
		{
			Type:        entity.IntentPracticePlan,
			Description: "get a practice plan based on recent play",
			Examples:    []string{"what should i practice", "build me a range session", "drills for this week"},
			Keywords:    []string{"practice", "range", "drills", "session"},
			Target:      target(entity.ModuleStats, "PracticePlanScreen"),
		},
		{
			Type:         entity.IntentPatternQuery,
			Description:  "ask about your miss tendencies and patterns",
			Examples:     []string{"where do i usually miss", "do i miss left under pressure", "what's my pattern with the driver"},
			Keywords:     []string{"pattern", "usually", "tendency", "tend", "misses"},
			NoNavigation: true,
		},
		{
			Type:         entity.IntentHelp,
			Description:  "ask what the assistant can do",
			Examples:     []string{"help", "what can you do", "how does this work"},
			Keywords:     []string{"help", "how", "what", "confused"},
			NoNavigation: true,
		},
		{
			Type:         entity.IntentFeedback,
			Description:  "give feedback about the app or the caddie",
			Examples:     []string{"i have some feedback", "this suggestion was wrong", "love this feature"},
			Keywords:     []string{"feedback", "wrong", "love", "hate", "suggestion"},
			NoNavigation: true,
		},
		{
			Type:        entity.IntentUnknown,
			Description: "could not tell what you wanted",
		},
	}

	defMap := make(map[entity.IntentType]IntentDefinition, len(defs))
	for _, def := range defs {
		defMap[def.Type] = def
	}

	return IntentRegistry{
		Definitions: defMap,
		PrerequisiteMessages: map[entity.Prerequisite]string{
			entity.PrerequisiteRecoveryData:   "I don't have your recovery data yet. Connect your wearable or log how you're feeling first, then ask me again.",
			entity.PrerequisiteRoundActive:    "You don't have an active round going. Start a round first and I'll take it from there.",
			entity.PrerequisiteBagConfigured:  "Your bag isn't set up yet. Add your clubs in the bag section so my advice matches what you actually carry.",
			entity.PrerequisiteCourseSelected: "No course is selected. Pick a course first so I can pull up the right details.",
		},
		PersonaResponses: map[entity.IntentType]string{
			entity.IntentPatternQuery: "Looking at your recent shots, I track where your misses cluster by club and by pressure. Ask me about a specific club, like \"where do I miss with the driver\", and I'll break it down.",
			entity.IntentHelp:         "I can start and score your round, recommend clubs, log shots and how they missed, track fatigue and pain, and tell you about your miss patterns. Just say it the way you'd say it to a caddie.",
			entity.IntentFeedback:     "Thanks, I've noted that. Your feedback goes straight into making my advice better.",
		},
		EntityLabels: map[string]string{
			"club":          "club",
			"yardage":       "yardage",
			"lie":           "lie",
			"wind":          "wind",
			"fatigue":       "fatigue level",
			"pain":          "pain description",
			"score_context": "score",
			"hole_number":   "hole number",
		},
	}
}
