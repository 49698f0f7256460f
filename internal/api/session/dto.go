package session

type UpdateRoundRequest struct {
	RoundID      string `json:"round_id" validate:"required"`
	CourseName   string `json:"course_name" validate:"required"`
	StartingHole int    `json:"starting_hole" validate:"omitempty,min=1,max=18"`
	StartingPar  int    `json:"starting_par" validate:"omitempty,min=3,max=5"`
}

type UpdateHoleRequest struct {
	Number int `json:"number" validate:"required,min=1,max=18"`
	Par    int `json:"par" validate:"required,min=3,max=5"`
}

type UpdateConditionsRequest struct {
	Wind        string  `json:"wind"`
	Temperature float64 `json:"temperature"`
	Summary     string  `json:"summary"`
}

type UpdateScoreRequest struct {
	Total     int `json:"total" validate:"min=0"`
	Completed int `json:"completed" validate:"min=0,max=18"`
}
