package pattern

import "ProjectCaddie/pkg/response"

var (
	ErrInvalidShot    = response.NewError(400, "shot id, club and timestamp are required")
	ErrInvalidWindow  = response.NewError(400, "lookback window must be positive")
	ErrStorageFailure = response.NewError(500, "shot storage failure")
)
