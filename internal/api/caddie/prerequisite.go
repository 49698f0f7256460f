package caddie

import (
	"context"
	"sync"

	"ProjectCaddie/internal/entity"
)

// PrerequisiteChecker is the collaborator that answers whether a piece of app
// state exists. Implementations live outside the core (device storage, settings).
type PrerequisiteChecker interface {
	Check(ctx context.Context, p entity.Prerequisite) (bool, error)
	CheckAll(ctx context.Context, ps []entity.Prerequisite) ([]entity.Prerequisite, error)
}

// StaticPrerequisiteChecker answers from a fixed table. Used by the REPL driver
// and tests; real deployments plug their own checker in.
type StaticPrerequisiteChecker struct {
	mu    sync.RWMutex
	state map[entity.Prerequisite]bool
}

func NewStaticPrerequisiteChecker(state map[entity.Prerequisite]bool) *StaticPrerequisiteChecker {
	if state == nil {
		state = make(map[entity.Prerequisite]bool)
	}
	return &StaticPrerequisiteChecker{state: state}
}

func (c *StaticPrerequisiteChecker) Set(p entity.Prerequisite, satisfied bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state[p] = satisfied
}

func (c *StaticPrerequisiteChecker) Check(_ context.Context, p entity.Prerequisite) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state[p], nil
}

func (c *StaticPrerequisiteChecker) CheckAll(ctx context.Context, ps []entity.Prerequisite) ([]entity.Prerequisite, error) {
	var missing []entity.Prerequisite
	for _, p := range ps {
		ok, err := c.Check(ctx, p)
		if err != nil {
			return nil, err
		}
		if !ok {
			missing = append(missing, p)
		}
	}
	return missing, nil
}
