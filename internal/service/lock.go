package service

import "context"

// grantAllCoordinator is the default [LockCoordinator]: every acquisition
// succeeds and no state is kept. Optimistic conflict detection does not
// depend on locking, so this is safe as the production default.
type grantAllCoordinator struct{}

// NewGrantAllLockCoordinator constructs the grant-everything coordinator.
func NewGrantAllLockCoordinator() LockCoordinator {
	return &grantAllCoordinator{}
}

func (c *grantAllCoordinator) Acquire(context.Context, string, string, LockMode) error {
	return nil
}

func (c *grantAllCoordinator) Release(context.Context, string, string) error {
	return nil
}

func (c *grantAllCoordinator) Holder(context.Context, string) (string, bool) {
	return "", false
}
