package reminder

import (
	"context"
	c "waterreminder/internal/core/domain/common"
)

type SettingsRepository interface {
	// Load returns an empty optional when nothing has been saved yet.
	Load(ctx context.Context) (c.Optional[Interval], error)
	Save(ctx context.Context, interval Interval) error
}
