package reminder

import (
	"context"
	"sync"
	c "waterreminder/internal/core/domain/common"
)

type TestPresenter struct {
	ShowError error
	HideError error
	ShowCalls int
	HideCalls int
	lock      sync.Mutex
}

func NewTestPresenter() *TestPresenter {
	return &TestPresenter{}
}

func (p *TestPresenter) Show(ctx context.Context) error {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.ShowCalls++
	return p.ShowError
}

func (p *TestPresenter) Hide(ctx context.Context) error {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.HideCalls++
	return p.HideError
}

type TestNotifier struct {
	Error error
	Calls int
	lock  sync.Mutex
}

func NewTestNotifier() *TestNotifier {
	return &TestNotifier{}
}

func (n *TestNotifier) NotifyShowReminder(ctx context.Context) error {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.Calls++
	return n.Error
}

func (n *TestNotifier) CallCount() int {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.Calls
}

type TestSettingsRepository struct {
	Stored    c.Optional[Interval]
	LoadError error
	SaveError error
	SavedWith []Interval
	lock      sync.Mutex
}

func NewTestSettingsRepository() *TestSettingsRepository {
	return &TestSettingsRepository{}
}

func (r *TestSettingsRepository) Load(ctx context.Context) (c.Optional[Interval], error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.LoadError != nil {
		return c.None[Interval](), r.LoadError
	}
	return r.Stored, nil
}

func (r *TestSettingsRepository) Save(ctx context.Context, interval Interval) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.SavedWith = append(r.SavedWith, interval)
	if r.SaveError != nil {
		return r.SaveError
	}
	r.Stored = c.Some(interval)
	return nil
}
