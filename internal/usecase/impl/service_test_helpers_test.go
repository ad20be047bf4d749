package impl

import (
	"context"
	"io"
	"log/slog"

	"museum/internal/domain/entity"
	"museum/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubHasher is a deterministic stand-in for the argon2 hasher so service
// tests stay fast. The real hasher has its own tests.
type stubHasher struct {
	hashErr error
}

func (h *stubHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "h$" + password, nil
}

func (h *stubHasher) Check(password, hash string) bool {
	return hash == "h$"+password
}

// fakeAccountRepo is an in-memory AccountRepository keyed by ID so renames
// behave like a real store.
type fakeAccountRepo struct {
	accounts map[uuid.UUID]entity.Account
	failAll  error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]entity.Account)}
}

func (r *fakeAccountRepo) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	for _, account := range r.accounts {
		if account.Username == username {
			found := account

			return &found, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	if r.failAll != nil {
		return r.failAll
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	r.accounts[account.ID] = *account

	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *entity.Account) error {
	if r.failAll != nil {
		return r.failAll
	}
	r.accounts[account.ID] = *account

	return nil
}

func (r *fakeAccountRepo) DeleteByUsername(_ context.Context, username string) error {
	if r.failAll != nil {
		return r.failAll
	}
	for id, account := range r.accounts {
		if account.Username == username {
			delete(r.accounts, id)
		}
	}

	return nil
}

// fakeProfileRepo is an in-memory ProfileRepository.
type fakeProfileRepo struct {
	profiles map[uuid.UUID]entity.Profile
	failAll  error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]entity.Profile)}
}

func (r *fakeProfileRepo) FindByUsername(_ context.Context, username string) (*entity.Profile, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	for _, profile := range r.profiles {
		if profile.Username == username {
			found := profile

			return &found, nil
		}
	}

	return nil, repository.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindAll(_ context.Context) ([]*entity.Profile, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	profiles := make([]*entity.Profile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		found := profile
		profiles = append(profiles, &found)
	}

	return profiles, nil
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *entity.Profile) error {
	if r.failAll != nil {
		return r.failAll
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	r.profiles[profile.ID] = *profile

	return nil
}

func (r *fakeProfileRepo) Update(_ context.Context, profile *entity.Profile) error {
	if r.failAll != nil {
		return r.failAll
	}
	r.profiles[profile.ID] = *profile

	return nil
}

func (r *fakeProfileRepo) DeleteByUsername(_ context.Context, username string) error {
	if r.failAll != nil {
		return r.failAll
	}
	for id, profile := range r.profiles {
		if profile.Username == username {
			delete(r.profiles, id)
		}
	}

	return nil
}

// fakeItemRepo is an in-memory ItemRepository.
type fakeItemRepo struct {
	items   map[uuid.UUID]entity.Item
	failAll error
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]entity.Item)}
}

func (r *fakeItemRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Item, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	found := item

	return &found, nil
}

func (r *fakeItemRepo) FindAll(_ context.Context) ([]*entity.Item, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	items := make([]*entity.Item, 0, len(r.items))
	for _, item := range r.items {
		found := item
		items = append(items, &found)
	}

	return items, nil
}

func (r *fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	if r.failAll != nil {
		return r.failAll
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = *item

	return nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *entity.Item) error {
	if r.failAll != nil {
		return r.failAll
	}
	r.items[item.ID] = *item

	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.failAll != nil {
		return r.failAll
	}
	delete(r.items, id)

	return nil
}

// fakeRepoFactory hands out the shared fakes, mimicking a factory bound to a
// transaction.
type fakeRepoFactory struct {
	accountRepo *fakeAccountRepo
	profileRepo *fakeProfileRepo
	itemRepo    *fakeItemRepo
}

func (f *fakeRepoFactory) AccountRepo() repository.AccountRepository { return f.accountRepo }
func (f *fakeRepoFactory) ProfileRepo() repository.ProfileRepository { return f.profileRepo }
func (f *fakeRepoFactory) ItemRepo() repository.ItemRepository       { return f.itemRepo }

// fakeTxManager runs the callback directly against the fakes. Rollback is not
// modeled; tests that care about partial failure inject failing repos instead.
type fakeTxManager struct {
	factory *fakeRepoFactory
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}
