package auth

import (
	"context"
	"habit-tracker/app/server/jwt"
	"habit-tracker/app/server/models"
	"habit-tracker/app/server/password"
	"habit-tracker/app/server/repository"
	"sync"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/require"
)

// memStore 内存版身份存储，邮箱唯一
type memStore struct {
	mu     sync.Mutex
	users  map[string]*models.User
	nextID uint

	// skipPrecheck 让 ExistsByEmail 总是返回 false ，模拟并发注册
	skipPrecheck bool
	lookupErr    error
}

func newMemStore() *memStore {
	return &memStore{users: map[string]*models.User{}}
}

func (s *memStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	u, ok := s.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.skipPrecheck {
		return false, nil
	}
	_, ok := s.users[email]
	return ok, nil
}

func (s *memStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return repository.ErrAlreadyExists
	}
	s.nextID++
	user.ID = s.nextID
	cp := *user
	s.users[user.Email] = &cp
	return nil
}

func cheapHasher() *password.Hasher {
	return password.New(&argon2id.Params{
		Memory:      1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}

type fixture struct {
	store *memStore
	codec *jwt.Codec
	clock *fakeClock
	authn *Authenticator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clk := &fakeClock{t: time.UnixMilli(1_700_000_000_000)}
	codec, err := jwt.New("test-secret", time.Hour, jwt.WithClock(clk.Now))
	require.NoError(t, err)

	store := newMemStore()
	authn := NewAuthenticator(store, cheapHasher(), codec)
	authn.now = clk.Now

	return &fixture{store: store, codec: codec, clock: clk, authn: authn}
}

func (f *fixture) register(t *testing.T, email, secret string, mutate func(u *models.User)) *models.User {
	t.Helper()

	u := &models.User{Email: email, Username: email, Role: models.RoleUser, Enabled: true}
	if mutate != nil {
		mutate(u)
	}
	require.NoError(t, f.authn.Register(context.Background(), u, secret))
	return u
}
