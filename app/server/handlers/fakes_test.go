package handlers

import (
	"context"
	"habit-tracker/app/server/models"
	"habit-tracker/app/server/repository"
	"sort"
	"sync"
)

type memUsers struct {
	mu     sync.Mutex
	byID   map[uint]*models.User
	nextID uint
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[uint]*models.User{}}
}

func (s *memUsers) findEmail(email string) *models.User {
	for _, u := range s.byID {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (s *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u := s.findEmail(email); u != nil {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findEmail(email) != nil, nil
}

func (s *memUsers) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findEmail(user.Email) != nil {
		return repository.ErrAlreadyExists
	}
	s.nextID++
	user.ID = s.nextID
	user.Profile.UserID = user.ID
	cp := *user
	s.byID[user.ID] = &cp
	return nil
}

func (s *memUsers) FindByID(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *memUsers) Update(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	u.Username = user.Username
	u.Role = user.Role
	u.Enabled = user.Enabled
	u.AccountLocked = user.AccountLocked
	return nil
}

func (s *memUsers) UpdateProfile(_ context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[profile.UserID]
	if !ok {
		return repository.ErrNotFound
	}
	u.Profile.FirstName = profile.FirstName
	u.Profile.LastName = profile.LastName
	u.Profile.Bio = profile.Bio
	return nil
}

func (s *memUsers) DeleteByID(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

func (s *memUsers) List(_ context.Context, offset int, limit int) ([]models.User, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := []models.User{}
	for _, u := range s.byID {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	if offset > len(all) {
		offset = len(all)
	}
	all = all[offset:]
	if limit >= 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

type memHabits struct {
	mu     sync.Mutex
	byID   map[uint]*models.Habit
	users  *memUsers
	nextID uint
}

func (s *memHabits) Create(ctx context.Context, habit *models.Habit) error {
	if _, err := s.users.FindByID(ctx, habit.UserID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	habit.ID = s.nextID
	cp := *habit
	s.byID[habit.ID] = &cp
	return nil
}

func (s *memHabits) FindByID(_ context.Context, id uint) (*models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.byID[id]; ok {
		cp := *h
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *memHabits) ListByUser(_ context.Context, userID uint) ([]models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := []models.Habit{}
	for _, h := range s.byID {
		if h.UserID == userID {
			res = append(res, *h)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (s *memHabits) DeleteByID(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

type memCheckIns struct {
	mu     sync.Mutex
	byID   map[uint]*models.CheckIn
	nextID uint
}

func (s *memCheckIns) Create(_ context.Context, checkIn *models.CheckIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	checkIn.ID = s.nextID
	cp := *checkIn
	s.byID[checkIn.ID] = &cp
	return nil
}

func (s *memCheckIns) FindByID(_ context.Context, id uint) (*models.CheckIn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ci, ok := s.byID[id]; ok {
		cp := *ci
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *memCheckIns) ListByHabit(_ context.Context, habitID uint) ([]models.CheckIn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := []models.CheckIn{}
	for _, ci := range s.byID {
		if ci.HabitID == habitID {
			res = append(res, *ci)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Date.Before(res[j].Date) })
	return res, nil
}

func (s *memCheckIns) DeleteByID(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

// recordingCache 记录被清理的邮箱
type recordingCache struct {
	mu          sync.Mutex
	invalidated []string
}

func (r *recordingCache) Invalidate(_ context.Context, email string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidated = append(r.invalidated, email)
}
