package user

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository is an in-memory Repository keyed by id and email.
type fakeRepository struct {
	byID    map[string]*User
	byEmail map[string]*User
	nextID  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:    make(map[string]*User),
		byEmail: make(map[string]*User),
	}
}

func (f *fakeRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepository) Create(_ context.Context, u *User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return ErrEmailAlreadyUsed
	}
	f.nextID++
	u.ID = "user-" + strconv.Itoa(f.nextID)
	u.CreatedAt = time.Now().UTC()
	copied := *u
	f.byID[u.ID] = &copied
	f.byEmail[u.Email] = &copied
	return nil
}

func (f *fakeRepository) UpdateLastLogin(_ context.Context, id string, t time.Time) error {
	if u, ok := f.byID[id]; ok {
		u.LastLoginAt = &t
	}
	return nil
}

func (f *fakeRepository) List(_ context.Context, _ Filter) ([]*User, int, error) {
	var out []*User
	for _, u := range f.byID {
		copied := *u
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (f *fakeRepository) Update(_ context.Context, u *User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return ErrNotFound
	}
	copied := *u
	f.byID[u.ID] = &copied
	f.byEmail[u.Email] = &copied
	return nil
}

// fakeHasher avoids paying bcrypt cost in unit tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return ErrInvalidCredentials
	}
	return nil
}

func TestRegister(t *testing.T) {
	t.Run("Creates a customer", func(t *testing.T) {
		svc := NewService(newFakeRepository(), fakeHasher{})

		u, err := svc.Register(context.Background(), RegisterRequest{
			Email:     "  Guest@Example.COM ",
			Password:  "supersecret",
			FirstName: " Alex ",
			LastName:  "Kim",
		})
		require.NoError(t, err)

		assert.Equal(t, "guest@example.com", u.Email)
		assert.Equal(t, "Alex", u.FirstName)
		assert.Equal(t, RoleCustomer, u.Role)
		assert.Equal(t, "hashed:supersecret", u.PasswordHash)
		assert.NotEmpty(t, u.ID)
	})

	t.Run("Rejects duplicate email", func(t *testing.T) {
		svc := NewService(newFakeRepository(), fakeHasher{})

		req := RegisterRequest{Email: "guest@example.com", Password: "supersecret"}
		_, err := svc.Register(context.Background(), req)
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})

	t.Run("Rejects short password", func(t *testing.T) {
		svc := NewService(newFakeRepository(), fakeHasher{})

		_, err := svc.Register(context.Background(), RegisterRequest{
			Email:    "guest@example.com",
			Password: "short",
		})
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("Rejects empty email", func(t *testing.T) {
		svc := NewService(newFakeRepository(), fakeHasher{})

		_, err := svc.Register(context.Background(), RegisterRequest{
			Email:    "   ",
			Password: "supersecret",
		})
		assert.ErrorIs(t, err, ErrEmailRequired)
	})
}

func TestLogin(t *testing.T) {
	newRegistered := func(t *testing.T) (Service, *fakeRepository) {
		t.Helper()
		repo := newFakeRepository()
		svc := NewService(repo, fakeHasher{})
		_, err := svc.Register(context.Background(), RegisterRequest{
			Email:    "guest@example.com",
			Password: "supersecret",
		})
		require.NoError(t, err)
		return svc, repo
	}

	t.Run("Valid credentials", func(t *testing.T) {
		svc, repo := newRegistered(t)

		u, err := svc.Login(context.Background(), "Guest@Example.com", "supersecret")
		require.NoError(t, err)
		assert.Equal(t, "guest@example.com", u.Email)

		stored := repo.byEmail["guest@example.com"]
		assert.NotNil(t, stored.LastLoginAt)
	})

	t.Run("Wrong password", func(t *testing.T) {
		svc, _ := newRegistered(t)

		_, err := svc.Login(context.Background(), "guest@example.com", "wrongpass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		svc, _ := newRegistered(t)

		_, err := svc.Login(context.Background(), "nobody@example.com", "supersecret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdate(t *testing.T) {
	newRegistered := func(t *testing.T) (Service, string) {
		t.Helper()
		svc := NewService(newFakeRepository(), fakeHasher{})
		u, err := svc.Register(context.Background(), RegisterRequest{
			Email:    "guest@example.com",
			Password: "supersecret",
		})
		require.NoError(t, err)
		return svc, u.ID
	}

	t.Run("Partial update keeps other fields", func(t *testing.T) {
		svc, id := newRegistered(t)

		first := "Dana"
		prefs := []string{"late_checkout", "high_floor"}
		u, err := svc.Update(context.Background(), id, UpdateRequest{
			FirstName:   &first,
			Preferences: &prefs,
		})
		require.NoError(t, err)

		assert.Equal(t, "Dana", u.FirstName)
		assert.Equal(t, prefs, u.Preferences)
		assert.Equal(t, RoleCustomer, u.Role)
	})

	t.Run("Role change validates the role", func(t *testing.T) {
		svc, id := newRegistered(t)

		bad := "superuser"
		_, err := svc.Update(context.Background(), id, UpdateRequest{Role: &bad})
		require.Error(t, err)

		admin := string(RoleAdmin)
		u, err := svc.Update(context.Background(), id, UpdateRequest{Role: &admin})
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, u.Role)
	})

	t.Run("Unknown user", func(t *testing.T) {
		svc, _ := newRegistered(t)

		first := "Dana"
		_, err := svc.Update(context.Background(), "nope", UpdateRequest{FirstName: &first})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
