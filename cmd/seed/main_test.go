package main

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"askhub/internal/model"
)

// fakeUserRepo is an in-memory repository.UserRepository for seeder tests.
type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByName(ctx context.Context, name string) (*model.User, error) {
	for _, user := range r.users {
		if user.Name == name {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) List(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) ListExperts(ctx context.Context) ([]model.User, error) {
	var out []model.User
	for _, user := range r.users {
		if user.Expert {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) SetExpert(ctx context.Context, id uuid.UUID) error {
	if user, ok := r.users[id]; ok {
		user.Expert = true
	}
	return nil
}

func (r *fakeUserRepo) SetAdmin(ctx context.Context, id uuid.UUID) error {
	if user, ok := r.users[id]; ok {
		user.Admin = true
	}
	return nil
}

func TestSeedAdmin_CreatesAccount(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()

	require.NoError(t, seedAdmin(ctx, users, "root", "root-password"))

	admin, err := users.FindByName(ctx, "root")
	require.NoError(t, err)
	assert.True(t, admin.Admin)
	assert.False(t, admin.Expert)
	assert.NotEqual(t, "root-password", admin.PasswordHash, "password is stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("root-password")))
}

func TestSeedAdmin_Idempotent(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()

	require.NoError(t, seedAdmin(ctx, users, "root", "root-password"))
	first, err := users.FindByName(ctx, "root")
	require.NoError(t, err)
	firstHash := first.PasswordHash

	// A second run changes nothing, even with a different password.
	require.NoError(t, seedAdmin(ctx, users, "root", "other-password"))

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	again, err := users.FindByName(ctx, "root")
	require.NoError(t, err)
	assert.True(t, again.Admin)
	assert.Equal(t, firstHash, again.PasswordHash)
}

func TestSeedAdmin_GrantsToExistingUser(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()

	existingHash, _ := bcrypt.GenerateFromPassword([]byte("their-own-password"), bcryptCost)
	require.NoError(t, users.Create(ctx, &model.User{
		Name:         "root",
		PasswordHash: string(existingHash),
	}))

	require.NoError(t, seedAdmin(ctx, users, "root", "seed-password"))

	admin, err := users.FindByName(ctx, "root")
	require.NoError(t, err)
	assert.True(t, admin.Admin)
	// The existing record keeps its own password; the seed password is
	// never written over it.
	assert.Equal(t, string(existingHash), admin.PasswordHash)

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
