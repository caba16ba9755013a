package user

import (
	"errors"
	"testing"

	userRepo "tripnest/database/repository/user"
	"tripnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Mock repository for testing
type mockUserRepo struct {
	getByEmailFunc    func(email string) (*models.User, error)
	getProjectionFunc func(email string, projection bson.M) (*models.User, error)
	created           *models.User
}

func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	return nil, userRepo.ErrNotFound
}
func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(email)
	}
	return nil, userRepo.ErrNotFound
}
func (m *mockUserRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.User, error) {
	if m.getProjectionFunc != nil {
		return m.getProjectionFunc(email, projection)
	}
	return nil, nil
}
func (m *mockUserRepo) Create(u *models.User) error {
	m.created = u
	return nil
}
func (m *mockUserRepo) Update(u *models.User) error { return nil }
func (m *mockUserRepo) UpdateWithDocument(id string, updateDoc bson.M) error { return nil }
func (m *mockUserRepo) AppendNotification(userID string, n models.Notification) error {
	return nil
}

func TestRegisterUser_HashesPassword(t *testing.T) {
	repo := &mockUserRepo{}
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.RegisterUser(models.User{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "long-enough-password",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected an auth token in the response")
	}
	if repo.created == nil {
		t.Fatal("expected user to be persisted")
	}
	if repo.created.Password != "" {
		t.Error("plaintext password must not survive registration")
	}
	if bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("long-enough-password")) != nil {
		t.Error("stored hash should match the original password")
	}
}

func TestRegisterUser_ShortPassword(t *testing.T) {
	svc := &DefaultUserService{Repo: &mockUserRepo{}}

	_, err := svc.RegisterUser(models.User{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "short",
	})
	if err == nil {
		t.Fatal("expected rejection for a short password")
	}
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	repo := &mockUserRepo{
		getProjectionFunc: func(email string, projection bson.M) (*models.User, error) {
			return &models.User{ID: "user-1"}, nil
		},
	}
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.RegisterUser(models.User{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "long-enough-password",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticateUser_BadCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	repo := &mockUserRepo{
		getByEmailFunc: func(email string) (*models.User, error) {
			return &models.User{ID: "user-1", Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := &DefaultUserService{Repo: repo}

	if _, err := svc.AuthenticateUser("ravi@example.com", "wrong"); !errors.Is(err, ErrBadCredential) {
		t.Fatalf("expected ErrBadCredential, got %v", err)
	}

	if _, err := (&DefaultUserService{Repo: &mockUserRepo{}}).AuthenticateUser("nobody@example.com", "x"); !errors.Is(err, ErrBadCredential) {
		t.Fatalf("expected ErrBadCredential for unknown email, got %v", err)
	}
}
