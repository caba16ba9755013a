package agent

import (
	"errors"
	"testing"

	agentRepo "tripnest/database/repository/agent"
	"tripnest/models"
	"tripnest/services/verification"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Mock repository for testing
type mockAgentRepo struct {
	getByEmailFunc    func(email string) (*models.TravelAgent, error)
	getProjectionFunc func(email string, projection bson.M) (*models.TravelAgent, error)
	createFunc        func(agent *models.TravelAgent) error
	created           *models.TravelAgent
}

func (m *mockAgentRepo) GetByID(id string) (*models.TravelAgent, error) {
	return nil, agentRepo.ErrNotFound
}
func (m *mockAgentRepo) GetByEmail(email string) (*models.TravelAgent, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(email)
	}
	return nil, agentRepo.ErrNotFound
}
func (m *mockAgentRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.TravelAgent, error) {
	if m.getProjectionFunc != nil {
		return m.getProjectionFunc(email, projection)
	}
	return nil, nil
}
func (m *mockAgentRepo) Create(agent *models.TravelAgent) error {
	m.created = agent
	if m.createFunc != nil {
		return m.createFunc(agent)
	}
	return nil
}
func (m *mockAgentRepo) Update(agent *models.TravelAgent) error               { return nil }
func (m *mockAgentRepo) UpdateWithDocument(id string, updateDoc bson.M) error { return nil }
func (m *mockAgentRepo) RecordSale(agentID string, amount float64) error      { return nil }

func newAgentService(repo *mockAgentRepo) *DefaultAgentService {
	return &DefaultAgentService{
		Repo:     repo,
		Identity: verification.NewSimulatedProvider(),
	}
}

func registrationInput() (models.TravelAgent, string) {
	return models.TravelAgent{
		Name:     "Asha Travels",
		Email:    "asha@example.com",
		Password: "sup3r-secret",
		Phone:    "+919812345678",
		Verification: models.AgentVerification{
			DocumentRef: "data:image/png;base64,iVBORw0KGgo=",
		},
	}, "123456789016" // checksum-valid twelve digits
}

func TestRegisterAgent_VerifiedAndApprovedImmediately(t *testing.T) {
	repo := &mockAgentRepo{}
	svc := newAgentService(repo)

	in, govID := registrationInput()
	resp, err := svc.RegisterAgent(in, govID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resp.IsVerified || !resp.IsApproved {
		t.Error("expected agent to be verified and approved after registration")
	}
	if resp.Status != models.AgentApproved {
		t.Errorf("expected status %q, got %q", models.AgentApproved, resp.Status)
	}
	if resp.Token == "" {
		t.Error("expected an auth token in the response")
	}

	if repo.created == nil {
		t.Fatal("expected agent to be persisted")
	}
	if repo.created.Verification.MaskedGovID != "XXXXXXXX9016" {
		t.Errorf("expected masked gov ID, got %q", repo.created.Verification.MaskedGovID)
	}
	if repo.created.Password != "" {
		t.Error("plaintext password must not survive registration")
	}
	if bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("sup3r-secret")) != nil {
		t.Error("stored hash should match the original password")
	}
}

func TestRegisterAgent_RejectsBadChecksum(t *testing.T) {
	svc := newAgentService(&mockAgentRepo{})

	in, _ := registrationInput()
	if _, err := svc.RegisterAgent(in, "123456789012"); err == nil {
		t.Fatal("expected rejection for a checksum-invalid ID number")
	}
}

func TestRegisterAgent_RejectsShortID(t *testing.T) {
	svc := newAgentService(&mockAgentRepo{})

	in, _ := registrationInput()
	if _, err := svc.RegisterAgent(in, "12345"); err == nil {
		t.Fatal("expected rejection for a short ID number")
	}
}

func TestRegisterAgent_RequiresDocument(t *testing.T) {
	svc := newAgentService(&mockAgentRepo{})

	in, govID := registrationInput()
	in.Verification.DocumentRef = ""
	if _, err := svc.RegisterAgent(in, govID); err == nil {
		t.Fatal("expected rejection when no identity document is supplied")
	}
}

func TestRegisterAgent_EmailTaken(t *testing.T) {
	repo := &mockAgentRepo{
		getProjectionFunc: func(email string, projection bson.M) (*models.TravelAgent, error) {
			return &models.TravelAgent{ID: "agent-1"}, nil
		},
	}
	svc := newAgentService(repo)

	in, govID := registrationInput()
	_, err := svc.RegisterAgent(in, govID)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticateAgent_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	repo := &mockAgentRepo{
		getByEmailFunc: func(email string) (*models.TravelAgent, error) {
			return &models.TravelAgent{
				ID:           "agent-1",
				Email:        email,
				PasswordHash: string(hash),
			}, nil
		},
	}
	svc := newAgentService(repo)

	if _, err := svc.AuthenticateAgent("asha@example.com", "wrong-password"); !errors.Is(err, ErrBadCredential) {
		t.Fatalf("expected ErrBadCredential, got %v", err)
	}
}

func TestAuthenticateAgent_UnknownEmail(t *testing.T) {
	svc := newAgentService(&mockAgentRepo{})

	if _, err := svc.AuthenticateAgent("nobody@example.com", "whatever"); !errors.Is(err, ErrBadCredential) {
		t.Fatalf("expected ErrBadCredential, got %v", err)
	}
}
