package verification

import (
	"errors"
	"testing"

	verificationRepo "tripnest/database/repository/verification"
	"tripnest/models"
	"tripnest/services/storage"

	"go.mongodb.org/mongo-driver/bson"
)

// Mock repositories for testing
type mockUserRepo struct {
	getByIDFunc func(id string) (*models.User, error)
	updateFunc  func(id string, updateDoc bson.M) error
	appended    []models.Notification
}

func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(id)
	}
	return &models.User{ID: id, Name: "Test User"}, nil
}
func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (m *mockUserRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.User, error) {
	return nil, nil
}
func (m *mockUserRepo) Create(user *models.User) error { return nil }
func (m *mockUserRepo) Update(user *models.User) error { return nil }
func (m *mockUserRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	if m.updateFunc != nil {
		return m.updateFunc(id, updateDoc)
	}
	return nil
}
func (m *mockUserRepo) AppendNotification(userID string, n models.Notification) error {
	m.appended = append(m.appended, n)
	return nil
}

type mockRequestRepo struct {
	docs []models.VerificationRequest
}

func (m *mockRequestRepo) Create(req *models.VerificationRequest) error {
	m.docs = append(m.docs, *req)
	return nil
}
func (m *mockRequestRepo) GetByID(id string) (*models.VerificationRequest, error) {
	for i := range m.docs {
		if m.docs[i].ID == id {
			return &m.docs[i], nil
		}
	}
	return nil, verificationRepo.ErrNotFound
}
func (m *mockRequestRepo) GetByTarget(targetID string) ([]models.VerificationRequest, error) {
	var out []models.VerificationRequest
	for _, d := range m.docs {
		if d.TargetID == targetID {
			out = append(out, d)
		}
	}
	return out, nil
}
func (m *mockRequestRepo) GetByRequester(requesterID string) ([]models.VerificationRequest, error) {
	var out []models.VerificationRequest
	for _, d := range m.docs {
		if d.RequesterID == requesterID {
			out = append(out, d)
		}
	}
	return out, nil
}
func (m *mockRequestRepo) UpdateStatus(id, status string) (*models.VerificationRequest, error) {
	for i := range m.docs {
		if m.docs[i].ID == id && m.docs[i].Status == models.RequestPending {
			m.docs[i].Status = status
			return &m.docs[i], nil
		}
	}
	return nil, verificationRepo.ErrNotFound
}

func newRequestService(users *mockUserRepo, requests *mockRequestRepo) *DefaultVerificationService {
	return &DefaultVerificationService{
		Users:    users,
		Requests: requests,
		Provider: NewSimulatedProvider(),
	}
}

func TestRequestVerification_DuplicatesAllowed(t *testing.T) {
	users := &mockUserRepo{}
	requests := &mockRequestRepo{}
	svc := newRequestService(users, requests)

	first, err := svc.RequestVerification("owner-1", "user-2", "trip-1", models.TripTypeRoom, "please verify")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.RequestVerification("owner-1", "user-2", "trip-1", models.TripTypeRoom, "please verify")
	if err != nil {
		t.Fatalf("unexpected error on repeat request: %v", err)
	}

	// The same (owner, user, trip) triple yields two independent
	// pending requests.
	if first.ID == second.ID {
		t.Error("expected two distinct request documents")
	}
	if len(requests.docs) != 2 {
		t.Fatalf("expected 2 stored requests, got %d", len(requests.docs))
	}
	for _, d := range requests.docs {
		if d.Status != models.RequestPending {
			t.Errorf("expected pending status, got %q", d.Status)
		}
	}
}

func TestRequestVerification_NotifiesTarget(t *testing.T) {
	users := &mockUserRepo{}
	requests := &mockRequestRepo{}
	svc := newRequestService(users, requests)

	req, err := svc.RequestVerification("owner-1", "user-2", "trip-1", models.TripTypePost, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users.appended) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(users.appended))
	}
	if users.appended[0].Data["requestId"] != req.ID {
		t.Error("notification should reference the request")
	}
}

func TestRequestVerification_RejectsSelf(t *testing.T) {
	svc := newRequestService(&mockUserRepo{}, &mockRequestRepo{})
	if _, err := svc.RequestVerification("user-1", "user-1", "trip-1", models.TripTypeRoom, ""); err == nil {
		t.Fatal("expected error for self-request")
	}
}

func TestRequestVerification_RejectsUnknownTripType(t *testing.T) {
	svc := newRequestService(&mockUserRepo{}, &mockRequestRepo{})
	if _, err := svc.RequestVerification("user-1", "user-2", "trip-1", "cruise", ""); err == nil {
		t.Fatal("expected error for unknown trip type")
	}
}

func TestRespondToRequest_MutatesSingleDocument(t *testing.T) {
	users := &mockUserRepo{}
	requests := &mockRequestRepo{}
	svc := newRequestService(users, requests)

	req, err := svc.RequestVerification("owner-1", "user-2", "trip-1", models.TripTypeRoom, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.RespondToRequest(req.ID, "user-2", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.RequestApproved {
		t.Errorf("expected approved, got %q", updated.Status)
	}

	// Both views read the same document, so both see the new status.
	incoming, _ := svc.RequestsFor("user-2")
	outgoing, _ := svc.RequestsBy("owner-1")
	if len(incoming) != 1 || incoming[0].Status != models.RequestApproved {
		t.Error("target's view should show the approved status")
	}
	if len(outgoing) != 1 || outgoing[0].Status != models.RequestApproved {
		t.Error("requester's view should show the approved status")
	}

	// A second response hits a non-pending request.
	if _, err := svc.RespondToRequest(req.ID, "user-2", false); err == nil {
		t.Error("expected error when responding to a settled request")
	}
}

func TestRespondToRequest_OnlyTargetMayRespond(t *testing.T) {
	users := &mockUserRepo{}
	requests := &mockRequestRepo{}
	svc := newRequestService(users, requests)

	req, err := svc.RequestVerification("owner-1", "user-2", "trip-1", models.TripTypeRoom, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Neither the requester nor a bystander can answer for the target.
	for _, responder := range []string{"owner-1", "intruder-9"} {
		if _, err := svc.RespondToRequest(req.ID, responder, true); !errors.Is(err, ErrNotTarget) {
			t.Fatalf("responder %q: expected ErrNotTarget, got %v", responder, err)
		}
	}
	if requests.docs[0].Status != models.RequestPending {
		t.Errorf("request should remain pending, got %q", requests.docs[0].Status)
	}

	if _, err := svc.RespondToRequest(req.ID, "user-2", true); err != nil {
		t.Fatalf("target's own response failed: %v", err)
	}
}

func TestUploadAadhar_MasksAndVerifies(t *testing.T) {
	var patched bson.M
	users := &mockUserRepo{
		updateFunc: func(id string, updateDoc bson.M) error {
			patched = updateDoc
			return nil
		},
		getByIDFunc: func(id string) (*models.User, error) {
			return &models.User{ID: id, Name: "Ravi Kumar"}, nil
		},
	}
	svc := &DefaultVerificationService{
		Users:    users,
		Requests: &mockRequestRepo{},
		Provider: NewSimulatedProvider(),
		Storage:  storage.NewPassthroughStorage(),
	}

	if _, err := svc.UploadAadhar("user-1", "123456789016", "data:image/jpeg;base64,/9j/4AAQ"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set, ok := patched["$set"].(bson.M)
	if !ok {
		t.Fatal("expected a $set patch on the user document")
	}
	if set["isVerified"] != true {
		t.Error("expected isVerified true")
	}
	if set["aadhar.maskedNumber"] != "XXXXXXXX9016" {
		t.Errorf("expected masked number, got %v", set["aadhar.maskedNumber"])
	}
}

func TestUploadAadhar_RejectsBadChecksum(t *testing.T) {
	svc := &DefaultVerificationService{
		Users:    &mockUserRepo{},
		Requests: &mockRequestRepo{},
		Provider: NewSimulatedProvider(),
		Storage:  storage.NewPassthroughStorage(),
	}

	if _, err := svc.UploadAadhar("user-1", "123456789012", "data:image/png;base64,abc"); err == nil {
		t.Fatal("expected checksum rejection")
	}
}
