package content

import (
	"errors"
	"testing"

	contentRepo "tripnest/database/repository/content"
	"tripnest/models"
)

// Mock repositories for testing
type mockRoomRepo struct {
	rooms map[string]*models.TripRoom
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[string]*models.TripRoom)}
}

func (m *mockRoomRepo) Create(room *models.TripRoom) error {
	m.rooms[room.ID] = room
	return nil
}
func (m *mockRoomRepo) GetByID(id string) (*models.TripRoom, error) {
	if r, ok := m.rooms[id]; ok {
		return r, nil
	}
	return nil, contentRepo.ErrRoomNotFound
}
func (m *mockRoomRepo) GetOpen() ([]models.TripRoom, error) {
	var out []models.TripRoom
	for _, r := range m.rooms {
		if r.IsOpen {
			out = append(out, *r)
		}
	}
	return out, nil
}
func (m *mockRoomRepo) Join(roomID, userID string) (*models.TripRoom, error) {
	r, ok := m.rooms[roomID]
	if !ok {
		return nil, contentRepo.ErrRoomNotFound
	}
	for _, member := range r.Members {
		if member == userID {
			return nil, contentRepo.ErrAlreadyMember
		}
	}
	if !r.IsOpen || r.SpotsLeft <= 0 {
		return nil, contentRepo.ErrRoomFull
	}
	r.Members = append(r.Members, userID)
	r.SpotsLeft--
	return r, nil
}
func (m *mockRoomRepo) TakeSpot(roomID string) error { return nil }

type mockStoryRepo struct {
	stories map[string]*models.Story
}

func newMockStoryRepo() *mockStoryRepo {
	return &mockStoryRepo{stories: make(map[string]*models.Story)}
}

func (m *mockStoryRepo) Create(story *models.Story) error {
	m.stories[story.ID] = story
	return nil
}
func (m *mockStoryRepo) GetByID(id string) (*models.Story, error) {
	if s, ok := m.stories[id]; ok {
		return s, nil
	}
	return nil, contentRepo.ErrStoryNotFound
}
func (m *mockStoryRepo) GetRecent(limit int64) ([]models.Story, error) {
	var out []models.Story
	for _, s := range m.stories {
		out = append(out, *s)
	}
	return out, nil
}
func (m *mockStoryRepo) Like(id string) (*models.Story, error) {
	s, ok := m.stories[id]
	if !ok {
		return nil, contentRepo.ErrStoryNotFound
	}
	s.Likes++
	return s, nil
}

func newContentService() (*DefaultContentService, *mockRoomRepo, *mockStoryRepo) {
	rooms := newMockRoomRepo()
	stories := newMockStoryRepo()
	return &DefaultContentService{Rooms: rooms, Stories: stories}, rooms, stories
}

func roomRequest() CreateRoomRequest {
	return CreateRoomRequest{
		Title:       "Backpacking Himachal",
		Destination: "Manali",
		StartDate:   "2026-10-10",
		EndDate:     "2026-10-17",
		TotalSpots:  4,
	}
}

func TestCreateRoom_HostIsFirstMember(t *testing.T) {
	svc, _, _ := newContentService()

	room, err := svc.CreateRoom("host-1", roomRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(room.Members) != 1 || room.Members[0] != "host-1" {
		t.Errorf("expected host as sole member, got %v", room.Members)
	}
	if room.SpotsLeft != 4 {
		t.Errorf("expected 4 spots left, got %d", room.SpotsLeft)
	}
	if !room.IsOpen {
		t.Error("new room should be open")
	}
}

func TestCreateRoom_RejectsInvertedDates(t *testing.T) {
	svc, _, _ := newContentService()

	req := roomRequest()
	req.StartDate, req.EndDate = req.EndDate, req.StartDate
	if _, err := svc.CreateRoom("host-1", req); err == nil {
		t.Fatal("expected error when end date precedes start date")
	}
}

func TestJoinRoom_ConsumesSpotsAndRejectsRepeats(t *testing.T) {
	svc, _, _ := newContentService()

	room, err := svc.CreateRoom("host-1", roomRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	joined, err := svc.JoinRoom(room.ID, "user-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if joined.SpotsLeft != 3 {
		t.Errorf("expected 3 spots left after join, got %d", joined.SpotsLeft)
	}

	if _, err := svc.JoinRoom(room.ID, "user-2"); !errors.Is(err, contentRepo.ErrAlreadyMember) {
		t.Fatalf("expected ErrAlreadyMember, got %v", err)
	}
}

func TestJoinRoom_FullRoom(t *testing.T) {
	svc, rooms, _ := newContentService()

	room, err := svc.CreateRoom("host-1", roomRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rooms.rooms[room.ID].SpotsLeft = 0

	if _, err := svc.JoinRoom(room.ID, "user-2"); !errors.Is(err, contentRepo.ErrRoomFull) {
		t.Fatalf("expected ErrRoomFull, got %v", err)
	}
}

func TestLikeStory_IncrementsCounter(t *testing.T) {
	svc, _, _ := newContentService()

	story, err := svc.CreateStory("user-1", CreateStoryRequest{
		Title: "Sunrise at Triund",
		Body:  "Worth every step of the climb.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	liked, err := svc.LikeStory(story.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if liked.Likes != 1 {
		t.Errorf("expected 1 like, got %d", liked.Likes)
	}

	if _, err := svc.LikeStory("missing"); !errors.Is(err, contentRepo.ErrStoryNotFound) {
		t.Fatalf("expected ErrStoryNotFound, got %v", err)
	}
}
