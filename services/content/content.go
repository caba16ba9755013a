package content

import (
	"fmt"
	"time"

	contentRepo "tripnest/database/repository/content"
	"tripnest/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// CreateRoomRequest carries a new trip room's fields.
type CreateRoomRequest struct {
	Title       string `json:"title" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Description string `json:"description"`
	StartDate   string `json:"startDate" validate:"required"` // "2006-01-02"
	EndDate     string `json:"endDate" validate:"required"`
	TotalSpots  int    `json:"totalSpots" validate:"required,min=1"`
}

// CreateStoryRequest carries a new travel story's fields.
type CreateStoryRequest struct {
	Title       string   `json:"title" validate:"required"`
	Body        string   `json:"body" validate:"required"`
	Destination string   `json:"destination"`
	Images      []string `json:"images"`
}

// ContentService manages trip rooms and travel stories.
type ContentService interface {
	CreateRoom(hostID string, req CreateRoomRequest) (*models.TripRoom, error)
	GetRoom(id string) (*models.TripRoom, error)
	ListOpenRooms() ([]models.TripRoom, error)
	JoinRoom(roomID, userID string) (*models.TripRoom, error)

	CreateStory(authorID string, req CreateStoryRequest) (*models.Story, error)
	ListStories(limit int64) ([]models.Story, error)
	LikeStory(id string) (*models.Story, error)
}

// DefaultContentService is the production implementation.
type DefaultContentService struct {
	Rooms   contentRepo.TripRoomRepository
	Stories contentRepo.StoryRepository
	Feed    *FeedCache // optional
}

func (s *DefaultContentService) CreateRoom(hostID string, req CreateRoomRequest) (*models.TripRoom, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid trip room request: %w", err)
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: expected YYYY-MM-DD", req.StartDate)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: expected YYYY-MM-DD", req.EndDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date cannot precede start date")
	}

	now := time.Now()
	room := &models.TripRoom{
		ID:          uuid.New().String(),
		HostID:      hostID,
		Title:       req.Title,
		Destination: req.Destination,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		TotalSpots:  req.TotalSpots,
		SpotsLeft:   req.TotalSpots,
		Members:     []string{hostID},
		IsOpen:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Rooms.Create(room); err != nil {
		return nil, err
	}
	s.invalidateFeed()
	return room, nil
}

func (s *DefaultContentService) GetRoom(id string) (*models.TripRoom, error) {
	return s.Rooms.GetByID(id)
}

// ListOpenRooms serves the trip room feed, cached with a short TTL.
func (s *DefaultContentService) ListOpenRooms() ([]models.TripRoom, error) {
	if s.Feed != nil {
		if rooms, ok := s.Feed.GetRooms(); ok {
			return rooms, nil
		}
	}
	rooms, err := s.Rooms.GetOpen()
	if err != nil {
		return nil, err
	}
	if s.Feed != nil {
		s.Feed.SetRooms(rooms)
	}
	return rooms, nil
}

func (s *DefaultContentService) JoinRoom(roomID, userID string) (*models.TripRoom, error) {
	room, err := s.Rooms.Join(roomID, userID)
	if err != nil {
		return nil, err
	}
	s.invalidateFeed()
	return room, nil
}

func (s *DefaultContentService) CreateStory(authorID string, req CreateStoryRequest) (*models.Story, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid story request: %w", err)
	}
	now := time.Now()
	story := &models.Story{
		ID:          uuid.New().String(),
		AuthorID:    authorID,
		Title:       req.Title,
		Body:        req.Body,
		Destination: req.Destination,
		Images:      req.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Stories.Create(story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *DefaultContentService) ListStories(limit int64) ([]models.Story, error) {
	return s.Stories.GetRecent(limit)
}

func (s *DefaultContentService) LikeStory(id string) (*models.Story, error) {
	return s.Stories.Like(id)
}

func (s *DefaultContentService) invalidateFeed() {
	if s.Feed != nil {
		s.Feed.Invalidate()
	}
}
