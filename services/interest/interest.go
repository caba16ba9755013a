package interest

import (
	"errors"
	"fmt"
	"time"

	contentRepo "tripnest/database/repository/content"
	interestRepo "tripnest/database/repository/interest"
	"tripnest/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Typed errors the handlers map to HTTP statuses.
var (
	ErrAlreadyInterested = errors.New("user is already interested in this trip")
	ErrNotFound          = errors.New("trip interest not found")
	ErrNotOrganizer      = errors.New("only the trip organizer can settle an interest")
)

// InterestService registers and resolves a user's interest in a trip.
type InterestService interface {
	// ExpressInterest records interest; at most one per (user, trip) pair.
	ExpressInterest(userID, tripID, tripType string) (*models.TripInterest, error)
	ListByUser(userID string) ([]models.TripInterest, error)
	ListByTrip(tripID string) ([]models.TripInterest, error)
	// UpdateStatus lets the trip's organizer accept or reject an interest;
	// any other caller gets ErrNotOrganizer. An accepted trip-room interest
	// also takes a spot in the room.
	UpdateStatus(callerID, id, status string) (*models.TripInterest, error)
}

// DefaultInterestService is the production implementation.
type DefaultInterestService struct {
	Repo    interestRepo.TripInterestRepository
	Rooms   contentRepo.TripRoomRepository
	Stories contentRepo.StoryRepository
}

func (s *DefaultInterestService) ExpressInterest(userID, tripID, tripType string) (*models.TripInterest, error) {
	switch tripType {
	case models.TripTypeRoom, models.TripTypePost, models.TripTypePlan:
	default:
		return nil, fmt.Errorf("unknown trip type %q", tripType)
	}

	now := time.Now()
	in := &models.TripInterest{
		ID:        uuid.New().String(),
		UserID:    userID,
		TripID:    tripID,
		TripType:  tripType,
		Status:    models.InterestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(in); err != nil {
		// The unique compound index is the enforcer; map its rejection to
		// the user-facing error.
		if errors.Is(err, interestRepo.ErrDuplicate) {
			return nil, ErrAlreadyInterested
		}
		return nil, err
	}
	return in, nil
}

func (s *DefaultInterestService) ListByUser(userID string) ([]models.TripInterest, error) {
	return s.Repo.GetByUser(userID)
}

func (s *DefaultInterestService) ListByTrip(tripID string) ([]models.TripInterest, error) {
	return s.Repo.GetByTrip(tripID)
}

// organizerOf resolves which user may settle interests in the given trip.
// Travel plans are agent-owned and have no user organizer, so interests in
// them are never settled through this path.
func (s *DefaultInterestService) organizerOf(in *models.TripInterest) (string, error) {
	switch in.TripType {
	case models.TripTypeRoom:
		room, err := s.Rooms.GetByID(in.TripID)
		if err != nil {
			return "", err
		}
		return room.HostID, nil
	case models.TripTypePost:
		story, err := s.Stories.GetByID(in.TripID)
		if err != nil {
			return "", err
		}
		return story.AuthorID, nil
	default:
		return "", nil
	}
}

func (s *DefaultInterestService) UpdateStatus(callerID, id, status string) (*models.TripInterest, error) {
	switch status {
	case models.InterestPending, models.InterestAccepted, models.InterestRejected, models.InterestWaiting:
	default:
		return nil, fmt.Errorf("unknown interest status %q", status)
	}

	in, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, interestRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	organizer, err := s.organizerOf(in)
	if err != nil {
		if errors.Is(err, contentRepo.ErrRoomNotFound) || errors.Is(err, contentRepo.ErrStoryNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if organizer == "" || organizer != callerID {
		return nil, ErrNotOrganizer
	}

	updated, err := s.Repo.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, interestRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Accepting a trip-room interest consumes one of the room's spots.
	if status == models.InterestAccepted && updated.TripType == models.TripTypeRoom {
		if err := s.Rooms.TakeSpot(updated.TripID); err != nil {
			zap.L().Warn("failed to take spot for accepted interest",
				zap.String("interestId", updated.ID),
				zap.String("roomId", updated.TripID),
				zap.Error(err))
		}
	}
	return updated, nil
}
