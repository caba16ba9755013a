package contentRepo

import (
	"errors"

	"tripnest/models"
)

var (
	// ErrRoomNotFound is returned when no trip room matches the given ID.
	ErrRoomNotFound = errors.New("trip room not found")
	// ErrRoomFull signals that a join was rejected because no spots remain
	// or the room is closed.
	ErrRoomFull = errors.New("trip room has no spots left")
	// ErrAlreadyMember signals the user already joined the room.
	ErrAlreadyMember = errors.New("user is already a member of this trip room")
	// ErrStoryNotFound is returned when no story matches the given ID.
	ErrStoryNotFound = errors.New("story not found")
)

// TripRoomRepository defines methods for trip room data access.
type TripRoomRepository interface {
	Create(room *models.TripRoom) error
	GetByID(id string) (*models.TripRoom, error)
	GetOpen() ([]models.TripRoom, error)
	// Join atomically appends the user to the member list and decrements
	// spotsLeft, guarded so a full room never goes negative and a member
	// is never added twice.
	Join(roomID, userID string) (*models.TripRoom, error)
	// TakeSpot decrements spotsLeft without adding a member (used when an
	// interest is accepted by the host).
	TakeSpot(roomID string) error
}

// StoryRepository defines methods for story data access.
type StoryRepository interface {
	Create(story *models.Story) error
	GetByID(id string) (*models.Story, error)
	GetRecent(limit int64) ([]models.Story, error)
	// Like increments the story's like counter.
	Like(id string) (*models.Story, error)
}
