package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tripnest/config"
	userRepo "tripnest/database/repository/user"
	"tripnest/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeTravelReminder = "reminder:travel"

// travelReminderPayload is the task body for a scheduled travel reminder.
type travelReminderPayload struct {
	BookingID  string    `json:"bookingId"`
	CustomerID string    `json:"customerId"`
	PlanID     string    `json:"planId"`
	TravelDate time.Time `json:"travelDate"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderScheduler enqueues travel reminders on the asynq queue. It
// implements the booking service's ReminderScheduler interface.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates the asynq client used to enqueue reminders.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleTravelReminder schedules a reminder 24 hours before travel. A
// travel date closer than that gets the reminder immediately.
func (s *ReminderScheduler) ScheduleTravelReminder(b *models.Booking) error {
	payload, err := json.Marshal(travelReminderPayload{
		BookingID:  b.ID,
		CustomerID: b.CustomerID,
		PlanID:     b.PlanID,
		TravelDate: b.TravelDate,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeTravelReminder, payload)
	fireAt := b.TravelDate.Add(-24 * time.Hour)
	if fireAt.Before(time.Now()) {
		_, err = s.client.Enqueue(task)
	} else {
		_, err = s.client.Enqueue(task, asynq.ProcessAt(fireAt))
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue travel reminder: %w", err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(users userRepo.UserRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeTravelReminder, handleTravelReminder(users))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

func handleTravelReminder(users userRepo.UserRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p travelReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderWorker] invalid payload: %v", err)
			return err
		}

		notif := models.Notification{
			ID:      uuid.New().String(),
			Type:    "travel_reminder",
			Message: fmt.Sprintf("Your trip starts on %s. Get packing!", p.TravelDate.Format("Jan 2, 2006")),
			Data: map[string]any{
				"bookingId": p.BookingID,
				"planId":    p.PlanID,
			},
			CreatedAt: time.Now(),
		}
		return users.AppendNotification(p.CustomerID, notif)
	}
}
