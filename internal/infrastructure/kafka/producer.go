package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/amitb25/habit-backend-sub001/internal/config"
)

// Event types published to the notification pipeline.
const (
	EventTypeLevelUp         = "level_up"
	EventTypeStreakMilestone = "streak_milestone"
	EventTypeFreezeUsed      = "freeze_used"
)

// gamificationEvent is the JSON envelope for all published events.
type gamificationEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	ProfileID  string    `json:"profile_id"`
	HabitID    string    `json:"habit_id,omitempty"`
	Level      int       `json:"level,omitempty"`
	Streak     int       `json:"streak,omitempty"`
	Date       string    `json:"date,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Producer handles publishing gamification events to Kafka
type Producer struct {
	writer *kafka.Writer
}

// NewProducer creates a new Kafka producer
func NewProducer(cfg *config.KafkaConfig) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    10,
		BatchTimeout: 10 * time.Millisecond,
		Async:        true,
	}

	return &Producer{writer: writer}
}

func (p *Producer) PublishLevelUp(ctx context.Context, profileID uuid.UUID, level int) error {
	return p.publish(ctx, gamificationEvent{
		EventID:    uuid.New().String(),
		EventType:  EventTypeLevelUp,
		ProfileID:  profileID.String(),
		Level:      level,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Producer) PublishStreakMilestone(ctx context.Context, profileID, habitID uuid.UUID, streak int) error {
	return p.publish(ctx, gamificationEvent{
		EventID:    uuid.New().String(),
		EventType:  EventTypeStreakMilestone,
		ProfileID:  profileID.String(),
		HabitID:    habitID.String(),
		Streak:     streak,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Producer) PublishFreezeUsed(ctx context.Context, profileID, habitID uuid.UUID, date string) error {
	return p.publish(ctx, gamificationEvent{
		EventID:    uuid.New().String(),
		EventType:  EventTypeFreezeUsed,
		ProfileID:  profileID.String(),
		HabitID:    habitID.String(),
		Date:       date,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Producer) publish(ctx context.Context, event gamificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(event.ProfileID),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.EventType, err)
	}

	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
