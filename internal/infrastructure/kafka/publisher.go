package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	TopicSettlementEvents = "settlement-events"
	TopicRateSyncEvents   = "ratesync-events"
)

type SettlementEvent struct {
	SettlementID string    `json:"settlement_id"`
	ClubID       string    `json:"club_id"`
	WeekStart    time.Time `json:"week_start"`
	Status       string    `json:"status"`
	Subclubs     int       `json:"subclubs"`
}

type RateSyncEvent struct {
	SettlementID       string `json:"settlement_id"`
	AgentRatesUpdated  int    `json:"agent_rates_updated"`
	PlayerRatesUpdated int    `json:"player_rates_updated"`
	Failed             int    `json:"failed"`
	DurationMS         int64  `json:"duration_ms"`
}

type SettlementPublisher struct {
	writer *kafka.Writer
}

func NewSettlementPublisher(brokers []string) *SettlementPublisher {
	return &SettlementPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *SettlementPublisher) publish(topic, key string, event any) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	})
}

func (p *SettlementPublisher) PublishSettlementFinalized(event SettlementEvent) error {
	return p.publish(TopicSettlementEvents, event.SettlementID, event)
}

func (p *SettlementPublisher) PublishRateSyncCompleted(event RateSyncEvent) error {
	return p.publish(TopicRateSyncEvents, event.SettlementID, event)
}

// Stats snapshots and resets the writer's counters.
func (p *SettlementPublisher) Stats() kafka.WriterStats {
	return p.writer.Stats()
}

func (p *SettlementPublisher) Close() error {
	return p.writer.Close()
}
