package services

import (
	"github.com/MohammadaminAlbooyeh/diet-diary/logger"
	"github.com/MohammadaminAlbooyeh/diet-diary/models"

	"go.uber.org/zap"
)

const (
	EventEntryCreated = "entry.created"
	EventEntryDeleted = "entry.deleted"
)

type EntryEvent struct {
	Kind  string              `json:"kind"`
	Entry models.CalorieEntry `json:"entry"`
}

// EntryPublisher receives entry lifecycle events from EntryService.
type EntryPublisher interface {
	Publish(ev EntryEvent)
}

// EventBus publishes entry events to the realtime hub. A nil hub makes it a
// no-op, which is what the CLI and most tests use.
type EventBus struct {
	rt *RealtimeHub
}

func NewEventBus(rt *RealtimeHub) *EventBus {
	return &EventBus{rt: rt}
}

func (b *EventBus) Publish(ev EntryEvent) {
	if b == nil || b.rt == nil {
		return
	}
	if err := b.rt.Broadcast(ev); err != nil {
		logger.Warn("broadcast entry event",
			zap.String("kind", ev.Kind), zap.Uint("entry_id", ev.Entry.ID), zap.Error(err))
	}
}
