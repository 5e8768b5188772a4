package catproducer

import (
	"context"
	"fmt"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
	"github.com/MadeByDW91/gokartpartpicker/platform/kafka"
)

type Converter interface {
	PartEventToPayload(e model.PartEvent) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewCatalogProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendPartEvent(ctx context.Context, event model.PartEvent) error {
	payload, err := s.conv.PartEventToPayload(event)
	if err != nil {
		return fmt.Errorf("converter part_event_to_proto error: %w", err)
	}

	if err := s.producer.Send(ctx, event.PartID[:], payload); err != nil {
		return fmt.Errorf("producer to %s topic error: %w", event.Type, err)
	}

	return nil
}

type nopSender struct{}

// NewNopSender is used when event publishing is disabled.
func NewNopSender() nopSender { return nopSender{} }

func (nopSender) SendPartEvent(context.Context, model.PartEvent) error { return nil }
