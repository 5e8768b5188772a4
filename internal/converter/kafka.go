package converter

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) PartEventToPayload(e model.PartEvent) ([]byte, error) {
	fields := map[string]any{
		"event_id":    e.EventID.String(),
		"type":        string(e.Type),
		"part_id":     e.PartID.String(),
		"occurred_at": e.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
	if e.Type == model.PartCreated {
		fields["sku"] = e.SKU
		fields["category"] = string(e.Category)
		fields["price"] = e.Price.StringFixed(2)
	}

	pb, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build part event struct: %w", err)
	}

	payload, err := proto.Marshal(pb)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal protobuf: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) PayloadToPartEvent(data []byte) (model.PartEvent, error) {
	var pb structpb.Struct
	if err := proto.Unmarshal(data, &pb); err != nil {
		return model.PartEvent{}, fmt.Errorf("failed to unmarshal protobuf: %w", err)
	}

	f := pb.GetFields()
	str := func(key string) string { return f[key].GetStringValue() }

	eventID, err := uuid.Parse(str("event_id"))
	if err != nil {
		return model.PartEvent{}, fmt.Errorf("event_id: %w", err)
	}
	partID, err := uuid.Parse(str("part_id"))
	if err != nil {
		return model.PartEvent{}, fmt.Errorf("part_id: %w", err)
	}
	occurredAt, err := time.Parse(time.RFC3339Nano, str("occurred_at"))
	if err != nil {
		return model.PartEvent{}, fmt.Errorf("occurred_at: %w", err)
	}

	e := model.PartEvent{
		EventID:    eventID,
		Type:       model.PartEventType(str("type")),
		PartID:     partID,
		SKU:        str("sku"),
		Category:   model.Category(str("category")),
		OccurredAt: occurredAt,
	}
	if p := str("price"); p != "" {
		if e.Price, err = decimal.NewFromString(p); err != nil {
			return model.PartEvent{}, fmt.Errorf("price: %w", err)
		}
	}

	return e, nil
}
