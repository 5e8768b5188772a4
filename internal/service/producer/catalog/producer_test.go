package catproducer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MadeByDW91/gokartpartpicker/internal/converter"
	"github.com/MadeByDW91/gokartpartpicker/internal/model"
)

type recordingProducer struct {
	key, value []byte
	err        error
}

func (p *recordingProducer) Send(_ context.Context, key, value []byte) error {
	p.key, p.value = key, value
	return p.err
}

func TestSendPartEvent(t *testing.T) {
	t.Parallel()

	conv := converter.NewKafkaConverter()
	event := model.PartEvent{
		EventID:    uuid.New(),
		Type:       model.PartCreated,
		PartID:     uuid.Must(uuid.NewV7()),
		SKU:        "PRED212",
		Category:   model.CategoryEngine,
		Price:      decimal.RequireFromString("149.99"),
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("payload is keyed by part id and decodes back", func(t *testing.T) {
		t.Parallel()

		p := &recordingProducer{}
		require.NoError(t, NewCatalogProducer(p, conv).SendPartEvent(context.Background(), event))

		assert.Equal(t, event.PartID[:], p.key)

		got, err := conv.PayloadToPartEvent(p.value)
		require.NoError(t, err)
		assert.Equal(t, event.EventID, got.EventID)
		assert.Equal(t, event.SKU, got.SKU)
		assert.True(t, event.Price.Equal(got.Price))
		assert.True(t, event.OccurredAt.Equal(got.OccurredAt))
	})

	t.Run("deleted event omits catalog fields", func(t *testing.T) {
		t.Parallel()

		deleted := model.PartEvent{
			EventID:    uuid.New(),
			Type:       model.PartDeleted,
			PartID:     event.PartID,
			OccurredAt: event.OccurredAt,
		}

		p := &recordingProducer{}
		require.NoError(t, NewCatalogProducer(p, conv).SendPartEvent(context.Background(), deleted))

		got, err := conv.PayloadToPartEvent(p.value)
		require.NoError(t, err)
		assert.Equal(t, model.PartDeleted, got.Type)
		assert.Empty(t, got.SKU)
		assert.True(t, got.Price.IsZero())
	})

	t.Run("producer error is wrapped", func(t *testing.T) {
		t.Parallel()

		p := &recordingProducer{err: errors.New("out of brokers")}
		err := NewCatalogProducer(p, conv).SendPartEvent(context.Background(), event)
		assert.ErrorContains(t, err, "part.created")
		assert.ErrorContains(t, err, "out of brokers")
	})

	t.Run("nop sender", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, NewNopSender().SendPartEvent(context.Background(), event))
	})
}
