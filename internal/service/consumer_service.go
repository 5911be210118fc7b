package service

import (
	"context"
	"encoding/json"

	"digitaltwin-rag-be/internal/dto"
	"digitaltwin-rag-be/internal/entity"
	"digitaltwin-rag-be/internal/pkg/logger"
	"digitaltwin-rag-be/pkg/rag/namespace"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	partitioner *namespace.Partitioner
	logger      logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	partitioner *namespace.Partitioner,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		partitioner: partitioner,
		logger:      log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedChunkMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		// Ack malformed payloads to prevent infinite redelivery.
		cs.logger.Error("service.consumer", "failed to unmarshal message", map[string]interface{}{
			"message_uuid": msg.UUID,
			"error":        err.Error(),
		})
		msg.Ack()
		return
	}

	chunk := entity.ContentChunk{
		Id:        payload.Id,
		Title:     payload.Title,
		Content:   payload.Content,
		Type:      payload.Type,
		Category:  payload.Category,
		Tags:      payload.Tags,
		Namespace: entity.NormalizeNamespace(payload.Namespace),
	}

	id, err := cs.partitioner.UpsertChunk(ctx, &chunk)
	if err != nil {
		cs.logger.Error("service.consumer", "upsert failed", map[string]interface{}{
			"chunk_id": payload.Id,
			"error":    err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("service.consumer", "chunk embedded", map[string]interface{}{
		"id":    id,
		"title": payload.Title,
	})
	msg.Ack()
}
