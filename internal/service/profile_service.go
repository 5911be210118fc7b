package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"digitaltwin-rag-be/internal/dto"
	"digitaltwin-rag-be/internal/entity"
	"digitaltwin-rag-be/internal/pkg/logger"
	"digitaltwin-rag-be/pkg/rag/chunks"
	"digitaltwin-rag-be/pkg/rag/namespace"
	"digitaltwin-rag-be/pkg/vectorstore"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IProfileService interface {
	LoadProfile() (*entity.ProfileDocument, error)
	LoadFoods() ([]entity.FoodItem, error)
	Rebuild(ctx context.Context) (*dto.RebuildResponse, error)
	PublishAll(ctx context.Context) (int, error)
	Reorganize(ctx context.Context) (*dto.RebuildResponse, error)
	SampleQuestions() []dto.SampleQuestionGroup
	Status(ctx context.Context) (*dto.StatusResponse, error)
}

type profileService struct {
	profilePath string
	foodsPath   string
	provider    string
	modelName   string
	builder     *chunks.Builder
	partitioner *namespace.Partitioner
	store       vectorstore.Store
	pubSub      *gochannel.GoChannel
	topicName   string
	logger      logger.ILogger
}

func NewProfileService(
	profilePath string,
	foodsPath string,
	provider string,
	modelName string,
	partitioner *namespace.Partitioner,
	store vectorstore.Store,
	pubSub *gochannel.GoChannel,
	topicName string,
	log logger.ILogger,
) IProfileService {
	return &profileService{
		profilePath: profilePath,
		foodsPath:   foodsPath,
		provider:    provider,
		modelName:   modelName,
		builder:     chunks.NewBuilder(),
		partitioner: partitioner,
		store:       store,
		pubSub:      pubSub,
		topicName:   topicName,
		logger:      log,
	}
}

// LoadProfile reads and validates the profile document. A profile without a
// name is rejected here so every downstream chunk can assume one.
func (ps *profileService) LoadProfile() (*entity.ProfileDocument, error) {
	raw, err := os.ReadFile(ps.profilePath)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", ps.profilePath, err)
	}

	var profile entity.ProfileDocument
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", ps.profilePath, err)
	}
	if profile.PersonalInfo == nil || profile.PersonalInfo.Name == "" {
		return nil, fmt.Errorf("profile %s: personal_info.name is required", ps.profilePath)
	}
	return &profile, nil
}

// LoadFoods reads the food catalog. A missing file is not an error; the
// food namespace is optional.
func (ps *profileService) LoadFoods() ([]entity.FoodItem, error) {
	raw, err := os.ReadFile(ps.foodsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read foods %s: %w", ps.foodsPath, err)
	}

	var foods []entity.FoodItem
	if err := json.Unmarshal(raw, &foods); err != nil {
		return nil, fmt.Errorf("parse foods %s: %w", ps.foodsPath, err)
	}
	return foods, nil
}

// Rebuild regenerates every chunk from the source documents and upserts
// them synchronously, then verifies one roundtrip fetch so a silently dead
// store is caught at rebuild time rather than at the first query.
func (ps *profileService) Rebuild(ctx context.Context) (*dto.RebuildResponse, error) {
	profile, err := ps.LoadProfile()
	if err != nil {
		return nil, err
	}
	foods, err := ps.LoadFoods()
	if err != nil {
		return nil, err
	}

	profileChunks := ps.builder.BuildProfileChunks(profile)
	foodChunks := ps.builder.BuildFoodChunks(foods)

	all := make([]entity.ContentChunk, 0, len(profileChunks)+len(foodChunks))
	all = append(all, profileChunks...)
	all = append(all, foodChunks...)

	upserted := 0
	var firstId string
	for i := range all {
		id, err := ps.partitioner.UpsertChunk(ctx, &all[i])
		if err != nil {
			ps.logger.Error("service.profile", "upsert failed", map[string]interface{}{
				"chunk_id": all[i].Id,
				"error":    err.Error(),
			})
			continue
		}
		if firstId == "" {
			firstId = id
		}
		upserted++
	}

	verified := false
	if firstId != "" {
		records, err := ps.store.Fetch(ctx, []string{firstId})
		if err != nil {
			ps.logger.Warn("service.profile", "verification fetch failed", map[string]interface{}{
				"id":    firstId,
				"error": err.Error(),
			})
		} else {
			verified = len(records) > 0
		}
	}

	ps.logger.Info("service.profile", "rebuild complete", map[string]interface{}{
		"profile_chunks": len(profileChunks),
		"food_chunks":    len(foodChunks),
		"upserted":       upserted,
		"verified":       verified,
	})

	return &dto.RebuildResponse{
		ProfileChunks: len(profileChunks),
		FoodChunks:    len(foodChunks),
		Upserted:      upserted,
		Verified:      verified,
	}, nil
}

// PublishAll builds every chunk and hands them to the embed topic instead
// of upserting inline. Returns the number of messages published.
func (ps *profileService) PublishAll(ctx context.Context) (int, error) {
	profile, err := ps.LoadProfile()
	if err != nil {
		return 0, err
	}
	foods, err := ps.LoadFoods()
	if err != nil {
		return 0, err
	}

	all := ps.builder.BuildProfileChunks(profile)
	all = append(all, ps.builder.BuildFoodChunks(foods)...)

	published := 0
	for i := range all {
		payload, err := json.Marshal(dto.PublishEmbedChunkMessage{
			Id:        all[i].Id,
			Title:     all[i].Title,
			Content:   all[i].Content,
			Type:      all[i].Type,
			Category:  all[i].Category,
			Tags:      all[i].Tags,
			Namespace: string(all[i].Namespace),
		})
		if err != nil {
			return published, err
		}
		msg := message.NewMessage(uuid.NewString(), payload)
		if err := ps.pubSub.Publish(ps.topicName, msg); err != nil {
			return published, err
		}
		published++
	}
	return published, nil
}

// Reorganize migrates vectors written by earlier upload scripts into the
// canonical layout: every stored id is classified by prefix then metadata,
// misfiled vectors are deleted, and the whole corpus is rebuilt from source.
func (ps *profileService) Reorganize(ctx context.Context) (*dto.RebuildResponse, error) {
	// The store has no scan API, so a broad query is the only way to see
	// what is already there.
	hits, err := ps.store.Query(ctx, "sample query to get all data", 100)
	if err != nil {
		return nil, fmt.Errorf("analyze existing vectors: %w", err)
	}

	counts := map[entity.Namespace]int{}
	for _, hit := range hits {
		ns := namespace.ClassifyStored(hit.Id, hit.Metadata)
		counts[ns]++
		if err := ps.store.Delete(ctx, hit.Id); err != nil {
			ps.logger.Warn("service.profile", "delete during reorganize failed", map[string]interface{}{
				"id":    hit.Id,
				"error": err.Error(),
			})
		}
	}

	ps.logger.Info("service.profile", "reorganize analysis", map[string]interface{}{
		"digital_twin": counts[entity.NamespaceDigitalTwin],
		"food":         counts[entity.NamespaceFood],
		"unknown":      counts[entity.NamespaceUnknown],
	})

	return ps.Rebuild(ctx)
}

// SampleQuestions returns the practice question catalog grouped by
// interview category.
func (ps *profileService) SampleQuestions() []dto.SampleQuestionGroup {
	return []dto.SampleQuestionGroup{
		{
			Category: "behavioral",
			Questions: []string{
				"Tell me about yourself and why you're interested in this role.",
				"Describe a challenging project you worked on recently.",
				"Tell me about a time when you had to learn something quickly.",
				"Give me an example of how you handle conflicting priorities.",
				"Describe a situation where you had to work with a difficult team member.",
			},
		},
		{
			Category: "technical",
			Questions: []string{
				"Walk me through your experience with RAG systems and AI implementation.",
				"How do you approach full-stack development projects?",
				"Describe your experience with cloud deployment and DevOps.",
				"Tell me about a time you optimized system performance.",
				"How do you ensure code quality and maintainability?",
			},
		},
		{
			Category: "company_specific",
			Questions: []string{
				"Why do you want to work at [Company Name]?",
				"How would you contribute to our [specific team/project]?",
				"What interests you about our [industry/mission]?",
				"How do your values align with our company culture?",
				"What questions do you have about our [technology/process]?",
			},
		},
	}
}

// Status reports store reachability and size. A failed info call marks the
// system not ready rather than erroring; the endpoint doubles as a probe.
func (ps *profileService) Status(ctx context.Context) (*dto.StatusResponse, error) {
	status := &dto.StatusResponse{
		Provider: ps.provider,
		Model:    ps.modelName,
	}

	info, err := ps.store.Info(ctx)
	if err != nil {
		ps.logger.Warn("service.profile", "store info failed", map[string]interface{}{
			"error": err.Error(),
		})
		return status, nil
	}

	status.VectorCount = info.VectorCount
	status.Ready = true
	return status, nil
}
