package bootstrap

import (
	"log"

	"digitaltwin-rag-be/internal/config"
	"digitaltwin-rag-be/internal/controller"
	"digitaltwin-rag-be/internal/pkg/logger"
	"digitaltwin-rag-be/internal/repository/implementation"
	"digitaltwin-rag-be/internal/service"
	"digitaltwin-rag-be/pkg/embedding"
	"digitaltwin-rag-be/pkg/llm"
	"digitaltwin-rag-be/pkg/llm/groq"
	"digitaltwin-rag-be/pkg/llm/ollama"
	"digitaltwin-rag-be/pkg/rag"
	"digitaltwin-rag-be/pkg/rag/namespace"
	"digitaltwin-rag-be/pkg/vectorstore"
	"digitaltwin-rag-be/pkg/vectorstore/pg"
	"digitaltwin-rag-be/pkg/vectorstore/upstash"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	TwinController controller.ITwinController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared infrastructure, exposed for the CLI entrypoints.
	ProfileService service.IProfileService
	TwinService    service.ITwinService
	Store          vectorstore.Store
	Logger         logger.ILogger
}

// NewContainer wires the dependency graph. db may be nil when the vector
// provider is upstash; it is only required for the pgvector backend.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Vector Store
	embeddingProvider := embedding.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OllamaModel,
	)

	var store vectorstore.Store
	switch cfg.Vector.Provider {
	case "pgvector":
		if db == nil {
			log.Fatalf("[FATAL] pgvector provider requires a database connection")
		}
		chunkRepo := implementation.NewChunkVectorRepository(db)
		store = pg.NewPgStore(chunkRepo, embeddingProvider)
		log.Printf("[INFO] Using Vector Store: PGVECTOR")
	default:
		if cfg.Vector.RestURL == "" || cfg.Vector.Token == "" {
			log.Fatalf("[FATAL] upstash provider requires UPSTASH_VECTOR_REST_URL and UPSTASH_VECTOR_REST_TOKEN")
		}
		store = upstash.NewClient(cfg.Vector.RestURL, cfg.Vector.Token)
		log.Printf("[INFO] Using Vector Store: UPSTASH (%s)", cfg.Vector.RestURL)
	}

	partitioner := namespace.NewPartitioner(store)

	// 4. LLM Provider
	var llmProvider llm.LLMProvider
	switch {
	case cfg.Groq.APIKey != "":
		llmProvider = groq.NewGroqProvider(cfg.Groq.APIKey, cfg.Groq.Model)
		log.Printf("[INFO] Using LLM Provider: GROQ (%s)", cfg.Groq.Model)
	case cfg.Ai.OllamaBaseURL != "":
		llmProvider = ollama.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaChatModel)
		log.Printf("[INFO] Using LLM Provider: OLLAMA (%s)", cfg.Ai.OllamaChatModel)
	default:
		log.Printf("[WARN] No LLM provider configured, freeform answering degrades to raw context")
	}

	// 5. Services
	engine := rag.NewEngine(partitioner, llmProvider, sysLogger, cfg.Profile.DefaultTopK)

	twinService := service.NewTwinService(engine)
	profileService := service.NewProfileService(
		cfg.Profile.ProfilePath,
		cfg.Profile.FoodsPath,
		cfg.Vector.Provider,
		cfg.Groq.Model,
		partitioner,
		store,
		pubSub,
		cfg.App.EmbedTopic,
		sysLogger,
	)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EmbedTopic,
		partitioner,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		TwinController:  controller.NewTwinController(twinService, profileService),
		ConsumerService: consumerService,
		ProfileService:  profileService,
		TwinService:     twinService,
		Store:           store,
		Logger:          sysLogger,
	}
}
