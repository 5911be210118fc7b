package rag

import (
	"context"
	"fmt"
	"strings"

	"digitaltwin-rag-be/internal/entity"
	"digitaltwin-rag-be/internal/pkg/logger"
	"digitaltwin-rag-be/pkg/llm"
	"digitaltwin-rag-be/pkg/rag/company"
	"digitaltwin-rag-be/pkg/rag/intent"
	"digitaltwin-rag-be/pkg/rag/namespace"
	"digitaltwin-rag-be/pkg/rag/response"
	"digitaltwin-rag-be/pkg/rag/selector"
	"digitaltwin-rag-be/pkg/rag/validate"
)

const noInformationMessage = "I don't have specific information about that topic."

// foodKeywords route SmartAsk questions to the food namespace. Substring
// match against the lower-cased question.
var foodKeywords = []string{
	"food", "eat", "nutrition", "recipe", "cooking", "ingredient",
	"calories", "diet", "meal", "dish", "cuisine", "restaurant",
	"healthy", "vitamin", "protein", "carbs", "fat", "sugar",
}

// Answer is the full result of one question: the response text plus the
// diagnostics produced alongside it.
type Answer struct {
	Question       string                  `json:"question"`
	Response       string                  `json:"response"`
	Intent         intent.QueryIntent      `json:"query_type"`
	Namespace      entity.Namespace        `json:"namespace"`
	ContextUsed    []string                `json:"context_used"`
	SourcesCount   int                     `json:"sources_count"`
	Validation     entity.ValidationResult `json:"validation"`
	Analysis       entity.ResponseAnalysis `json:"analysis"`
	CompanyContext string                  `json:"company_context,omitempty"`
}

// Engine wires the question-answering pipeline: classify, retrieve from the
// partitioned store, select context, generate, customize, validate, score.
// Each question is processed independently; the engine holds no per-question
// state and is safe for concurrent use.
type Engine struct {
	partitioner *namespace.Partitioner
	classifier  *intent.Classifier
	selector    *selector.Selector
	generator   *response.Generator
	customizer  *company.Customizer
	validator   *validate.Validator
	scorer      *validate.Scorer
	llmProvider llm.LLMProvider
	logger      logger.ILogger
	topK        int
}

// NewEngine builds an engine. llmProvider may be nil; freeform answering
// then degrades to the template pipeline's behavior.
func NewEngine(partitioner *namespace.Partitioner, llmProvider llm.LLMProvider, log logger.ILogger, topK int) *Engine {
	if topK <= 0 {
		topK = 5
	}
	return &Engine{
		partitioner: partitioner,
		classifier:  intent.NewClassifier(),
		selector:    selector.NewSelector(),
		generator:   response.NewGenerator(),
		customizer:  company.NewCustomizer(),
		validator:   validate.NewValidator(),
		scorer:      validate.NewScorer(),
		llmProvider: llmProvider,
		logger:      log,
		topK:        topK,
	}
}

// Ask runs the interview-optimized template pipeline against the digital
// twin namespace. Retrieval failure degrades to answering from templates
// alone; it never aborts the question.
func (e *Engine) Ask(ctx context.Context, question, companyContext string) *Answer {
	queryIntent := e.classifier.Classify(question)

	results, err := e.partitioner.QueryNamespace(ctx, question, entity.NamespaceDigitalTwin, e.topK)
	if err != nil {
		e.logger.Warn("rag.engine", "retrieval failed, answering from templates only", map[string]interface{}{
			"error":    err.Error(),
			"question": question,
		})
		results = nil
	}

	chunkPool := make([]entity.ContentChunk, len(results))
	for i := range results {
		chunkPool[i] = results[i].ToChunk()
	}
	selected := e.selector.SelectContext(queryIntent, chunkPool)

	answer := e.generator.Generate(question, queryIntent, selected)
	if answer == "" {
		answer = noInformationMessage
	}
	if companyContext != "" {
		answer = e.customizer.Customize(answer, companyContext, queryIntent)
	}

	contextUsed := make([]string, len(selected))
	for i, chunk := range selected {
		contextUsed[i] = chunk.Title
	}

	return &Answer{
		Question:       question,
		Response:       answer,
		Intent:         queryIntent,
		Namespace:      entity.NamespaceDigitalTwin,
		ContextUsed:    contextUsed,
		SourcesCount:   len(results),
		Validation:     e.validator.Validate(answer, queryIntent),
		Analysis:       e.scorer.Analyze(answer, question, validate.ScoringContext{}),
		CompanyContext: companyContext,
	}
}

// AskFreeform answers with LLM generation grounded in one namespace.
// Transport errors from store or model become user-visible degraded text,
// never a propagated failure.
func (e *Engine) AskFreeform(ctx context.Context, question string, ns entity.Namespace, topK int) *Answer {
	if topK <= 0 {
		topK = e.topK
	}

	queryIntent := e.classifier.Classify(question)

	results, err := e.partitioner.QueryNamespace(ctx, question, ns, topK)
	if err != nil {
		e.logger.Warn("rag.engine", "retrieval failed", map[string]interface{}{
			"error":     err.Error(),
			"namespace": string(ns),
		})
		results = nil
	}

	answer := e.generateFreeform(ctx, question, ns, results)

	contextUsed := make([]string, len(results))
	for i := range results {
		contextUsed[i] = results[i].Title()
	}

	return &Answer{
		Question:     question,
		Response:     answer,
		Intent:       queryIntent,
		Namespace:    ns,
		ContextUsed:  contextUsed,
		SourcesCount: len(results),
		Validation:   e.validator.Validate(answer, queryIntent),
		Analysis:     e.scorer.Analyze(answer, question, validate.ScoringContext{}),
	}
}

// SmartAsk routes the question to the food or digital twin namespace by
// keyword detection, defaulting to the digital twin when unclear.
func (e *Engine) SmartAsk(ctx context.Context, question string, topK int) *Answer {
	lower := strings.ToLower(question)
	for _, kw := range foodKeywords {
		if strings.Contains(lower, kw) {
			return e.AskFreeform(ctx, question, entity.NamespaceFood, topK)
		}
	}
	return e.AskFreeform(ctx, question, entity.NamespaceDigitalTwin, topK)
}

func (e *Engine) generateFreeform(ctx context.Context, question string, ns entity.Namespace, results []entity.RetrievedResult) string {
	if len(results) == 0 {
		if ns == entity.NamespaceDigitalTwin {
			return noInformationMessage
		}
		return fmt.Sprintf("I couldn't find relevant information in the '%s' namespace for your query.", ns)
	}

	if e.llmProvider == nil {
		// No model configured: answer with the best chunk body directly.
		return results[0].Content()
	}

	history := []llm.Message{
		{Role: "system", Content: response.SystemPromptFor(ns)},
		{Role: "user", Content: response.BuildUserPrompt(question, results)},
	}

	answer, err := e.llmProvider.Chat(ctx, history,
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(1000),
	)
	if err != nil {
		e.logger.Error("rag.engine", "completion failed", map[string]interface{}{
			"error":     err.Error(),
			"namespace": string(ns),
		})
		return fmt.Sprintf("Error generating response: %s", err.Error())
	}
	return answer
}
