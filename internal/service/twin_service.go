package service

import (
	"context"

	"digitaltwin-rag-be/internal/dto"
	"digitaltwin-rag-be/internal/entity"
	"digitaltwin-rag-be/pkg/rag"
)

type ITwinService interface {
	Ask(ctx context.Context, request *dto.AskRequest) (*dto.AskResponse, error)
}

type twinService struct {
	engine *rag.Engine
}

func NewTwinService(engine *rag.Engine) ITwinService {
	return &twinService{engine: engine}
}

// Ask answers one question. The freeform flag switches from the
// interview-optimized template pipeline to model-backed generation; an
// explicit namespace forces freeform routing since templates only cover the
// digital twin.
func (ts *twinService) Ask(ctx context.Context, request *dto.AskRequest) (*dto.AskResponse, error) {
	var answer *rag.Answer

	switch {
	case request.Namespace != "":
		ns := entity.NormalizeNamespace(request.Namespace)
		answer = ts.engine.AskFreeform(ctx, request.Question, ns, request.TopK)
	case request.Freeform:
		answer = ts.engine.SmartAsk(ctx, request.Question, request.TopK)
	default:
		answer = ts.engine.Ask(ctx, request.Question, request.CompanyContext)
	}

	return toAskResponse(answer), nil
}

func toAskResponse(answer *rag.Answer) *dto.AskResponse {
	componentScores := map[string]int{
		"content":    answer.Analysis.ComponentScores.Content,
		"structure":  answer.Analysis.ComponentScores.Structure,
		"impact":     answer.Analysis.ComponentScores.Impact,
		"engagement": answer.Analysis.ComponentScores.Engagement,
	}

	return &dto.AskResponse{
		Question:     answer.Question,
		Response:     answer.Response,
		QueryType:    string(answer.Intent),
		Namespace:    string(answer.Namespace),
		ContextUsed:  answer.ContextUsed,
		SourcesCount: answer.SourcesCount,
		Validation: &dto.ValidationResponse{
			IsValid:           answer.Validation.IsValid,
			Issues:            answer.Validation.Issues,
			Suggestions:       answer.Validation.Suggestions,
			AuthenticityScore: answer.Validation.AuthenticityScore,
		},
		Analysis: &dto.AnalysisResponse{
			OverallScore:           answer.Analysis.OverallScore,
			ComponentScores:        componentScores,
			SatisfactionPrediction: answer.Analysis.SatisfactionPrediction,
			Recommendations:        answer.Analysis.Recommendations,
		},
	}
}
