package dto

// --- Question Answering ---

type AskRequest struct {
	Question       string `json:"question" validate:"required,min=2"`
	CompanyContext string `json:"company_context,omitempty"`
	Namespace      string `json:"namespace,omitempty" validate:"omitempty,oneof=dt food digitaltwin foods"`
	TopK           int    `json:"top_k,omitempty" validate:"omitempty,min=1,max=20"`
	Freeform       bool   `json:"freeform,omitempty"`
}

type ValidationResponse struct {
	IsValid           bool     `json:"is_valid"`
	Issues            []string `json:"issues"`
	Suggestions       []string `json:"suggestions"`
	AuthenticityScore float64  `json:"authenticity_score"`
}

type AnalysisResponse struct {
	OverallScore           float64        `json:"overall_score"`
	ComponentScores        map[string]int `json:"component_scores"`
	SatisfactionPrediction float64        `json:"satisfaction_prediction"`
	Recommendations        []string       `json:"recommendations"`
}

type AskResponse struct {
	Question     string              `json:"question"`
	Response     string              `json:"response"`
	QueryType    string              `json:"query_type"`
	Namespace    string              `json:"namespace"`
	ContextUsed  []string            `json:"context_used"`
	SourcesCount int                 `json:"sources_count"`
	Validation   *ValidationResponse `json:"validation,omitempty"`
	Analysis     *AnalysisResponse   `json:"analysis,omitempty"`
}

// --- Embedding Pipeline ---

// PublishEmbedChunkMessage is the payload carried on the embed topic. The
// chunk travels whole so the consumer never has to re-read the profile.
type PublishEmbedChunkMessage struct {
	Id        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Type      string   `json:"type"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Namespace string   `json:"namespace"`
}

// --- Knowledge Base Administration ---

type SampleQuestionGroup struct {
	Category  string   `json:"category"`
	Questions []string `json:"questions"`
}

type StatusResponse struct {
	Provider    string `json:"provider"`
	VectorCount int64  `json:"vector_count"`
	Model       string `json:"model"`
	Ready       bool   `json:"ready"`
}

type RebuildResponse struct {
	ProfileChunks int  `json:"profile_chunks"`
	FoodChunks    int  `json:"food_chunks"`
	Upserted      int  `json:"upserted"`
	Verified      bool `json:"verified"`
}

type PublishResponse struct {
	Published int `json:"published"`
}
