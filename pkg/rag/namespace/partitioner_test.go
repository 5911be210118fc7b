package namespace

import (
	"context"
	"errors"
	"testing"

	"digitaltwin-rag-be/internal/entity"
	"digitaltwin-rag-be/pkg/vectorstore"
)

type fakeStore struct {
	upserts  map[string]map[string]any
	docs     map[string]string
	hits     []vectorstore.Hit
	queryErr error

	lastQueryTopK int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		upserts: make(map[string]map[string]any),
		docs:    make(map[string]string),
	}
}

func (f *fakeStore) Upsert(_ context.Context, id, text string, metadata map[string]any) error {
	f.upserts[id] = metadata
	f.docs[id] = text
	return nil
}

func (f *fakeStore) Query(_ context.Context, _ string, topK int) ([]vectorstore.Hit, error) {
	f.lastQueryTopK = topK
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if topK > len(f.hits) {
		topK = len(f.hits)
	}
	return f.hits[:topK], nil
}

func (f *fakeStore) Fetch(_ context.Context, ids []string) ([]vectorstore.Record, error) {
	var records []vectorstore.Record
	for _, id := range ids {
		if metadata, ok := f.upserts[id]; ok {
			records = append(records, vectorstore.Record{Id: id, Metadata: metadata})
		}
	}
	return records, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	delete(f.upserts, id)
	return nil
}

func (f *fakeStore) Reset(_ context.Context) error {
	f.upserts = make(map[string]map[string]any)
	return nil
}

func (f *fakeStore) Info(_ context.Context) (*vectorstore.Info, error) {
	return &vectorstore.Info{VectorCount: int64(len(f.upserts))}, nil
}

func dtHit(id string, score float64) vectorstore.Hit {
	return vectorstore.Hit{
		Id:    id,
		Score: score,
		Metadata: map[string]any{
			"namespace": "dt",
			"title":     "t " + id,
			"content":   "c " + id,
			"type":      "work_experience",
		},
	}
}

func TestUpsertChunk(t *testing.T) {
	store := newFakeStore()
	p := NewPartitioner(store)

	chunk := &entity.ContentChunk{
		Id:        "personal_1",
		Title:     "Professional Overview",
		Content:   "An overview.",
		Type:      "personal_info",
		Category:  "overview",
		Tags:      []string{"overview"},
		Namespace: entity.NamespaceDigitalTwin,
	}

	id, err := p.UpsertChunk(context.Background(), chunk)
	if err != nil {
		t.Fatalf("UpsertChunk() error = %v", err)
	}
	if id != "dt-personal_1" {
		t.Errorf("id = %q, want %q", id, "dt-personal_1")
	}

	metadata := store.upserts[id]
	if metadata == nil {
		t.Fatal("no metadata stored")
	}
	if metadata["namespace"] != "dt" {
		t.Errorf("metadata namespace = %v, want dt", metadata["namespace"])
	}
	if metadata["source"] != "digital_twin" {
		t.Errorf("metadata source = %v, want digital_twin", metadata["source"])
	}

	wantDoc := "Title: Professional Overview. Type: personal_info. Category: overview. Content: An overview."
	if store.docs[id] != wantDoc {
		t.Errorf("stored document = %q, want %q", store.docs[id], wantDoc)
	}
}

func TestUpsertChunkFoodDocument(t *testing.T) {
	store := newFakeStore()
	p := NewPartitioner(store)

	chunk := &entity.ContentChunk{
		Id:        "food_1",
		Title:     "Apple",
		Content:   "Food: Apple. Description: Fresh red apple",
		Namespace: entity.NamespaceFood,
	}

	id, err := p.UpsertChunk(context.Background(), chunk)
	if err != nil {
		t.Fatalf("UpsertChunk() error = %v", err)
	}
	if id != "food-food_1" {
		t.Errorf("id = %q, want %q", id, "food-food_1")
	}
	if store.upserts[id]["source"] != "foods_data" {
		t.Errorf("metadata source = %v, want foods_data", store.upserts[id]["source"])
	}
}

func TestUpsertChunkRejectsMissingNamespace(t *testing.T) {
	p := NewPartitioner(newFakeStore())

	_, err := p.UpsertChunk(context.Background(), &entity.ContentChunk{Id: "x"})
	if err == nil {
		t.Fatal("UpsertChunk() expected error for missing namespace")
	}
}

func TestQueryNamespaceOverFetchesAndFilters(t *testing.T) {
	store := newFakeStore()
	store.hits = []vectorstore.Hit{
		dtHit("dt-personal_1", 0.95),
		{Id: "food-food_1", Score: 0.90, Metadata: map[string]any{"namespace": "food"}},
		dtHit("dt-experience_1_4", 0.85),
		{Id: "mystery", Score: 0.80, Metadata: nil},
	}

	p := NewPartitioner(store)
	results, err := p.QueryNamespace(context.Background(), "experience", entity.NamespaceDigitalTwin, 5)
	if err != nil {
		t.Fatalf("QueryNamespace() error = %v", err)
	}

	if store.lastQueryTopK != 15 {
		t.Errorf("store queried with topK = %d, want 15", store.lastQueryTopK)
	}
	if len(results) != 2 {
		t.Fatalf("QueryNamespace() returned %d results, want 2", len(results))
	}
	if results[0].Id != "dt-personal_1" || results[1].Id != "dt-experience_1_4" {
		t.Errorf("result ids = %q, %q", results[0].Id, results[1].Id)
	}
}

func TestQueryNamespaceAcceptsHistoricalLabels(t *testing.T) {
	store := newFakeStore()
	store.hits = []vectorstore.Hit{
		{Id: "dt-x", Score: 0.9, Metadata: map[string]any{"namespace": "digitaltwin"}},
		{Id: "food-y", Score: 0.8, Metadata: map[string]any{"namespace": "foods"}},
		// No namespace field at all: the id prefix decides.
		{Id: "dt-z", Score: 0.7, Metadata: map[string]any{"title": "z"}},
	}

	p := NewPartitioner(store)

	dt, err := p.QueryNamespace(context.Background(), "q", entity.NamespaceDigitalTwin, 5)
	if err != nil {
		t.Fatalf("QueryNamespace() error = %v", err)
	}
	if len(dt) != 2 {
		t.Fatalf("dt results = %d, want 2", len(dt))
	}

	food, err := p.QueryNamespace(context.Background(), "q", entity.NamespaceFood, 5)
	if err != nil {
		t.Fatalf("QueryNamespace() error = %v", err)
	}
	if len(food) != 1 || food[0].Id != "food-y" {
		t.Fatalf("food results = %v, want single food-y", food)
	}
}

func TestQueryNamespaceStopsAtTopK(t *testing.T) {
	store := newFakeStore()
	for i := 0; i < 10; i++ {
		store.hits = append(store.hits, dtHit(string(rune('a'+i)), 1.0-float64(i)*0.01))
	}

	p := NewPartitioner(store)
	results, err := p.QueryNamespace(context.Background(), "q", entity.NamespaceDigitalTwin, 3)
	if err != nil {
		t.Fatalf("QueryNamespace() error = %v", err)
	}
	if len(results) != 3 {
		t.Errorf("QueryNamespace() returned %d results, want 3", len(results))
	}
}

func TestQueryNamespacePropagatesStoreError(t *testing.T) {
	store := newFakeStore()
	store.queryErr = errors.New("boom")

	p := NewPartitioner(store)
	_, err := p.QueryNamespace(context.Background(), "q", entity.NamespaceDigitalTwin, 3)
	if err == nil {
		t.Fatal("QueryNamespace() expected error")
	}
}

func TestClassifyStored(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		metadata map[string]any
		want     entity.Namespace
	}{
		{"dt prefix wins", "dt-personal_1", map[string]any{"namespace": "foods"}, entity.NamespaceDigitalTwin},
		{"food prefix", "food-food_3", nil, entity.NamespaceFood},
		{"metadata fallback long code", "legacy_7", map[string]any{"namespace": "digitaltwin"}, entity.NamespaceDigitalTwin},
		{"nothing known", "legacy_8", map[string]any{"title": "x"}, entity.NamespaceUnknown},
		{"nil metadata", "legacy_9", nil, entity.NamespaceUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStored(tt.id, tt.metadata)
			if got != tt.want {
				t.Errorf("ClassifyStored(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}
