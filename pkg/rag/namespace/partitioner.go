package namespace

import (
	"context"
	"fmt"

	"digitaltwin-rag-be/internal/entity"
	"digitaltwin-rag-be/pkg/vectorstore"
)

// Partitioner layers logical namespaces over a store that has no native
// partition support. Writes stamp both an id prefix and a namespace metadata
// field; reads over-fetch and post-filter, because the store ranks across
// all namespaces at once.
type Partitioner struct {
	store vectorstore.Store
}

// Over-fetch multiplier: the store cannot filter server-side, so a topK
// query pulls topK*overFetchFactor candidates before post-filtering.
const overFetchFactor = 3

func NewPartitioner(store vectorstore.Store) *Partitioner {
	return &Partitioner{
		store: store,
	}
}

// UpsertChunk writes one chunk into its namespace. The stored document is an
// enhanced rendering of the chunk; the raw fields travel as metadata so
// retrieval can reconstruct the chunk without re-parsing the document.
func (p *Partitioner) UpsertChunk(ctx context.Context, chunk *entity.ContentChunk) (string, error) {
	ns := chunk.Namespace
	if ns == entity.NamespaceUnknown || ns == "" {
		return "", fmt.Errorf("chunk %s has no namespace", chunk.Id)
	}

	id := ns.Prefix() + chunk.Id
	metadata := map[string]any{
		"title":     chunk.Title,
		"type":      chunk.Type,
		"category":  chunk.Category,
		"content":   chunk.Content,
		"tags":      chunk.Tags,
		"namespace": string(ns),
		"source":    sourceLabel(ns),
	}

	if err := p.store.Upsert(ctx, id, enhancedDocument(chunk), metadata); err != nil {
		return "", err
	}
	return id, nil
}

// QueryNamespace retrieves up to topK chunks belonging to the given
// namespace. Results whose metadata namespace disagrees with the target are
// dropped even when their id prefix matches; results with no metadata at all
// are dropped too.
func (p *Partitioner) QueryNamespace(ctx context.Context, query string, ns entity.Namespace, topK int) ([]entity.RetrievedResult, error) {
	if topK <= 0 {
		topK = 5
	}

	hits, err := p.store.Query(ctx, query, topK*overFetchFactor)
	if err != nil {
		return nil, err
	}

	results := make([]entity.RetrievedResult, 0, topK)
	for _, hit := range hits {
		if resolveNamespace(hit) != ns {
			continue
		}
		results = append(results, entity.RetrievedResult{
			Id:        hit.Id,
			Score:     hit.Score,
			Metadata:  hit.Metadata,
			Namespace: ns,
		})
		if len(results) >= topK {
			break
		}
	}
	return results, nil
}

// resolveNamespace reads the namespace of a hit: metadata field first
// (normalizing historical long codes), id prefix as fallback for vectors
// written before the field existed. No metadata means unknown, not a guess.
func resolveNamespace(hit vectorstore.Hit) entity.Namespace {
	if hit.Metadata == nil {
		return entity.NamespaceUnknown
	}
	if raw, ok := hit.Metadata["namespace"].(string); ok && raw != "" {
		return entity.NormalizeNamespace(raw)
	}
	return entity.NamespaceFromID(hit.Id)
}

// enhancedDocument renders the text actually embedded, which carries more
// signal than the raw content alone.
func enhancedDocument(chunk *entity.ContentChunk) string {
	if chunk.Namespace == entity.NamespaceFood {
		return fmt.Sprintf("Food: %s. %s", chunk.Title, chunk.Content)
	}
	return fmt.Sprintf("Title: %s. Type: %s. Category: %s. Content: %s",
		chunk.Title, chunk.Type, chunk.Category, chunk.Content)
}

func sourceLabel(ns entity.Namespace) string {
	if ns == entity.NamespaceFood {
		return "foods_data"
	}
	return "digital_twin"
}
