package namespace

import "digitaltwin-rag-be/internal/entity"

// ClassifyStored decides which namespace a stored vector belongs to during
// migration. Id prefix wins; metadata (including the historical long codes
// "digitaltwin" and "foods") is the fallback. Vectors matching neither are
// reported as unknown and left for the operator to inspect.
func ClassifyStored(id string, metadata map[string]any) entity.Namespace {
	if ns := entity.NamespaceFromID(id); ns != entity.NamespaceUnknown {
		return ns
	}
	if metadata != nil {
		if raw, ok := metadata["namespace"].(string); ok {
			return entity.NormalizeNamespace(raw)
		}
	}
	return entity.NamespaceUnknown
}
