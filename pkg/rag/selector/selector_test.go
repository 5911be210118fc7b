package selector

import (
	"testing"

	"digitaltwin-rag-be/internal/entity"
	"digitaltwin-rag-be/pkg/rag/intent"
)

func chunkOf(id, chunkType string) entity.ContentChunk {
	return entity.ContentChunk{Id: id, Title: id, Content: "content " + id, Type: chunkType}
}

func TestSelectContext(t *testing.T) {
	s := NewSelector()

	pool := []entity.ContentChunk{
		chunkOf("exp1", entity.ChunkTypeWorkExperience),
		chunkOf("skills1", entity.ChunkTypeTechnicalSkills),
		chunkOf("star1", entity.ChunkTypeStarStory),
		chunkOf("proj1", entity.ChunkTypeProject),
		chunkOf("comp1", entity.ChunkTypeBehavioralCompetency),
		chunkOf("avail1", entity.ChunkTypeAvailability),
		chunkOf("star2", entity.ChunkTypeInterviewStarStory),
	}

	tests := []struct {
		name    string
		intent  intent.QueryIntent
		wantIds []string
	}{
		{
			name:    "behavioral keeps stories and experience in pool order",
			intent:  intent.IntentBehavioral,
			wantIds: []string{"exp1", "star1", "comp1"},
		},
		{
			name:    "technical keeps skills and projects",
			intent:  intent.IntentTechnical,
			wantIds: []string{"skills1", "proj1"},
		},
		{
			name:    "project specific keeps only projects",
			intent:  intent.IntentProjectSpecific,
			wantIds: []string{"proj1"},
		},
		{
			name:    "availability keeps availability chunk",
			intent:  intent.IntentAvailability,
			wantIds: []string{"avail1"},
		},
		{
			name:    "salary shares availability types",
			intent:  intent.IntentSalaryLocation,
			wantIds: []string{"avail1"},
		},
		{
			name:    "unknown intent uses default types",
			intent:  intent.IntentGeneral,
			wantIds: []string{"exp1", "skills1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.SelectContext(tt.intent, pool)
			if len(got) != len(tt.wantIds) {
				t.Fatalf("SelectContext() returned %d chunks, want %d", len(got), len(tt.wantIds))
			}
			for i, want := range tt.wantIds {
				if got[i].Id != want {
					t.Errorf("chunk[%d].Id = %q, want %q", i, got[i].Id, want)
				}
			}
		})
	}
}

func TestSelectContextCapsAtThree(t *testing.T) {
	s := NewSelector()

	pool := []entity.ContentChunk{
		chunkOf("a", entity.ChunkTypeWorkExperience),
		chunkOf("b", entity.ChunkTypeWorkExperience),
		chunkOf("c", entity.ChunkTypeStarStory),
		chunkOf("d", entity.ChunkTypeStarStory),
	}

	got := s.SelectContext(intent.IntentBehavioral, pool)
	if len(got) != 3 {
		t.Fatalf("SelectContext() returned %d chunks, want 3", len(got))
	}
	if got[2].Id != "c" {
		t.Errorf("chunk[2].Id = %q, want %q", got[2].Id, "c")
	}
}

func TestSelectContextEmptyPool(t *testing.T) {
	s := NewSelector()

	got := s.SelectContext(intent.IntentBehavioral, nil)
	if len(got) != 0 {
		t.Errorf("SelectContext() returned %d chunks, want 0", len(got))
	}
}
