package company

import (
	"strings"
	"testing"

	"digitaltwin-rag-be/pkg/rag/intent"
)

const baseResponse = "Here is my base answer."

func TestCustomizeEmptyContext(t *testing.T) {
	c := NewCustomizer()

	got := c.Customize(baseResponse, "", intent.IntentBehavioral)
	if got != baseResponse {
		t.Errorf("Customize() = %q, want unchanged base", got)
	}
}

func TestCustomizeIsAdditive(t *testing.T) {
	c := NewCustomizer()

	got := c.Customize(baseResponse, "Interview at Suncorp next week", intent.IntentCompanySpecific)
	if !strings.HasPrefix(got, baseResponse) {
		t.Errorf("Customize() must keep the base response as prefix:\n%s", got)
	}
}

func TestIdentifyCompany(t *testing.T) {
	c := NewCustomizer()

	tests := []struct {
		name     string
		context  string
		wantName string
	}{
		{"key match", "applying to suncorp graduate program", "Suncorp Group"},
		{"display name match", "role at Xero in Brisbane", "Xero"},
		{"case insensitive", "TECHNOLOGYONE developer role", "TechnologyOne"},
		{"unknown company", "small local agency", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.IdentifyCompany(tt.context)
			if tt.wantName == "" {
				if got != nil {
					t.Errorf("IdentifyCompany(%q) = %v, want nil", tt.context, got)
				}
				return
			}
			if got == nil || got.Name != tt.wantName {
				t.Errorf("IdentifyCompany(%q) = %v, want %q", tt.context, got, tt.wantName)
			}
		})
	}
}

func TestIdentifyCompanyMemoized(t *testing.T) {
	c := NewCustomizer()

	first := c.IdentifyCompany("suncorp role")
	second := c.IdentifyCompany("Suncorp Role")
	if first == nil || second == nil {
		t.Fatal("IdentifyCompany() returned nil for known company")
	}
	if first != second {
		t.Error("repeated lookups should return the cached profile pointer")
	}
}

func TestCustomizeKnownCompany(t *testing.T) {
	c := NewCustomizer()

	t.Run("technical intent calls out stack overlap", func(t *testing.T) {
		got := c.Customize(baseResponse, "xero", intent.IntentTechnical)
		if !strings.Contains(got, "your tech stack") {
			t.Errorf("missing tech stack customization:\n%s", got)
		}
		// Overlap is capped at three technologies.
		if !strings.Contains(got, "React, AWS, TypeScript") {
			t.Errorf("unexpected overlap list:\n%s", got)
		}
	})

	t.Run("company specific intent mentions values", func(t *testing.T) {
		got := c.Customize(baseResponse, "technologyone", intent.IntentCompanySpecific)
		if !strings.Contains(got, "emphasis on innovation") {
			t.Errorf("missing innovation value customization:\n%s", got)
		}
	})

	t.Run("value triggers need a whole-string match", func(t *testing.T) {
		// Suncorp's values include "Customer First" but not "Customer",
		// so the customer-centricity line must stay out.
		got := c.Customize(baseResponse, "suncorp", intent.IntentCompanySpecific)
		if strings.Contains(got, "customer-centricity") {
			t.Errorf("customer value customization fired on a partial match:\n%s", got)
		}
		if !strings.Contains(got, "financial accessibility") {
			t.Errorf("missing financial services customization:\n%s", got)
		}
	})

	t.Run("travel industry fires regardless of intent", func(t *testing.T) {
		got := c.Customize(baseResponse, "flight_centre", intent.IntentGeneral)
		if !strings.Contains(got, "travel industry") {
			t.Errorf("missing travel customization:\n%s", got)
		}
	})

	t.Run("enterprise size call-out", func(t *testing.T) {
		got := c.Customize(baseResponse, "suncorp", intent.IntentGeneral)
		if !strings.Contains(got, "enterprise scale") {
			t.Errorf("missing enterprise customization:\n%s", got)
		}
	})
}

func TestCustomizeIndustryFallback(t *testing.T) {
	c := NewCustomizer()

	t.Run("banking context infers fintech", func(t *testing.T) {
		got := c.Customize(baseResponse, "a banking platform company", intent.IntentBehavioral)
		if !strings.Contains(got, "fintech") {
			t.Errorf("missing fintech addition:\n%s", got)
		}
	})

	t.Run("consulting only adds for behavioral", func(t *testing.T) {
		got := c.Customize(baseResponse, "an advisory firm", intent.IntentTechnical)
		if got != baseResponse {
			t.Errorf("expected no addition for technical consulting context:\n%s", got)
		}
	})

	t.Run("unknown context with company intent gets generic close", func(t *testing.T) {
		got := c.Customize(baseResponse, "a small local bakery chain", intent.IntentCompanySpecific)
		if !strings.Contains(got, "I'd love to learn more") {
			t.Errorf("missing generic addition:\n%s", got)
		}
	})

	t.Run("unknown context with other intent unchanged", func(t *testing.T) {
		got := c.Customize(baseResponse, "a small local bakery chain", intent.IntentBehavioral)
		if got != baseResponse {
			t.Errorf("Customize() = %q, want unchanged base", got)
		}
	})
}
