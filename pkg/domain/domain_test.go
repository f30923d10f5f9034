package domain_test

import (
	"errors"
	"testing"

	"github.com/lumendata/govcat/pkg/domain"
	"github.com/lumendata/govcat/pkg/utils/pointer"
)

func TestAsStatus(t *testing.T) {
	for _, s := range []string{"proposed", "draft", "active", "deprecated", "retired"} {
		t.Run("it accepts "+s, func(t *testing.T) {
			actual, err := domain.AsStatus(s)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if actual.String() != s {
				t.Errorf("wrong status: (actual, expected) = (%s, %s)", actual, s)
			}
		})
	}

	for name, s := range map[string]string{
		"an unknown word": "published",
		"the empty word":  "",
		"a cased variant": "Active",
	} {
		t.Run("it rejects "+name, func(t *testing.T) {
			if _, err := domain.AsStatus(s); !errors.Is(err, domain.ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestContractSpecValidate(t *testing.T) {
	t.Run("it fills kind and apiVersion defaults", func(t *testing.T) {
		spec := domain.ContractSpec{Version: "1.0.0", Status: domain.StatusDraft}
		if err := spec.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.Kind != domain.KindDataContract {
			t.Errorf("kind is not defaulted: %q", spec.Kind)
		}
		if spec.ApiVersion != domain.DefaultContractApiVersion {
			t.Errorf("apiVersion is not defaulted: %q", spec.ApiVersion)
		}
	})

	for name, spec := range map[string]domain.ContractSpec{
		"a wrong kind":      {Kind: "Dataset", Version: "1.0.0", Status: domain.StatusDraft},
		"a missing version": {Status: domain.StatusDraft},
		"an unknown status": {Version: "1.0.0", Status: "published"},
		"a missing status":  {Version: "1.0.0"},
	} {
		t.Run("it rejects "+name, func(t *testing.T) {
			if err := spec.Validate(); !errors.Is(err, domain.ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestContractDeltaValidate(t *testing.T) {
	t.Run("it accepts an empty delta", func(t *testing.T) {
		if err := (domain.ContractDelta{}).Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("it rejects emptying the version", func(t *testing.T) {
		delta := domain.ContractDelta{Version: pointer.Ref("")}
		if err := delta.Validate(); !errors.Is(err, domain.ErrInvalid) {
			t.Errorf("expected ErrInvalid, got %v", err)
		}
	})

	t.Run("it rejects an unknown status", func(t *testing.T) {
		delta := domain.ContractDelta{Status: pointer.Ref(domain.Status("published"))}
		if err := delta.Validate(); !errors.Is(err, domain.ErrInvalid) {
			t.Errorf("expected ErrInvalid, got %v", err)
		}
	})
}

func TestProductSpecValidate(t *testing.T) {
	t.Run("it fills kind and apiVersion defaults", func(t *testing.T) {
		spec := domain.ProductSpec{Status: domain.StatusDraft}
		if err := spec.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.Kind != domain.KindDataProduct {
			t.Errorf("kind is not defaulted: %q", spec.Kind)
		}
		if spec.ApiVersion != domain.DefaultProductApiVersion {
			t.Errorf("apiVersion is not defaulted: %q", spec.ApiVersion)
		}
	})

	t.Run("it rejects an unknown status", func(t *testing.T) {
		spec := domain.ProductSpec{Status: "published"}
		if err := spec.Validate(); !errors.Is(err, domain.ErrInvalid) {
			t.Errorf("expected ErrInvalid, got %v", err)
		}
	})
}

func TestSchemaPropertySpecValidate(t *testing.T) {
	t.Run("it accepts a minimal property", func(t *testing.T) {
		spec := domain.SchemaPropertySpec{Name: "order_id"}
		if err := spec.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	for name, spec := range map[string]domain.SchemaPropertySpec{
		"a missing name": {},
		"an unknown logical type": {
			Name: "order_id", LogicalType: pointer.Ref(domain.LogicalType("varchar")),
		},
		"an unknown classification": {
			Name: "order_id", Classification: pointer.Ref(domain.Classification("secret")),
		},
	} {
		t.Run("it rejects "+name, func(t *testing.T) {
			if err := spec.Validate(); !errors.Is(err, domain.ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestQualityRuleSpecValidate(t *testing.T) {
	t.Run("it defaults the type to library", func(t *testing.T) {
		spec := domain.QualityRuleSpec{Rule: pointer.Ref("duplicateCount")}
		if err := spec.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.Type != domain.QualityLibrary {
			t.Errorf("type is not defaulted: %q", spec.Type)
		}
	})

	t.Run("it rejects an unknown type", func(t *testing.T) {
		spec := domain.QualityRuleSpec{Type: "regex"}
		if err := spec.Validate(); !errors.Is(err, domain.ErrInvalid) {
			t.Errorf("expected ErrInvalid, got %v", err)
		}
	})

	t.Run("it rejects an unknown dimension", func(t *testing.T) {
		spec := domain.QualityRuleSpec{
			Dimension: pointer.Ref(domain.QualityDimension("freshness")),
		}
		if err := spec.Validate(); !errors.Is(err, domain.ErrInvalid) {
			t.Errorf("expected ErrInvalid, got %v", err)
		}
	})
}

func TestSupportChannelSpecValidate(t *testing.T) {
	t.Run("it accepts a channel with valid URLs, tool and scope", func(t *testing.T) {
		spec := domain.SupportChannelSpec{
			Channel:       "#data-help",
			URL:           "https://example.slack.com/archives/C123",
			InvitationURL: pointer.Ref("https://example.slack.com/join"),
			Tool:          pointer.Ref(domain.ToolSlack),
			Scope:         pointer.Ref(domain.ScopeInteractive),
		}
		if err := spec.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	for name, spec := range map[string]domain.SupportChannelSpec{
		"a missing channel name": {URL: "https://example.com"},
		"a non-URL":              {Channel: "#data-help", URL: "not a url"},
		"a scheme-less URL":      {Channel: "#data-help", URL: "example.com/path"},
		"a bad invitation URL": {
			Channel: "#data-help", URL: "https://example.com",
			InvitationURL: pointer.Ref("nope"),
		},
		"an unknown tool": {
			Channel: "#data-help", URL: "https://example.com",
			Tool: pointer.Ref(domain.SupportTool("carrier-pigeon")),
		},
		"an unknown scope": {
			Channel: "#data-help", URL: "https://example.com",
			Scope: pointer.Ref(domain.SupportScope("everything")),
		},
	} {
		t.Run("it rejects "+name, func(t *testing.T) {
			if err := spec.Validate(); !errors.Is(err, domain.ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestTeamMemberSpecValidate(t *testing.T) {
	t.Run("it requires the username", func(t *testing.T) {
		if err := (domain.TeamMemberSpec{}).Validate(); !errors.Is(err, domain.ErrInvalid) {
			t.Errorf("expected ErrInvalid, got %v", err)
		}
	})
}

func TestIdentityValidate(t *testing.T) {
	t.Run("it accepts a cloudflare identity", func(t *testing.T) {
		identity := domain.Identity{
			Email: "alice@example.com", Source: domain.SourceCloudflare,
		}
		if err := identity.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	for name, identity := range map[string]domain.Identity{
		"a malformed email": {Email: "alice", Source: domain.SourceLocal},
		"an unknown source": {Email: "alice@example.com", Source: "ldap"},
	} {
		t.Run("it rejects "+name, func(t *testing.T) {
			if err := identity.Validate(); !errors.Is(err, domain.ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}
