package services

import (
	"net/url"
	"testing"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
)

func TestAmazonTagReplaced(t *testing.T) {
	svc := NewAffiliateService(logger.NewNop(), AffiliateConfig{AmazonTag: "picklematch-20"})

	out := svc.TransformURL("https://www.amazon.com.br/dp/B0TEST?tag=someoneelse-20&ref=sr_1_1", "Amazon BR")
	parsed, err := url.Parse(out)
	if err != nil {
		t.Fatalf("parse transformed url: %v", err)
	}
	query := parsed.Query()
	if got := query.Get("tag"); got != "picklematch-20" {
		t.Fatalf("tag = %q, want our affiliate tag", got)
	}
	if got := query.Get("ref"); got != "sr_1_1" {
		t.Fatalf("unrelated params must survive, ref = %q", got)
	}
}

func TestMercadoLivreAffiliateID(t *testing.T) {
	svc := NewAffiliateService(logger.NewNop(), AffiliateConfig{MercadoLivreID: "ml-12345"})

	out := svc.TransformURL("https://produto.mercadolivre.com.br/MLB-123-paddle", "Mercado Livre")
	parsed, err := url.Parse(out)
	if err != nil {
		t.Fatalf("parse transformed url: %v", err)
	}
	if got := parsed.Query().Get("aff_id"); got != "ml-12345" {
		t.Fatalf("aff_id = %q, want ml-12345", got)
	}
}

func TestUnknownStorePassesThrough(t *testing.T) {
	svc := NewAffiliateService(logger.NewNop(), AffiliateConfig{AmazonTag: "picklematch-20", MercadoLivreID: "ml-12345"})

	raw := "https://www.pickleballcentral.com/paddle?id=1"
	if out := svc.TransformURL(raw, "Pickleball Central"); out != raw {
		t.Fatalf("unknown store URL must pass through, got %q", out)
	}
	if out := svc.TransformURL("", "Amazon BR"); out != "" {
		t.Fatalf("empty URL must pass through")
	}
}

func TestDisabledConfigNeverRewrites(t *testing.T) {
	svc := NewAffiliateService(logger.NewNop(), AffiliateConfig{})

	raw := "https://www.amazon.com.br/dp/B0TEST?tag=someoneelse-20"
	if out := svc.TransformURL(raw, "Amazon BR"); out != raw {
		t.Fatalf("no config, no rewrite: got %q", out)
	}
	if svc.Enabled() {
		t.Fatalf("Enabled() must be false without any affiliate tags")
	}
}
