package services

import (
	"net/url"
	"strings"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
)

// AffiliateConfig carries the monetization tags. Constructed in main and
// injected; there is no ambient singleton.
type AffiliateConfig struct {
	AmazonTag      string
	MercadoLivreID string
}

// AffiliateService rewrites store URLs into affiliate links. URLs it does not
// recognize (or that it cannot parse) pass through untouched.
type AffiliateService interface {
	TransformURL(rawURL string, storeName string) string
	Enabled() bool
}

type affiliateService struct {
	log *logger.Logger
	cfg AffiliateConfig
}

func NewAffiliateService(baseLog *logger.Logger, cfg AffiliateConfig) AffiliateService {
	return &affiliateService{
		log: baseLog.With("service", "AffiliateService"),
		cfg: cfg,
	}
}

func (as *affiliateService) TransformURL(rawURL string, storeName string) string {
	if rawURL == "" {
		return rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	hostname := strings.ToLower(parsed.Hostname())

	if strings.Contains(hostname, "amazon") && as.cfg.AmazonTag != "" {
		return as.transformAmazon(parsed)
	}
	if strings.Contains(hostname, "mercadolivre") || strings.Contains(hostname, "mercadolibre") {
		if as.cfg.MercadoLivreID != "" {
			return as.transformMercadoLivre(parsed)
		}
	}
	return rawURL
}

// transformAmazon swaps in our Associates tag, replacing any existing one.
func (as *affiliateService) transformAmazon(parsed *url.URL) string {
	query := parsed.Query()
	query.Del("tag")
	query.Set("tag", as.cfg.AmazonTag)
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func (as *affiliateService) transformMercadoLivre(parsed *url.URL) string {
	query := parsed.Query()
	query.Set("aff_id", as.cfg.MercadoLivreID)
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func (as *affiliateService) Enabled() bool {
	return as.cfg.AmazonTag != "" || as.cfg.MercadoLivreID != ""
}
