package feed

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single feed request.
const DefaultTimeout = 10 * time.Second

type Service interface {
	// Fetch downloads and decodes the forecast XML published at url.
	Fetch(ctx context.Context, url string) (Bulletin, error)
}

var _ Service = (*httpService)(nil)

// NewService returns a Service backed by an HTTP client with the given
// timeout. A zero timeout means DefaultTimeout.
func NewService(timeout time.Duration, logger *zap.Logger) Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &httpService{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type httpService struct {
	client *http.Client
	logger *zap.Logger
}

func (s *httpService) Fetch(ctx context.Context, url string) (Bulletin, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Bulletin{}, newFetchError(url, err)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return Bulletin{}, newFetchError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Bulletin{}, newStatusError(url, resp.StatusCode)
	}

	b, err := Decode(resp.Body)
	if err != nil {
		return Bulletin{}, newParseError(url, err)
	}

	s.logger.Debug("feed fetched",
		zap.String("url", url),
		zap.Int("forecasts", len(b.Forecasts)),
		zap.Duration("elapsed", time.Since(start)))
	return b, nil
}
