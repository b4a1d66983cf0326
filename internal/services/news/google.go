package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"StockPulse/internal/domain/models"
	domsvc "StockPulse/internal/domain/service"
	"StockPulse/internal/service/metrics"
	xlogger "StockPulse/pkg/logger"
)

// GoogleNews retrieves recent headlines from the Google News RSS search feed.
// Titles and links only; polarity is scored downstream.
type GoogleNews struct {
	baseURL  string
	maxItems int
	timeout  time.Duration
	parser   *gofeed.Parser
	logger   *xlogger.Logger
}

func NewGoogleNews(baseURL string, maxItems int, timeout time.Duration, l *xlogger.Logger) *GoogleNews {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	return &GoogleNews{
		baseURL:  baseURL,
		maxItems: maxItems,
		timeout:  timeout,
		parser:   parser,
		logger:   l,
	}
}

// Fetch returns up to maxItems headlines for the symbol published since the
// given date. The context bounds the whole retrieval.
func (g *GoogleNews) Fetch(ctx context.Context, symbol string, since time.Time) ([]models.Headline, error) {
	query := url.QueryEscape(fmt.Sprintf("%s stock news after:%s", symbol, since.Format("2006-01-02")))
	feedURL := fmt.Sprintf("%s/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en", g.baseURL, query)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	feed, err := g.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		metrics.NewsFetchErrors.Inc()
		if g.logger != nil {
			g.logger.Warn("news fetch failed", xlogger.String("symbol", symbol), xlogger.Error(err))
		}
		return nil, fmt.Errorf("fetch headlines for %s: %w", symbol, err)
	}

	items := feed.Items
	if len(items) > g.maxItems {
		items = items[:g.maxItems]
	}

	headlines := make([]models.Headline, 0, len(items))
	for _, item := range items {
		if item == nil || item.Title == "" {
			continue
		}
		headlines = append(headlines, models.Headline{
			Title: item.Title,
			Link:  item.Link,
		})
	}
	metrics.HeadlinesFetched.Add(float64(len(headlines)))
	return headlines, nil
}

var _ domsvc.HeadlineSource = (*GoogleNews)(nil)
