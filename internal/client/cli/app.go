package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
	"sync"
	"time"

	"github.com/chromestatus/csclient/internal/client/auth"
	"github.com/chromestatus/csclient/internal/client/client"
	"github.com/chromestatus/csclient/internal/client/config"
	"github.com/chromestatus/csclient/internal/client/filter"
	"github.com/chromestatus/csclient/internal/client/services"
	"github.com/chromestatus/csclient/internal/logging"
	"golang.org/x/time/rate"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	authService    services.AuthService
	featureService services.FeatureService
	location       *filter.Location
	reader         *bufio.Reader
	out            io.Writer

	mu    sync.Mutex
	email string
	mode  Mode
}

// NewApp opens the cache at c.DBPath and builds the API client and services.
// The client refreshes its token from the backend through the cache, and
// shares one cookie jar with the token source so both see the session.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DBPath, "error", err)
		return nil, err
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	httpClient := &http.Client{Jar: jar}

	source := auth.NewCachedSource(
		auth.NewServerSource(c.BaseURL, httpClient, logger),
		auth.NewMetadataStore(db),
		time.Now,
		logger,
	)

	opts := []client.Option{
		client.WithHTTPClient(httpClient),
		client.WithTokenSource(source),
		client.WithLogger(logger),
		client.WithRequestTimeout(c.RequestTimeout),
	}
	if c.RequestsPerSecond > 0 {
		opts = append(opts, client.WithRateLimiter(rate.NewLimiter(rate.Limit(c.RequestsPerSecond), 1)))
	}
	apiClient := client.NewCSClient(c.BaseURL, opts...)

	location := &filter.Location{}
	panel := filter.NewPanel(location, filter.Options{})

	a := &App{
		config:         c,
		logger:         logger,
		db:             db,
		authService:    services.NewAuthService(apiClient, db),
		featureService: services.NewFeatureService(apiClient, db, panel, logger),
		location:       location,
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
		mode:           ModeOnline,
	}
	panel.Subscribe(filter.ObserverFunc(a.renderFilterEvent))
	return a, nil
}

// Run starts the REPL and releases the cache when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isSignedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.email != ""
}

func (a *App) setEmail(email string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.email = email
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, fmt.Sprintf("Switched to %s mode", mode))
	}
}

// StartOnlineStatusWatcher pings the backend every interval and flips the
// mode accordingly. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.authService.Ping(pingCtx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
	} else {
		a.setMode(ctx, ModeOnline)
	}
}
