package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/chromestatus/csclient/internal/client/config"
	"github.com/chromestatus/csclient/internal/client/filter"
	"github.com/chromestatus/csclient/internal/client/models"
	"github.com/chromestatus/csclient/internal/client/services"
	"github.com/chromestatus/csclient/internal/logging"
)

type fakeAuth struct {
	signInCred  string
	signInEmail string
	signInErr   error

	signOutCalled bool
	signOutErr    error

	status    services.Status
	statusErr error

	pingErr error
}

func (f *fakeAuth) SignIn(_ context.Context, credential string) (string, error) {
	f.signInCred = credential
	return f.signInEmail, f.signInErr
}
func (f *fakeAuth) SignOut(context.Context) error {
	f.signOutCalled = true
	return f.signOutErr
}
func (f *fakeAuth) Status(context.Context) (services.Status, error) { return f.status, f.statusErr }
func (f *fakeAuth) Ping(context.Context) error                      { return f.pingErr }

type fakeFeatures struct {
	panel *filter.Panel

	refreshQuery string
	refreshN     int
	refreshErr   error

	searchErr error

	getOut    *models.Feature
	getCached bool
	getErr    error

	starID int64
	starOn bool

	starred    []int64
	links      []models.FeatureLink
	gates      []models.Gate
	comments   []models.Comment
	posted     string
	voteArgs   [3]int64
	channels   models.Channels
	components []models.BlinkComponent
	err        error
}

func (f *fakeFeatures) Refresh(_ context.Context, query string) (int, error) {
	f.refreshQuery = query
	return f.refreshN, f.refreshErr
}
func (f *fakeFeatures) Search(_ context.Context, query, category string) ([]models.Feature, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.panel.Filter(query, category), nil
}
func (f *fakeFeatures) Get(context.Context, int64) (*models.Feature, bool, error) {
	return f.getOut, f.getCached, f.getErr
}
func (f *fakeFeatures) Star(_ context.Context, id int64, on bool) error {
	f.starID, f.starOn = id, on
	return f.err
}
func (f *fakeFeatures) Starred(context.Context) ([]int64, error) { return f.starred, f.err }
func (f *fakeFeatures) Links(context.Context, int64) ([]models.FeatureLink, error) {
	return f.links, f.err
}
func (f *fakeFeatures) Gates(context.Context, int64) ([]models.Gate, error) { return f.gates, f.err }
func (f *fakeFeatures) Comments(context.Context, int64, int64) ([]models.Comment, error) {
	return f.comments, f.err
}
func (f *fakeFeatures) Comment(_ context.Context, _, _ int64, text string) error {
	f.posted = text
	return f.err
}
func (f *fakeFeatures) Vote(_ context.Context, id, gateID int64, state int) error {
	f.voteArgs = [3]int64{id, gateID, int64(state)}
	return f.err
}
func (f *fakeFeatures) Channels(context.Context) (models.Channels, error) { return f.channels, f.err }
func (f *fakeFeatures) Components(context.Context) ([]models.BlinkComponent, error) {
	return f.components, f.err
}

// newTestApp builds an App around fakes. The panel observer writes into the
// returned buffer like the real one.
func newTestApp(t *testing.T, as *fakeAuth, fs *fakeFeatures) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	loc := &filter.Location{}
	a := &App{
		config:         &config.Config{BaseURL: "https://chromestatus.example/api/v0"},
		logger:         logging.Nop(),
		authService:    as,
		featureService: fs,
		location:       loc,
		out:            out,
		mode:           ModeOnline,
	}
	if fs != nil {
		fs.panel = filter.NewPanel(loc, filter.Options{})
		fs.panel.Subscribe(filter.ObserverFunc(a.renderFilterEvent))
	}
	return a, out
}
