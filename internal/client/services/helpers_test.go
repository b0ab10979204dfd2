package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/chromestatus/csclient/internal/client/client"
	"github.com/chromestatus/csclient/internal/client/models"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func getMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return v
}

// ---- fake client ----

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	token models.Token

	SignInErr  error
	SignOutErr error

	Perms    *models.Permissions
	PermsErr error

	Pages     []models.FeatureList
	SearchErr error
	Searches  []client.SearchParams

	Features   map[int64]*models.Feature
	FeatureErr error

	Links    []models.FeatureLink
	Stars    []int64
	StarCall struct {
		ID int64
		On bool
	}
	Gates    []models.Gate
	Comments []models.Comment
	VoteCall [3]int64
	Posted   []string

	Channels    models.Channels
	ChannelsErr error
	PingErr     error
	Pings       int
	Components  []models.BlinkComponent

	LastCredential string
	SignOutCalls   int
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Token() models.Token                          { return f.token }
func (f *fakeClient) SetToken(t models.Token)                      { f.token = t }
func (f *fakeClient) EnsureTokenIsValid(ctx context.Context) error { return nil }

func (f *fakeClient) SignIn(ctx context.Context, credential string) error {
	f.LastCredential = credential
	return f.SignInErr
}

func (f *fakeClient) SignOut(ctx context.Context) error {
	f.SignOutCalls++
	f.token = models.Token{}
	return f.SignOutErr
}

func (f *fakeClient) GetPermissions(ctx context.Context, returnPairedUser bool) (*models.Permissions, error) {
	return f.Perms, f.PermsErr
}

func (f *fakeClient) GetFeature(ctx context.Context, featureID int64) (*models.Feature, error) {
	if f.FeatureErr != nil {
		return nil, f.FeatureErr
	}
	if feat, ok := f.Features[featureID]; ok {
		return feat, nil
	}
	return nil, &client.FeatureNotFoundError{FeatureID: featureID}
}

func (f *fakeClient) SearchFeatures(ctx context.Context, p client.SearchParams) (*models.FeatureList, error) {
	f.Searches = append(f.Searches, p)
	if f.SearchErr != nil {
		return nil, f.SearchErr
	}
	i := len(f.Searches) - 1
	if i >= len(f.Pages) {
		return &models.FeatureList{}, nil
	}
	return &f.Pages[i], nil
}

func (f *fakeClient) GetFeatureLinks(ctx context.Context, featureID int64, updateStaleLinks bool) (*models.FeatureLinksResponse, error) {
	return &models.FeatureLinksResponse{Data: f.Links}, nil
}

func (f *fakeClient) GetStars(ctx context.Context) ([]int64, error) { return f.Stars, nil }

func (f *fakeClient) SetStar(ctx context.Context, featureID int64, starred bool) error {
	f.StarCall.ID, f.StarCall.On = featureID, starred
	return nil
}

func (f *fakeClient) GetGates(ctx context.Context, featureID int64) ([]models.Gate, error) {
	return f.Gates, nil
}

func (f *fakeClient) GetComments(ctx context.Context, featureID, gateID int64) ([]models.Comment, error) {
	return f.Comments, nil
}

func (f *fakeClient) PostComment(ctx context.Context, featureID, gateID int64, comment string, postToThreadType int) (*models.Message, error) {
	f.Posted = append(f.Posted, comment)
	return &models.Message{Message: "Done"}, nil
}

func (f *fakeClient) SetVote(ctx context.Context, featureID, gateID int64, state int) (*models.Message, error) {
	f.VoteCall = [3]int64{featureID, gateID, int64(state)}
	return &models.Message{Message: "Done"}, nil
}

func (f *fakeClient) Ping(ctx context.Context) error {
	f.Pings++
	return f.PingErr
}

func (f *fakeClient) GetChannels(ctx context.Context) (models.Channels, error) {
	return f.Channels, f.ChannelsErr
}

func (f *fakeClient) GetBlinkComponents(ctx context.Context) ([]models.BlinkComponent, error) {
	return f.Components, nil
}
