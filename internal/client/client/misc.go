package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/chromestatus/csclient/internal/client/models"
)

func (c *CSClient) GetStars(ctx context.Context) ([]int64, error) {
	var resp models.StarsResponse
	if err := c.doGet(ctx, "/currentuser/stars", &resp); err != nil {
		return nil, err
	}
	return resp.FeatureIDs, nil
}

func (c *CSClient) SetStar(ctx context.Context, featureID int64, starred bool) error {
	body := map[string]any{"featureId": featureID, "starred": starred}
	return c.doPost(ctx, "/currentuser/stars", body, nil)
}

// GetPermissions returns nil for an anonymous user.
func (c *CSClient) GetPermissions(ctx context.Context, returnPairedUser bool) (*models.Permissions, error) {
	path := "/currentuser/permissions"
	if returnPairedUser {
		path = withQuery(path, url.Values{"returnPairedUser": {""}})
	}
	var resp models.PermissionsResponse
	if err := c.doGet(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *CSClient) GetSettings(ctx context.Context) (*models.Settings, error) {
	var s models.Settings
	if err := c.doGet(ctx, "/currentuser/settings", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *CSClient) SetSettings(ctx context.Context, notify bool) error {
	return c.doPost(ctx, "/currentuser/settings", map[string]any{"notify": notify}, nil)
}

func (c *CSClient) GetDismissedCues(ctx context.Context) ([]string, error) {
	var resp models.DismissedCuesResponse
	if err := c.doGet(ctx, "/currentuser/cues", &resp); err != nil {
		return nil, err
	}
	return resp.Cues, nil
}

func (c *CSClient) DismissCue(ctx context.Context, cue string) error {
	return c.doPost(ctx, "/currentuser/cues", map[string]any{"cue": cue}, nil)
}

func (c *CSClient) GetChannels(ctx context.Context) (models.Channels, error) {
	var ch models.Channels
	if err := c.doGet(ctx, "/channels", &ch); err != nil {
		return nil, err
	}
	return ch, nil
}

// Ping requests the channel schedule anonymously and discards it.
func (c *CSClient) Ping(ctx context.Context) error {
	return c.doFetch(ctx, "/channels", http.MethodGet, nil, false, nil)
}

// GetSpecifiedChannels returns milestone details for start..end inclusive,
// keyed by milestone number.
func (c *CSClient) GetSpecifiedChannels(ctx context.Context, start, end int) (map[string]models.Channel, error) {
	v := url.Values{"start": {strconv.Itoa(start)}, "end": {strconv.Itoa(end)}}
	var ch map[string]models.Channel
	if err := c.doGet(ctx, withQuery("/channels", v), &ch); err != nil {
		return nil, err
	}
	return ch, nil
}

func (c *CSClient) GetBlinkComponents(ctx context.Context) ([]models.BlinkComponent, error) {
	var resp models.BlinkComponentsResponse
	if err := c.doGet(ctx, "/blinkcomponents", &resp); err != nil {
		return nil, err
	}
	return resp.Components, nil
}

func (c *CSClient) GetOriginTrials(ctx context.Context) ([]models.OriginTrial, error) {
	var resp models.OriginTrialsResponse
	if err := c.doGet(ctx, "/origintrials", &resp); err != nil {
		return nil, err
	}
	return resp.OriginTrials, nil
}

func (c *CSClient) CreateOriginTrial(ctx context.Context, featureID, stageID int64, body map[string]any) (*models.Message, error) {
	var msg models.Message
	if err := c.doPost(ctx, fmt.Sprintf("/origintrials/%d/%d/create", featureID, stageID), body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *CSClient) ExtendOriginTrial(ctx context.Context, featureID, stageID int64, body map[string]any) (*models.Message, error) {
	var msg models.Message
	if err := c.doPatch(ctx, fmt.Sprintf("/origintrials/%d/%d/extend", featureID, stageID), body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// SignIn exchanges a sign-in provider credential for a backend session.
// The held token is dropped so the next call fetches one for the new user.
func (c *CSClient) SignIn(ctx context.Context, credential string) error {
	body := map[string]any{"credential": credential}
	if err := c.doFetch(ctx, "/login", http.MethodPost, body, false, nil); err != nil {
		return err
	}
	c.ClearToken()
	return nil
}

// SignOut ends the backend session. The held token is discarded even when
// the call fails.
func (c *CSClient) SignOut(ctx context.Context) error {
	defer c.ClearToken()
	return c.doFetch(ctx, "/logout", http.MethodPost, nil, false, nil)
}
