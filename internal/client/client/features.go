package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/chromestatus/csclient/internal/client/models"
)

// SearchParams narrows a feature search. Zero values are omitted.
type SearchParams struct {
	Query          string
	ShowEnterprise bool
	Sort           string
	Start          int
	Num            int
}

func (p SearchParams) values() url.Values {
	v := url.Values{}
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if p.ShowEnterprise {
		v.Set("showEnterprise", "")
	}
	if p.Sort != "" {
		v.Set("sort", p.Sort)
	}
	if p.Start > 0 {
		v.Set("start", strconv.Itoa(p.Start))
	}
	if p.Num > 0 {
		v.Set("num", strconv.Itoa(p.Num))
	}
	return v
}

func withQuery(path string, v url.Values) string {
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

// GetFeature loads one feature. A 404 becomes *FeatureNotFoundError.
func (c *CSClient) GetFeature(ctx context.Context, featureID int64) (*models.Feature, error) {
	var f models.Feature
	err := c.doGet(ctx, fmt.Sprintf("/features/%d", featureID), &f)
	if err != nil {
		var he *HTTPError
		if errors.As(err, &he) && he.Status == http.StatusNotFound {
			return nil, &FeatureNotFoundError{FeatureID: featureID}
		}
		return nil, err
	}
	return &f, nil
}

func (c *CSClient) SearchFeatures(ctx context.Context, p SearchParams) (*models.FeatureList, error) {
	var list models.FeatureList
	if err := c.doGet(ctx, withQuery("/features", p.values()), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetFeaturesInMilestone returns features grouped by their status text.
func (c *CSClient) GetFeaturesInMilestone(ctx context.Context, milestone int) (map[string][]models.Feature, error) {
	var byStatus map[string][]models.Feature
	v := url.Values{"milestone": {strconv.Itoa(milestone)}}
	if err := c.doGet(ctx, withQuery("/features", v), &byStatus); err != nil {
		return nil, err
	}
	return byStatus, nil
}

func (c *CSClient) CreateFeature(ctx context.Context, fields map[string]any) (int64, error) {
	var created models.CreatedFeature
	if err := c.doPost(ctx, "/features/create", fields, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (c *CSClient) UpdateFeature(ctx context.Context, changes models.FeatureChanges) (*models.Message, error) {
	var msg models.Message
	if err := c.doPatch(ctx, "/features", changes, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *CSClient) DeleteFeature(ctx context.Context, featureID int64) (*models.Message, error) {
	var msg models.Message
	if err := c.doDelete(ctx, fmt.Sprintf("/features/%d", featureID), &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *CSClient) GetFeatureProcess(ctx context.Context, featureID int64) (*models.Process, error) {
	var p models.Process
	if err := c.doGet(ctx, fmt.Sprintf("/features/%d/process", featureID), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetFeatureProgress maps progress item names to their completion detail.
func (c *CSClient) GetFeatureProgress(ctx context.Context, featureID int64) (map[string]any, error) {
	var progress map[string]any
	if err := c.doGet(ctx, fmt.Sprintf("/features/%d/progress", featureID), &progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (c *CSClient) GetStage(ctx context.Context, featureID, stageID int64) (*models.Stage, error) {
	var s models.Stage
	if err := c.doGet(ctx, fmt.Sprintf("/features/%d/stages/%d", featureID, stageID), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *CSClient) CreateStage(ctx context.Context, featureID int64, body map[string]any) (int64, error) {
	var created models.CreatedStage
	if err := c.doPost(ctx, fmt.Sprintf("/features/%d/stages", featureID), body, &created); err != nil {
		return 0, err
	}
	return created.StageID, nil
}

func (c *CSClient) UpdateStage(ctx context.Context, featureID, stageID int64, body map[string]any) (*models.Message, error) {
	var msg models.Message
	if err := c.doPatch(ctx, fmt.Sprintf("/features/%d/stages/%d", featureID, stageID), body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *CSClient) DeleteStage(ctx context.Context, featureID, stageID int64) (*models.Message, error) {
	var msg models.Message
	if err := c.doDelete(ctx, fmt.Sprintf("/features/%d/stages/%d", featureID, stageID), &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetFeatureLinks returns the validated links of a feature. With
// updateStaleLinks the backend re-fetches outdated link information.
func (c *CSClient) GetFeatureLinks(ctx context.Context, featureID int64, updateStaleLinks bool) (*models.FeatureLinksResponse, error) {
	v := url.Values{
		"feature_id":         {strconv.FormatInt(featureID, 10)},
		"update_stale_links": {strconv.FormatBool(updateStaleLinks)},
	}
	var resp models.FeatureLinksResponse
	if err := c.doGet(ctx, withQuery("/feature_links", v), &resp); err != nil {
		return nil, err
	}
	for i, l := range resp.Data {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("feature link %d: %w", i, err)
		}
	}
	return &resp, nil
}

func (c *CSClient) GetFeatureLinksSummary(ctx context.Context) (*models.FeatureLinksSummary, error) {
	var s models.FeatureLinksSummary
	if err := c.doGet(ctx, "/feature_links_summary", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
