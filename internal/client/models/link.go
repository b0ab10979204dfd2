package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// LinkType tags the shape of FeatureLink.Information.
type LinkType string

const (
	LinkTypeGithubIssue       LinkType = "github_issue"
	LinkTypeGithubPullRequest LinkType = "github_pull_request"
	LinkTypeChromiumBug       LinkType = "chromium_bug"
	LinkTypeWebKitBug         LinkType = "webkit_bug"
	LinkTypeMozillaBug        LinkType = "mozilla_bug"
	LinkTypeSpecs             LinkType = "specs"
	LinkTypeMDNDocs           LinkType = "mdn_docs"
	LinkTypeWebStatus         LinkType = "web_status"
	LinkTypeWeb               LinkType = "web"
)

var (
	ErrLinkMissingURL         = errors.New("feature link has no url")
	ErrLinkInformationNotJSON = errors.New("feature link information must be a JSON object")
)

// FeatureLink is an external URL attached to a feature. Information is a
// tagged union: its shape depends only on Type.
type FeatureLink struct {
	ID            int64           `json:"id"`
	FeatureIDs    []int64         `json:"feature_ids,omitempty"`
	URL           string          `json:"url"`
	Type          LinkType        `json:"type"`
	Information   json.RawMessage `json:"information"`
	HTTPErrorCode *int            `json:"http_error_code"`
}

// Validate checks the parts of a link that do not depend on its type.
func (l FeatureLink) Validate() error {
	if l.URL == "" {
		return ErrLinkMissingURL
	}
	info := bytes.TrimSpace(l.Information)
	if len(info) == 0 || bytes.Equal(info, []byte("null")) {
		return nil
	}
	if info[0] != '{' || !json.Valid(info) {
		return ErrLinkInformationNotJSON
	}
	return nil
}

// Broken reports whether the last validation fetch of the URL failed.
func (l FeatureLink) Broken() bool {
	return l.HTTPErrorCode != nil && *l.HTTPErrorCode >= 400
}

// Unwrap decodes Information into the struct matching Type. Unknown types and
// plain web links decode into map[string]any; absent information yields nil.
func (l FeatureLink) Unwrap() (any, error) {
	info := bytes.TrimSpace(l.Information)
	if len(info) == 0 || bytes.Equal(info, []byte("null")) {
		return nil, nil
	}

	switch l.Type {
	case LinkTypeGithubIssue:
		var v GithubIssueInfo
		return v, json.Unmarshal(info, &v)
	case LinkTypeGithubPullRequest:
		var v GithubPullRequestInfo
		return v, json.Unmarshal(info, &v)
	case LinkTypeChromiumBug:
		var v ChromiumBugInfo
		return v, json.Unmarshal(info, &v)
	case LinkTypeWebKitBug, LinkTypeMozillaBug:
		var v BugzillaInfo
		return v, json.Unmarshal(info, &v)
	case LinkTypeSpecs:
		var v SpecInfo
		return v, json.Unmarshal(info, &v)
	case LinkTypeMDNDocs:
		var v MDNDocsInfo
		return v, json.Unmarshal(info, &v)
	case LinkTypeWebStatus:
		var v WebStatusInfo
		return v, json.Unmarshal(info, &v)
	default:
		var m map[string]any
		if err := json.Unmarshal(info, &m); err != nil {
			return nil, err
		}
		return m, nil
	}
}

type GithubIssueInfo struct {
	Number      int      `json:"number"`
	Title       string   `json:"title"`
	State       string   `json:"state"`
	StateReason string   `json:"state_reason"`
	Labels      []string `json:"labels"`
	Assignee    string   `json:"assignee_login"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	ClosedAt    string   `json:"closed_at"`
	URL         string   `json:"url"`
}

type GithubPullRequestInfo struct {
	GithubIssueInfo
	Merged bool `json:"merged"`
	Draft  bool `json:"draft"`
}

type ChromiumBugInfo struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Owner    string `json:"owner"`
	Created  string `json:"created"`
	Modified string `json:"modified"`
	Closed   string `json:"closed"`
}

type BugzillaInfo struct {
	ID         int64  `json:"id"`
	Summary    string `json:"summary"`
	Status     string `json:"status"`
	Resolution string `json:"resolution"`
	Product    string `json:"product"`
	Component  string `json:"component"`
	AssignedTo string `json:"assigned_to"`
}

type SpecInfo struct {
	Title string `json:"title"`
	Hash  string `json:"hash"`
}

type MDNDocsInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type WebStatusInfo struct {
	FeatureID string `json:"feature_id"`
	Name      string `json:"name"`
	Baseline  string `json:"baseline_status"`
}

// FeatureLinksResponse is returned by the feature_links endpoint.
type FeatureLinksResponse struct {
	Data          []FeatureLink `json:"data"`
	HasStaleLinks bool          `json:"has_stale_links"`
}

// FeatureLinksSummary aggregates link counts across all features.
type FeatureLinksSummary struct {
	TotalCount           int            `json:"total_count"`
	CoveredCount         int            `json:"covered_count"`
	UncoveredCount       int            `json:"uncovered_count"`
	ErrorCount           int            `json:"error_count"`
	HTTPErrorCount       int            `json:"http_error_count"`
	LinkTypes            map[string]int `json:"link_types"`
	UncoveredLinkDomains map[string]int `json:"uncovered_link_domains"`
	ErrorLinkDomains     map[string]int `json:"error_link_domains"`
}
