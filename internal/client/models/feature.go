package models

// Feature is a tracked web platform capability.
type Feature struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Summary     string    `json:"summary"`
	Category    string    `json:"category"`
	CategoryInt int       `json:"category_int,omitempty"`
	FeatureType string    `json:"feature_type,omitempty"`
	Standards   Standards `json:"standards"`
	Browsers    Browsers  `json:"browsers"`
	Resources   Resources `json:"resources"`
	Created     Edit      `json:"created"`
	Updated     Edit      `json:"updated"`
	StarCount   int       `json:"star_count"`
	Unlisted    bool      `json:"unlisted"`
	Enterprise  bool      `json:"is_enterprise_feature,omitempty"`
	Milestone   Milestone `json:"milestone,omitempty"`
}

// StatusEnum is the backend's {text, val} pair used by every status field.
type StatusEnum struct {
	Text      string `json:"text"`
	ShortText string `json:"short_text,omitempty"`
	Val       int    `json:"val"`
}

type Standards struct {
	Spec     string     `json:"spec"`
	Maturity StatusEnum `json:"maturity"`
}

type Browsers struct {
	Chrome ChromeStatus  `json:"chrome"`
	FF     BrowserStance `json:"ff"`
	Safari BrowserStance `json:"safari"`
	Webdev BrowserStance `json:"webdev"`
	Other  BrowserStance `json:"other"`
}

// ChromeStatus is Chrome's implementation record for a feature.
type ChromeStatus struct {
	Bug             string            `json:"bug"`
	BlinkComponents []string          `json:"blink_components"`
	Devrel          []string          `json:"devrel"`
	Owners          []string          `json:"owners"`
	OriginTrial     bool              `json:"origintrial"`
	Intervention    bool              `json:"intervention"`
	Prefixed        bool              `json:"prefixed"`
	Flag            bool              `json:"flag"`
	Status          ChromeStatusValue `json:"status"`
	Desktop         Milestone         `json:"desktop"`
	Android         Milestone         `json:"android"`
	IOS             Milestone         `json:"ios"`
	Webview         Milestone         `json:"webview"`
}

type ChromeStatusValue struct {
	Text         string `json:"text"`
	Val          int    `json:"val"`
	MilestoneStr string `json:"milestone_str,omitempty"`
}

// ShippedMilestones returns the per-platform milestones in a fixed order:
// desktop, android, ios, webview.
func (c ChromeStatus) ShippedMilestones() []Milestone {
	return []Milestone{c.Desktop, c.Android, c.IOS, c.Webview}
}

// BrowserStance is another vendor's or developers' view of a feature.
type BrowserStance struct {
	View View `json:"view"`
}

type View struct {
	Text  string `json:"text"`
	Val   int    `json:"val"`
	URL   string `json:"url,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type Resources struct {
	Samples []string `json:"samples"`
	Docs    []string `json:"docs"`
}

type Edit struct {
	By   string `json:"by"`
	When string `json:"when"`
}

// FeatureList is the envelope of feature search responses.
type FeatureList struct {
	TotalCount int       `json:"total_count"`
	Features   []Feature `json:"features"`
}

// FeatureChanges is the body of a feature update.
type FeatureChanges struct {
	FeatureChanges map[string]any   `json:"feature_changes"`
	Stages         []map[string]any `json:"stages"`
	HasChanges     bool             `json:"has_changes"`
}

// CreatedFeature is returned by feature creation.
type CreatedFeature struct {
	ID int64 `json:"feature_id"`
}

// Message is the generic {message} acknowledgement.
type Message struct {
	Message string `json:"message"`
}
