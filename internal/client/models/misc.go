package models

// Channel describes one Chrome release channel.
type Channel struct {
	Version    int    `json:"version"`
	Earliest   string `json:"earliest_beta,omitempty"`
	StableDate string `json:"stable_date,omitempty"`
	FinalBeta  string `json:"final_beta,omitempty"`
	Branch     string `json:"branch_point,omitempty"`
	MStone     int    `json:"mstone,omitempty"`
}

// Channels is keyed by channel name (canary, dev, beta, stable).
type Channels map[string]Channel

type BlinkComponent struct {
	Name            string `json:"name"`
	SubscriberCount int    `json:"subscriber_count"`
}

type BlinkComponentsResponse struct {
	Components []BlinkComponent `json:"components"`
}

// Permissions of the signed-in user. A nil *Permissions means anonymous.
type Permissions struct {
	Email            string       `json:"email"`
	CanCreate        bool         `json:"can_create_feature"`
	CanEdit          bool         `json:"can_edit_all"`
	IsAdmin          bool         `json:"is_admin"`
	ApproverFor      []int        `json:"approvable_gate_types"`
	EditableFeatures []int64      `json:"editable_features"`
	PairedUser       *Permissions `json:"paired_user,omitempty"`
}

type PermissionsResponse struct {
	User *Permissions `json:"user"`
}

type Settings struct {
	NotifyAsStarrer bool `json:"notify_as_starrer"`
}

type StarsResponse struct {
	FeatureIDs []int64 `json:"featureIds"`
}

type DismissedCuesResponse struct {
	Cues []string `json:"cues"`
}
