package models

// Stage is one step of a feature's launch process.
type Stage struct {
	ID         int64           `json:"id"`
	FeatureID  int64           `json:"feature_id"`
	StageType  int             `json:"stage_type"`
	Intent     string          `json:"intent_thread_url,omitempty"`
	Milestones StageMilestones `json:"milestones"`
	Extensions []Stage         `json:"extensions,omitempty"`
}

type StageMilestones struct {
	DesktopFirst Milestone `json:"desktop_first"`
	DesktopLast  Milestone `json:"desktop_last"`
	AndroidFirst Milestone `json:"android_first"`
	AndroidLast  Milestone `json:"android_last"`
	IOSFirst     Milestone `json:"ios_first"`
	IOSLast      Milestone `json:"ios_last"`
	WebviewFirst Milestone `json:"webview_first"`
	WebviewLast  Milestone `json:"webview_last"`
}

// CreatedStage is returned by stage creation.
type CreatedStage struct {
	StageID int64 `json:"stage_id"`
}

// Process describes the launch process a feature follows.
type Process struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Applicability string         `json:"applicability"`
	Stages        []ProcessStage `json:"stages"`
}

type ProcessStage struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Progress      []string `json:"progress_items"`
	OutgoingStage int      `json:"outgoing_stage"`
}

// OriginTrial is a Chrome origin trial registered for a feature.
type OriginTrial struct {
	ID                     string `json:"id"`
	DisplayName            string `json:"display_name"`
	Description            string `json:"description"`
	Status                 string `json:"status"`
	OriginTrialFeatureName string `json:"origin_trial_feature_name"`
	ChromestatusURL        string `json:"chromestatus_url"`
	StartMilestone         string `json:"start_milestone"`
	EndMilestone           string `json:"end_milestone"`
	EndTime                string `json:"end_time"`
}

type OriginTrialsResponse struct {
	OriginTrials []OriginTrial `json:"origin_trials"`
}
