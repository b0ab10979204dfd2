package models

// Gate is an approval checkpoint on a feature stage.
type Gate struct {
	ID             int64    `json:"id"`
	FeatureID      int64    `json:"feature_id"`
	StageID        int64    `json:"stage_id"`
	GateType       int      `json:"gate_type"`
	TeamName       string   `json:"team_name"`
	GateName       string   `json:"gate_name"`
	State          int      `json:"state"`
	Requested      string   `json:"requested_on"`
	Responded      string   `json:"responded_on"`
	AssigneeEmails []string `json:"assignee_emails"`
	NextAction     string   `json:"next_action,omitempty"`
}

type GatesResponse struct {
	Gates []Gate `json:"gates"`
}

// PendingGatesResponse maps a gate type to its pending gates.
type PendingGatesResponse struct {
	Gates map[string][]Gate `json:"gates"`
}

// Vote states accepted by the backend.
const (
	VoteNoResponse      = 7
	VoteApproved        = 5
	VoteDenied          = 6
	VoteNeedsWork       = 4
	VoteReviewRequested = 2
	VoteNA              = 1
)

type Vote struct {
	FeatureID int64  `json:"feature_id"`
	GateID    int64  `json:"gate_id"`
	GateType  int    `json:"gate_type,omitempty"`
	SetBy     string `json:"set_by"`
	SetOn     string `json:"set_on"`
	State     int    `json:"state"`
}

type VotesResponse struct {
	Votes []Vote `json:"votes"`
}

type Comment struct {
	CommentID int64  `json:"comment_id"`
	FeatureID int64  `json:"feature_id"`
	GateID    int64  `json:"gate_id"`
	Author    string `json:"author"`
	Created   string `json:"created"`
	Content   string `json:"content"`
	DeletedBy string `json:"deleted_by,omitempty"`
}

type CommentsResponse struct {
	Comments []Comment `json:"comments"`
}
