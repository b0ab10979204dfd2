package client

import (
	"context"
	"fmt"

	"github.com/chromestatus/csclient/internal/client/models"
)

func (c *CSClient) GetGates(ctx context.Context, featureID int64) ([]models.Gate, error) {
	var resp models.GatesResponse
	if err := c.doGet(ctx, fmt.Sprintf("/features/%d/gates", featureID), &resp); err != nil {
		return nil, err
	}
	return resp.Gates, nil
}

func (c *CSClient) GetPendingGates(ctx context.Context) (map[string][]models.Gate, error) {
	var resp models.PendingGatesResponse
	if err := c.doGet(ctx, "/gates/pending", &resp); err != nil {
		return nil, err
	}
	return resp.Gates, nil
}

func (c *CSClient) UpdateGate(ctx context.Context, featureID, gateID int64, assignees []string) (*models.Message, error) {
	var msg models.Message
	body := map[string]any{"assignees": assignees}
	if err := c.doPost(ctx, fmt.Sprintf("/features/%d/gates/%d", featureID, gateID), body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetVotes lists votes on a feature, or on one gate when gateID is non-zero.
func (c *CSClient) GetVotes(ctx context.Context, featureID, gateID int64) ([]models.Vote, error) {
	path := fmt.Sprintf("/features/%d/votes", featureID)
	if gateID != 0 {
		path = fmt.Sprintf("%s/%d", path, gateID)
	}
	var resp models.VotesResponse
	if err := c.doGet(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Votes, nil
}

func (c *CSClient) SetVote(ctx context.Context, featureID, gateID int64, state int) (*models.Message, error) {
	var msg models.Message
	body := map[string]any{"state": state}
	if err := c.doPost(ctx, fmt.Sprintf("/features/%d/votes/%d", featureID, gateID), body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func commentsPath(featureID, gateID int64) string {
	if gateID == 0 {
		return fmt.Sprintf("/features/%d/comments", featureID)
	}
	return fmt.Sprintf("/features/%d/votes/%d/comments", featureID, gateID)
}

// GetComments lists the comments of a feature, or of one gate when gateID is
// non-zero.
func (c *CSClient) GetComments(ctx context.Context, featureID, gateID int64) ([]models.Comment, error) {
	var resp models.CommentsResponse
	if err := c.doGet(ctx, commentsPath(featureID, gateID), &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

func (c *CSClient) PostComment(ctx context.Context, featureID, gateID int64, comment string, postToThreadType int) (*models.Message, error) {
	var msg models.Message
	body := map[string]any{"comment": comment}
	if postToThreadType != 0 {
		body["post_to_thread_type"] = postToThreadType
	}
	if err := c.doPost(ctx, commentsPath(featureID, gateID), body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *CSClient) DeleteComment(ctx context.Context, featureID, commentID int64) (*models.Message, error) {
	return c.toggleComment(ctx, featureID, commentID, false)
}

func (c *CSClient) UndeleteComment(ctx context.Context, featureID, commentID int64) (*models.Message, error) {
	return c.toggleComment(ctx, featureID, commentID, true)
}

func (c *CSClient) toggleComment(ctx context.Context, featureID, commentID int64, undelete bool) (*models.Message, error) {
	var msg models.Message
	body := map[string]any{"isUndelete": undelete}
	if err := c.doPatch(ctx, fmt.Sprintf("/features/%d/comments/%d", featureID, commentID), body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
