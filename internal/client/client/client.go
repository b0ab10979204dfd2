package client

import (
	"context"

	"github.com/chromestatus/csclient/internal/client/models"
)

// Client is the part of the API the services depend on. CSClient
// implements it.
type Client interface {
	Token() models.Token
	SetToken(t models.Token)
	EnsureTokenIsValid(ctx context.Context) error
	SignIn(ctx context.Context, credential string) error
	SignOut(ctx context.Context) error
	GetPermissions(ctx context.Context, returnPairedUser bool) (*models.Permissions, error)

	GetFeature(ctx context.Context, featureID int64) (*models.Feature, error)
	SearchFeatures(ctx context.Context, p SearchParams) (*models.FeatureList, error)
	GetFeatureLinks(ctx context.Context, featureID int64, updateStaleLinks bool) (*models.FeatureLinksResponse, error)
	GetStars(ctx context.Context) ([]int64, error)
	SetStar(ctx context.Context, featureID int64, starred bool) error

	GetGates(ctx context.Context, featureID int64) ([]models.Gate, error)
	GetComments(ctx context.Context, featureID, gateID int64) ([]models.Comment, error)
	PostComment(ctx context.Context, featureID, gateID int64, comment string, postToThreadType int) (*models.Message, error)
	SetVote(ctx context.Context, featureID, gateID int64, state int) (*models.Message, error)

	GetChannels(ctx context.Context) (models.Channels, error)
	GetBlinkComponents(ctx context.Context) ([]models.BlinkComponent, error)

	// Ping checks that the backend answers. It never sends or refreshes a
	// token.
	Ping(ctx context.Context) error
}

var _ Client = (*CSClient)(nil)
