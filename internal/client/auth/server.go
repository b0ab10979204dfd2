package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/chromestatus/csclient/internal/client/client"
	"github.com/chromestatus/csclient/internal/client/models"
	"github.com/chromestatus/csclient/internal/common"
	"github.com/chromestatus/csclient/internal/logging"
	"github.com/google/uuid"
)

const tokenResource = "/currentuser/token"

// ServerSource fetches tokens from the backend's token endpoint. It must
// share its http.Client (and so its cookie jar) with the CSClient that
// signed in.
type ServerSource struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

func NewServerSource(baseURL string, httpClient *http.Client, logger logging.Logger) *ServerSource {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &ServerSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

var _ client.TokenSource = (*ServerSource)(nil)

// Token posts to the token endpoint without credentials. When the response
// has no tokenExpiresSec the expiry is taken from the token's exp claim.
func (s *ServerSource) Token(ctx context.Context) (models.Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+tokenResource, nil)
	if err != nil {
		return models.Token{}, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return models.Token{}, client.TransportError(tokenResource, http.MethodPost, err)
	}
	defer resp.Body.Close()

	var tok models.Token
	if err := client.DecodeResponse(resp, tokenResource, http.MethodPost, &tok); err != nil {
		return models.Token{}, err
	}
	if tok.Value == "" {
		return models.Token{}, fmt.Errorf("%w: empty token", client.ErrUnauthorized)
	}

	if tok.ExpiresAt.IsZero() {
		exp, err := ExpiryFromJWT(tok.Value)
		if err != nil {
			return models.Token{}, fmt.Errorf("token expiry: %w", err)
		}
		tok.ExpiresAt = exp
	}

	s.logger.Debug(ctx, "token issued", "expires_at", tok.ExpiresAt)
	return tok, nil
}
