package auth

import (
	"context"

	"github.com/chromestatus/csclient/internal/client/client"
	"github.com/chromestatus/csclient/internal/client/models"
)

// Static always returns t.
func Static(t models.Token) client.TokenSource {
	return client.TokenSourceFunc(func(context.Context) (models.Token, error) {
		return t, nil
	})
}
