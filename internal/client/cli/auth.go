package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/chromestatus/csclient/internal/common"
)

// getSecret and getMultiline are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSecret    = GetSecret
	getMultiline = GetMultiline
)

// SignIn prompts for a sign-in provider credential without echo and
// exchanges it for a session. The credential bytes are wiped before
// returning.
func (a *App) SignIn(ctx context.Context) error {
	credential, err := getSecret(a.out, "Enter sign-in credential")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(credential)

	email, err := a.authService.SignIn(ctx, string(credential))
	if err != nil {
		return err
	}

	a.setEmail(email)
	fmt.Fprintf(a.out, "Signed in as %s\n", email)
	return nil
}

// SignOut ends the session. The remembered user is forgotten even when the
// backend call fails.
func (a *App) SignOut(ctx context.Context) error {
	err := a.authService.SignOut(ctx)
	a.setEmail("")
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) Status(ctx context.Context) error {
	st, err := a.authService.Status(ctx)
	if err != nil {
		return err
	}

	if st.SignedIn {
		fmt.Fprintf(a.out, "Signed in as %s\n", st.Email)
	} else {
		fmt.Fprintln(a.out, "Not signed in")
	}
	if !st.TokenExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "Token expires %s\n", st.TokenExpiresAt.Format(time.RFC3339))
	}
	fmt.Fprintf(a.out, "Backend %s (%s)\n", a.config.BaseURL, a.Mode())
	if frag := a.location.Fragment(); frag != "" {
		fmt.Fprintf(a.out, "Last search #%s\n", frag)
	}
	return nil
}
