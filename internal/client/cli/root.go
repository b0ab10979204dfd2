package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := ""
	if a.email != "" {
		s = a.email + " "
	}
	s += string(a.mode)
	return fmt.Sprintf("(%s)", s)
}

// restoreSession picks up the user remembered by an earlier run.
func (a *App) restoreSession(ctx context.Context) {
	st, err := a.authService.Status(ctx)
	if err != nil {
		a.logger.Warn(ctx, "session not restored", "error", err)
		return
	}
	a.setEmail(st.Email)
}

// Root runs the interactive session until the user exits or input ends.
func (a *App) Root(ctx context.Context) {
	a.logger.Info(ctx, "Welcome to the ChromeStatus CLI (type 'help' for commands)")

	a.restoreSession(ctx)
	a.checkOnline(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if a.config.OnlineCheckInterval > 0 {
		go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
