package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/chromestatus/csclient/internal/client/client"
	"github.com/chromestatus/csclient/internal/client/models"
)

var voteStates = map[string]int{
	"na":               models.VoteNA,
	"review-requested": models.VoteReviewRequested,
	"needs-work":       models.VoteNeedsWork,
	"approved":         models.VoteApproved,
	"denied":           models.VoteDenied,
	"no-response":      models.VoteNoResponse,
}

func argID(args []string, i int, usage string) (int64, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q, usage: %s", args[i], usage)
	}
	return id, nil
}

// splitSearchArgs separates "query words @category words".
func splitSearchArgs(args []string) (query, category string) {
	line := strings.Join(args, " ")
	if i := strings.Index(line, "@"); i >= 0 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
	}
	return strings.TrimSpace(line), ""
}

func parseVoteState(s string) (int, error) {
	if v, ok := voteStates[strings.ToLower(s)]; ok {
		return v, nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	names := make([]string, 0, len(voteStates))
	for n := range voteStates {
		names = append(names, n)
	}
	sort.Strings(names)
	return 0, fmt.Errorf("unknown vote state %q, use one of %s", s, strings.Join(names, ", "))
}

// Refresh downloads every feature matching the backend query and replaces
// the local list.
func (a *App) Refresh(ctx context.Context, args []string) error {
	n, err := a.featureService.Refresh(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Cached %d features\n", n)
	return nil
}

// Search filters the cached list. Results are printed by the filter
// observer.
func (a *App) Search(ctx context.Context, args []string) error {
	query, category := splitSearchArgs(args)
	_, err := a.featureService.Search(ctx, query, category)
	if errors.Is(err, client.ErrLocalDataNotAvailable) {
		return fmt.Errorf("no cached features, run 'refresh' first")
	}
	return err
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "show <id>")
	if err != nil {
		return err
	}
	f, cached, err := a.featureService.Get(ctx, id)
	if err != nil {
		return err
	}
	if cached {
		a.setMode(ctx, ModeOffline)
	}
	a.renderFeature(f, cached)
	return nil
}

func (a *App) Star(ctx context.Context, args []string, on bool) error {
	usage := "star <id>"
	if !on {
		usage = "unstar <id>"
	}
	id, err := argID(args, 0, usage)
	if err != nil {
		return err
	}
	if err := a.featureService.Star(ctx, id, on); err != nil {
		return err
	}
	if on {
		fmt.Fprintf(a.out, "Starred %d\n", id)
	} else {
		fmt.Fprintf(a.out, "Unstarred %d\n", id)
	}
	return nil
}

func (a *App) Starred(ctx context.Context) error {
	ids, err := a.featureService.Starred(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(a.out, "No starred features")
		return nil
	}
	for _, id := range ids {
		fmt.Fprintln(a.out, id)
	}
	return nil
}

func (a *App) Links(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "links <id>")
	if err != nil {
		return err
	}
	links, err := a.featureService.Links(ctx, id)
	if err != nil {
		return err
	}
	a.renderLinks(links)
	return nil
}

func (a *App) Gates(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "gates <id>")
	if err != nil {
		return err
	}
	gates, err := a.featureService.Gates(ctx, id)
	if err != nil {
		return err
	}
	a.renderGates(gates)
	return nil
}

func (a *App) Comments(ctx context.Context, args []string) error {
	const usage = "comments <id> [gate]"
	id, err := argID(args, 0, usage)
	if err != nil {
		return err
	}
	var gateID int64
	if len(args) > 1 {
		if gateID, err = argID(args, 1, usage); err != nil {
			return err
		}
	}
	comments, err := a.featureService.Comments(ctx, id, gateID)
	if err != nil {
		return err
	}
	a.renderComments(comments)
	return nil
}

// Comment reads a multi-line comment and posts it on a gate.
func (a *App) Comment(ctx context.Context, args []string) error {
	const usage = "comment <id> <gate>"
	id, err := argID(args, 0, usage)
	if err != nil {
		return err
	}
	gateID, err := argID(args, 1, usage)
	if err != nil {
		return err
	}
	text, err := getMultiline(a.reader, "Enter comment", a.out)
	if err != nil {
		return err
	}
	if text == "" {
		return errors.New("empty comment, nothing posted")
	}
	if err := a.featureService.Comment(ctx, id, gateID, text); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Comment posted")
	return nil
}

func (a *App) Vote(ctx context.Context, args []string) error {
	const usage = "vote <id> <gate> <state>"
	id, err := argID(args, 0, usage)
	if err != nil {
		return err
	}
	gateID, err := argID(args, 1, usage)
	if err != nil {
		return err
	}
	if len(args) < 3 {
		return fmt.Errorf("usage: %s", usage)
	}
	state, err := parseVoteState(args[2])
	if err != nil {
		return err
	}
	if err := a.featureService.Vote(ctx, id, gateID, state); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Vote recorded")
	return nil
}

func (a *App) Channels(ctx context.Context) error {
	ch, err := a.featureService.Channels(ctx)
	if err != nil {
		return err
	}
	a.renderChannels(ch)
	return nil
}

func (a *App) Components(ctx context.Context) error {
	comps, err := a.featureService.Components(ctx)
	if err != nil {
		return err
	}
	a.renderComponents(comps)
	return nil
}
