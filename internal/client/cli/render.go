package cli

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/chromestatus/csclient/internal/client/filter"
	"github.com/chromestatus/csclient/internal/client/models"
)

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

func milestones(f models.Feature) string {
	c := f.Browsers.Chrome
	parts := []string{}
	for _, p := range []struct {
		name string
		m    models.Milestone
	}{{"desktop", c.Desktop}, {"android", c.Android}, {"ios", c.IOS}, {"webview", c.Webview}} {
		if v, ok := p.m.Get(); ok {
			parts = append(parts, fmt.Sprintf("%s %d", p.name, v))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

// renderFilterEvent is the panel observer: it prints every filter result.
func (a *App) renderFilterEvent(ev filter.FilterEvent) {
	fmt.Fprintf(a.out, "%d of %d features\n", len(ev.Matched), ev.Total)

	tw := a.table()
	for _, f := range ev.Matched {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", f.ID, f.Name, f.Category, milestones(f))
	}
	_ = tw.Flush()
}

func (a *App) renderFeature(f *models.Feature, cached bool) {
	if cached {
		fmt.Fprintln(a.out, "(backend unavailable, showing cached copy)")
	}
	tw := a.table()
	fmt.Fprintf(tw, "ID\t%d\n", f.ID)
	fmt.Fprintf(tw, "Name\t%s\n", f.Name)
	fmt.Fprintf(tw, "Category\t%s\n", f.Category)
	fmt.Fprintf(tw, "Status\t%s\n", f.Browsers.Chrome.Status.Text)
	fmt.Fprintf(tw, "Shipped\t%s\n", milestones(*f))
	if f.Standards.Spec != "" {
		fmt.Fprintf(tw, "Spec\t%s\n", f.Standards.Spec)
	}
	fmt.Fprintf(tw, "Stars\t%d\n", f.StarCount)
	_ = tw.Flush()
	if f.Summary != "" {
		fmt.Fprintf(a.out, "\n%s\n", f.Summary)
	}
}

func (a *App) renderLinks(links []models.FeatureLink) {
	if len(links) == 0 {
		fmt.Fprintln(a.out, "No links")
		return
	}
	tw := a.table()
	for _, l := range links {
		state := ""
		if l.Broken() {
			state = "broken"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", l.Type, l.URL, state)
	}
	_ = tw.Flush()
}

func (a *App) renderGates(gates []models.Gate) {
	if len(gates) == 0 {
		fmt.Fprintln(a.out, "No gates")
		return
	}
	tw := a.table()
	for _, g := range gates {
		fmt.Fprintf(tw, "%d\t%s\t%s\tstate %d\n", g.ID, g.TeamName, g.GateName, g.State)
	}
	_ = tw.Flush()
}

func (a *App) renderComments(comments []models.Comment) {
	shown := 0
	for _, c := range comments {
		if c.DeletedBy != "" {
			continue
		}
		fmt.Fprintf(a.out, "%s  %s\n%s\n\n", c.Created, c.Author, c.Content)
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(a.out, "No comments")
	}
}

func (a *App) renderChannels(ch models.Channels) {
	names := make([]string, 0, len(ch))
	for n := range ch {
		names = append(names, n)
	}
	sort.Strings(names)

	tw := a.table()
	for _, n := range names {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", n, ch[n].Version, ch[n].StableDate)
	}
	_ = tw.Flush()
}

func (a *App) renderComponents(comps []models.BlinkComponent) {
	tw := a.table()
	for _, c := range comps {
		fmt.Fprintf(tw, "%s\t%d\n", c.Name, c.SubscriberCount)
	}
	_ = tw.Flush()
}
