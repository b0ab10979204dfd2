package filter

import (
	"net/url"
	"sync"

	"github.com/chromestatus/csclient/internal/client/models"
)

const queryParam = "q"

// Navigator owns the deep-link fragment of the current view.
type Navigator interface {
	Fragment() string
	SetFragment(fragment string)
}

// Location is an in-memory Navigator.
type Location struct {
	mu       sync.Mutex
	fragment string
}

func (l *Location) Fragment() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fragment
}

func (l *Location) SetFragment(fragment string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fragment = fragment
}

// FilterEvent describes one completed filter run.
type FilterEvent struct {
	Query    Query
	Category string
	Total    int
	Matched  []models.Feature
}

type Observer interface {
	OnFilter(ev FilterEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev FilterEvent)

func (f ObserverFunc) OnFilter(ev FilterEvent) { f(ev) }

// Panel holds a feature list and filters it on demand, keeping the
// navigator's fragment in step with the query.
type Panel struct {
	nav  Navigator
	opts Options

	mu        sync.Mutex
	features  []models.Feature
	loaded    bool
	observers []Observer
}

func NewPanel(nav Navigator, opts Options) *Panel {
	if nav == nil {
		nav = &Location{}
	}
	return &Panel{nav: nav, opts: opts}
}

// Subscribe registers o for every later FilterEvent.
func (p *Panel) Subscribe(o Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, o)
}

// SetFeatures replaces the list the panel filters. An empty list still
// marks the panel as loaded.
func (p *Panel) SetFeatures(list []models.Feature) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.features = list
	p.loaded = true
}

// Loaded reports whether SetFeatures has been called.
func (p *Panel) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

func (p *Panel) Features() []models.Feature {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.features
}

// Filter applies query and category to the held list. A non-empty query is
// written to the fragment as q=<query>; an empty one clears the fragment.
// Observers are notified synchronously, in subscription order.
func (p *Panel) Filter(query, category string) []models.Feature {
	q := ParseQuery(query)

	p.mu.Lock()
	list := p.features
	observers := append([]Observer(nil), p.observers...)
	p.mu.Unlock()

	matched := Apply(list, q, category, p.opts)

	if q.Kind == KindEmpty {
		p.nav.SetFragment("")
	} else {
		p.nav.SetFragment(url.Values{queryParam: {q.Raw}}.Encode())
	}

	ev := FilterEvent{Query: q, Category: category, Total: len(list), Matched: matched}
	for _, o := range observers {
		o.OnFilter(ev)
	}
	return matched
}

// QueryFromFragment returns the query a deep link carries, or "".
func (p *Panel) QueryFromFragment() string {
	v, err := url.ParseQuery(p.nav.Fragment())
	if err != nil {
		return ""
	}
	return v.Get(queryParam)
}
