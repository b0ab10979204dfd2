package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMilestone_Unmarshal(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  int
		valid bool
	}{
		{"number", `90`, 90, true},
		{"numeric string", `"101"`, 101, true},
		{"null", `null`, 0, false},
		{"word", `"Unknown"`, 0, false},
		{"fraction", `12.5`, 0, false},
		{"empty string", `""`, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Milestone
			require.NoError(t, json.Unmarshal([]byte(tt.in), &m))
			got, ok := m.Get()
			require.Equal(t, tt.valid, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMilestone_AbsentFieldIsUnset(t *testing.T) {
	var c ChromeStatus
	require.NoError(t, json.Unmarshal([]byte(`{"desktop": 88}`), &c))

	d, ok := c.Desktop.Get()
	require.True(t, ok)
	require.Equal(t, 88, d)

	_, ok = c.Android.Get()
	require.False(t, ok)
}

func TestMilestone_Marshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A Milestone `json:"a"`
		B Milestone `json:"b"`
	}{A: NewMilestone(7)})
	require.NoError(t, err)
	require.JSONEq(t, `{"a":7,"b":null}`, string(b))
}

func TestFeature_DecodesBackendShape(t *testing.T) {
	raw := `{
	  "id": 5703707724349440,
	  "name": "Fetch API",
	  "summary": "Network requests",
	  "category": "Network / Connectivity",
	  "browsers": {
	    "chrome": {"desktop": 42, "android": "42", "ios": null, "webview": "n/a",
	               "owners": ["a@example.com"], "status": {"text": "Enabled by default", "val": 5}},
	    "ff": {"view": {"text": "Shipped", "val": 1}}
	  },
	  "standards": {"spec": "https://fetch.spec.whatwg.org", "maturity": {"text": "Living standard", "val": 4}}
	}`

	var f Feature
	require.NoError(t, json.Unmarshal([]byte(raw), &f))
	require.EqualValues(t, 5703707724349440, f.ID)
	require.Equal(t, "Fetch API", f.Name)
	require.Equal(t, []string{"a@example.com"}, f.Browsers.Chrome.Owners)
	require.Equal(t, "Shipped", f.Browsers.FF.View.Text)

	ms := f.Browsers.Chrome.ShippedMilestones()
	require.Len(t, ms, 4)
	d, ok := ms[0].Get()
	require.True(t, ok)
	require.Equal(t, 42, d)
	a, ok := ms[1].Get()
	require.True(t, ok)
	require.Equal(t, 42, a)
	_, ok = ms[2].Get()
	require.False(t, ok)
	_, ok = ms[3].Get()
	require.False(t, ok)
}

func TestToken_Expired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	require.True(t, Token{}.Expired(now))
	require.True(t, Token{Value: "t", ExpiresAt: now}.Expired(now))
	require.True(t, Token{Value: "t", ExpiresAt: now.Add(-time.Second)}.Expired(now))
	require.False(t, Token{Value: "t", ExpiresAt: now.Add(time.Second)}.Expired(now))
}

func TestToken_JSON(t *testing.T) {
	var tok Token
	require.NoError(t, json.Unmarshal([]byte(`{"token":"abc","tokenExpiresSec":1700000000}`), &tok))
	require.Equal(t, "abc", tok.Value)
	require.Equal(t, int64(1_700_000_000), tok.ExpiresAt.Unix())

	b, err := json.Marshal(tok)
	require.NoError(t, err)
	require.JSONEq(t, `{"token":"abc","tokenExpiresSec":1700000000}`, string(b))

	var noExp Token
	require.NoError(t, json.Unmarshal([]byte(`{"token":"x"}`), &noExp))
	require.True(t, noExp.ExpiresAt.IsZero())
}

func TestFeatureLink_UnwrapByType(t *testing.T) {
	issue := FeatureLink{
		URL:         "https://github.com/w3c/csswg-drafts/issues/1",
		Type:        LinkTypeGithubIssue,
		Information: json.RawMessage(`{"number": 1, "title": "t", "state": "open", "labels": ["css"]}`),
	}
	v, err := issue.Unwrap()
	require.NoError(t, err)
	gi, ok := v.(GithubIssueInfo)
	require.True(t, ok)
	require.Equal(t, 1, gi.Number)
	require.Equal(t, []string{"css"}, gi.Labels)

	bug := FeatureLink{URL: "https://bugs.webkit.org/1", Type: LinkTypeWebKitBug, Information: json.RawMessage(`{"id": 1, "status": "NEW"}`)}
	v, err = bug.Unwrap()
	require.NoError(t, err)
	require.Equal(t, "NEW", v.(BugzillaInfo).Status)

	web := FeatureLink{URL: "https://example.com", Type: LinkTypeWeb, Information: json.RawMessage(`{"a": 1}`)}
	v, err = web.Unwrap()
	require.NoError(t, err)
	_, ok = v.(map[string]any)
	require.True(t, ok)

	empty := FeatureLink{URL: "https://example.com", Type: LinkTypeChromiumBug}
	v, err = empty.Unwrap()
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestFeatureLink_Validate(t *testing.T) {
	require.NoError(t, FeatureLink{URL: "https://x", Information: json.RawMessage(`{"a":1}`)}.Validate())
	require.NoError(t, FeatureLink{URL: "https://x", Information: json.RawMessage(`null`)}.Validate())
	require.NoError(t, FeatureLink{URL: "https://x"}.Validate())
	require.ErrorIs(t, FeatureLink{}.Validate(), ErrLinkMissingURL)
	require.ErrorIs(t, FeatureLink{URL: "https://x", Information: json.RawMessage(`[1]`)}.Validate(), ErrLinkInformationNotJSON)
}

func TestFeatureLink_Broken(t *testing.T) {
	code := 404
	require.True(t, FeatureLink{HTTPErrorCode: &code}.Broken())
	require.False(t, FeatureLink{}.Broken())
}
