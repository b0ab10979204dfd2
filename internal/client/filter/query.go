package filter

import (
	"regexp"
	"strconv"
	"strings"
)

type Kind int

const (
	KindEmpty Kind = iota
	KindMilestone
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindMilestone:
		return "milestone"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Op is a milestone comparison operator.
type Op string

const (
	OpLess         Op = "<"
	OpLessEqual    Op = "<="
	OpGreater      Op = ">"
	OpGreaterEqual Op = ">="
	OpEqual        Op = "="
)

// Compare reports whether v <op> target holds.
func (o Op) Compare(v, target int) bool {
	switch o {
	case OpLess:
		return v < target
	case OpLessEqual:
		return v <= target
	case OpGreater:
		return v > target
	case OpGreaterEqual:
		return v >= target
	case OpEqual:
		return v == target
	}
	return false
}

// Query is a parsed filter query.
type Query struct {
	Raw       string
	Kind      Kind
	Op        Op
	Milestone int
	Text      string

	re *regexp.Regexp
}

var milestoneRe = regexp.MustCompile(`^\s*(<=|>=|==|<|>|=)\s*(\d+)\s*$`)

// ParseQuery classifies q. Whitespace-only input is an empty query. Text
// that is not a valid regular expression is matched as a literal substring.
func ParseQuery(q string) Query {
	if strings.TrimSpace(q) == "" {
		return Query{Raw: q, Kind: KindEmpty}
	}

	if m := milestoneRe.FindStringSubmatch(q); m != nil {
		n, err := strconv.Atoi(m[2])
		if err == nil {
			op := Op(m[1])
			if op == "==" {
				op = OpEqual
			}
			return Query{Raw: q, Kind: KindMilestone, Op: op, Milestone: n}
		}
	}

	text := strings.TrimSpace(q)
	re, err := regexp.Compile("(?i)" + text)
	if err != nil {
		re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(text))
	}
	return Query{Raw: q, Kind: KindText, Text: text, re: re}
}

func (q Query) matchText(s string) bool {
	if q.re == nil {
		return strings.Contains(strings.ToLower(s), strings.ToLower(q.Text))
	}
	return q.re.MatchString(s)
}
