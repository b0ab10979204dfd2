package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakeExec struct {
	signedIn bool

	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) isSignedIn() bool { return f.signedIn }
func (f *fakeExec) SignIn(ctx context.Context) error {
	f.signedIn = true
	return f.record("signin", nil)
}
func (f *fakeExec) SignOut(ctx context.Context) error {
	f.signedIn = false
	return f.record("signout", nil)
}
func (f *fakeExec) Status(ctx context.Context) error { return f.record("status", nil) }
func (f *fakeExec) Refresh(ctx context.Context, args []string) error {
	return f.record("refresh", args)
}
func (f *fakeExec) Search(ctx context.Context, args []string) error { return f.record("search", args) }
func (f *fakeExec) Show(ctx context.Context, args []string) error   { return f.record("show", args) }
func (f *fakeExec) Star(ctx context.Context, args []string, on bool) error {
	if on {
		return f.record("star", args)
	}
	return f.record("unstar", args)
}
func (f *fakeExec) Starred(ctx context.Context) error              { return f.record("starred", nil) }
func (f *fakeExec) Links(ctx context.Context, args []string) error { return f.record("links", args) }
func (f *fakeExec) Gates(ctx context.Context, args []string) error { return f.record("gates", args) }
func (f *fakeExec) Comments(ctx context.Context, args []string) error {
	return f.record("comments", args)
}
func (f *fakeExec) Comment(ctx context.Context, args []string) error {
	return f.record("comment", args)
}
func (f *fakeExec) Vote(ctx context.Context, args []string) error { return f.record("vote", args) }
func (f *fakeExec) Channels(ctx context.Context) error            { return f.record("channels", nil) }
func (f *fakeExec) Components(ctx context.Context) error          { return f.record("components", nil) }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"signin",
		"",
		"refresh browsers.chrome.desktop>120",
		"search fetch @Network",
		"s webgpu",
		"show 123",
		"star 1",
		"unstar 1",
		"starred",
		"links 2",
		"gates 3",
		"comments 3 4",
		"comment 3 4",
		"vote 3 4 approved",
		"channels",
		"components",
		"status",
		"signout",
		"exit",
		"status",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input))

	want := []string{"signin", "refresh", "search", "search", "show", "star", "unstar", "starred",
		"links", "gates", "comments", "comment", "vote", "channels", "components", "status", "signout"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls mismatch:\n got %v\nwant %v", exec.calls, want)
	}
	if got := strings.Join(exec.args[2], " "); got != "fetch @Network" {
		t.Fatalf("search args: %q", got)
	}
	if got := strings.Join(exec.args[12], " "); got != "3 4 approved" {
		t.Fatalf("vote args: %q", got)
	}
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("help\nsignin\nhelp\n")))

	var helps []string
	for _, l := range *lines {
		if strings.HasPrefix(l, "Available commands") {
			helps = append(helps, l)
		}
	}
	if len(helps) != 2 || helps[0] != helpSignedOut || helps[1] != helpSignedIn {
		t.Fatalf("unexpected help output: %v", helps)
	}
}

func TestRunREPL_ErrorsAreReportedAndLoopContinues(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{err: errors.New("backend down")}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("show 1\nfoobar\nchannels\nquit\n")))

	if len(exec.calls) != 2 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	joined := strings.Join(*lines, "\n")
	for _, want := range []string{"Error: backend down", "Unknown command: foobar", "Bye!"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("output lacks %q:\n%s", want, joined)
		}
	}
}

func TestRunREPL_EOFEndsLoop(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("")))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_CommentBodyIsNotReadAsCommands(t *testing.T) {
	lines := capturePrintln(t)

	fs := &fakeFeatures{}
	a, _ := newTestApp(t, &fakeAuth{}, fs)
	a.setEmail("alice@example.org")
	a.reader = bufio.NewReader(strings.NewReader("comment 1 11\nhello world\nsecond line\n\nexit\n"))

	runREPL(context.Background(), a, a.getStatus, a.reader)

	if fs.posted != "hello world\nsecond line" {
		t.Fatalf("posted %q", fs.posted)
	}
	joined := strings.Join(*lines, "\n")
	for _, unwanted := range []string{"Error:", "Unknown command"} {
		if strings.Contains(joined, unwanted) {
			t.Fatalf("output has %q:\n%s", unwanted, joined)
		}
	}
	if !strings.Contains(joined, "Bye!") {
		t.Fatalf("loop did not reach exit:\n%s", joined)
	}
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("channels")))

	if strings.Join(exec.calls, ",") != "channels" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
