package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Dashboard(ctx context.Context) error {
	f.calls = append(f.calls, "dashboard")
	return nil
}
func (f *fakeExec) Activity(ctx context.Context) error {
	f.calls = append(f.calls, "activity")
	return nil
}
func (f *fakeExec) Filter(ctx context.Context, kind string) error {
	f.calls = append(f.calls, "filter")
	f.arg = kind
	return nil
}
func (f *fakeExec) Search(ctx context.Context, term string) error {
	f.calls = append(f.calls, "search")
	f.arg = term
	return nil
}
func (f *fakeExec) Page(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "page")
	f.arg = arg
	return nil
}
func (f *fakeExec) PageSize(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "pagesize")
	f.arg = arg
	return nil
}
func (f *fakeExec) Refresh(ctx context.Context) error {
	f.calls = append(f.calls, "refresh")
	return nil
}
func (f *fakeExec) VerifyText(ctx context.Context) error {
	f.calls = append(f.calls, "verifytext")
	return nil
}
func (f *fakeExec) VerifyImage(ctx context.Context) error {
	f.calls = append(f.calls, "verifyimage")
	return nil
}
func (f *fakeExec) VerifyVideo(ctx context.Context) error {
	f.calls = append(f.calls, "verifyvideo")
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) SetName(ctx context.Context) error {
	f.calls = append(f.calls, "setname")
	return nil
}
func (f *fakeExec) Passwd(ctx context.Context) error {
	f.calls = append(f.calls, "passwd")
	return nil
}
func (f *fakeExec) Contact(ctx context.Context) error {
	f.calls = append(f.calls, "contact")
	return nil
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runScript(t *testing.T, f *fakeExec, script ...string) {
	t.Helper()
	input := strings.NewReader(strings.Join(script, "\n") + "\n")
	runREPL(context.Background(), f, func() string { return "guest" }, bufio.NewScanner(input))
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)
	f := &fakeExec{}

	runScript(t, f, "login", "dashboard", "activity", "verifytext", "logout", "exit")

	assert.Equal(t, []string{"login", "dashboard", "activity", "verifytext", "logout"}, f.calls)
}

func TestRunREPL_ShortAliases(t *testing.T) {
	silencePrintln(t)
	f := &fakeExec{loggedIn: true}

	runScript(t, f, "d", "a", "quit")

	assert.Equal(t, []string{"dashboard", "activity"}, f.calls)
}

func TestRunREPL_ArgCommands(t *testing.T) {
	silencePrintln(t)
	f := &fakeExec{loggedIn: true}

	runScript(t, f, "filter image", "exit")
	assert.Equal(t, []string{"filter"}, f.calls)
	assert.Equal(t, "image", f.arg)

	f = &fakeExec{loggedIn: true}
	runScript(t, f, "search ai generated", "exit")
	assert.Equal(t, "ai generated", f.arg, "multi-word search terms are joined")

	f = &fakeExec{loggedIn: true}
	runScript(t, f, "page 3", "pagesize 50", "exit")
	assert.Equal(t, []string{"page", "pagesize"}, f.calls)
	assert.Equal(t, "50", f.arg)
}

func TestRunREPL_MissingArgShowsUsage(t *testing.T) {
	lines := silencePrintln(t)
	f := &fakeExec{loggedIn: true}

	runScript(t, f, "filter", "page", "pagesize", "exit")

	assert.Empty(t, f.calls, "no handler runs without the required argument")
	joined := strings.Join(*lines, "\n")
	assert.Contains(t, joined, "Usage: filter")
	assert.Contains(t, joined, "Usage: page")
	assert.Contains(t, joined, "Usage: pagesize")
}

func TestRunREPL_UnknownAndEmptyInput(t *testing.T) {
	lines := silencePrintln(t)
	f := &fakeExec{}

	runScript(t, f, "", "   ", "frobnicate", "exit")

	assert.Empty(t, f.calls)
	assert.Contains(t, strings.Join(*lines, "\n"), "Unknown command:")
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	lines := silencePrintln(t)
	f := &fakeExec{}

	runScript(t, f, "help", "exit")
	assert.Contains(t, strings.Join(*lines, "\n"), "register, login")

	lines2 := silencePrintln(t)
	f = &fakeExec{loggedIn: true}
	runScript(t, f, "help", "exit")
	joined := strings.Join(*lines2, "\n")
	// every advertised command name appears verbatim
	for _, cmd := range []string{"dashboard", "activity", "filter", "search", "page",
		"pagesize", "refresh", "verifytext", "verifyimage", "verifyvideo",
		"profile", "setname", "passwd", "whoami", "contact", "logout", "exit"} {
		assert.Contains(t, joined, cmd)
	}
}
