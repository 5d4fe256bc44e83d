package modehandler

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ebb-editor/ebb/internal/core"
	"github.com/ebb-editor/ebb/internal/core/clipboard"
	"github.com/ebb-editor/ebb/internal/event"
	"github.com/ebb-editor/ebb/internal/input"
	"github.com/ebb-editor/ebb/internal/mode"
	"github.com/ebb-editor/ebb/internal/statusbar"
)

type fixture struct {
	mh     *ModeHandler
	editor *core.Editor
	quit   bool
}

func newFixture(t *testing.T, doc string) *fixture {
	t.Helper()
	f := &fixture{editor: core.NewEditor(doc)}
	f.mh = New(Config{
		Editor:         f.editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   event.NewManager(),
		StatusBar:      statusbar.New(),
		Clipboard:      clipboard.NewManager(false),
		QuitRequest:    func() { f.quit = true },
	})
	return f
}

// typeKeys feeds a key script: plain runes, with \x1b for Escape and
// \r for Enter.
func (f *fixture) typeKeys(keys string) {
	for _, r := range keys {
		var ev *tcell.EventKey
		switch r {
		case '\x1b':
			ev = tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
		case '\r':
			ev = tcell.NewEventKey(tcell.KeyEnter, '\r', tcell.ModNone)
		case '\b':
			ev = tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)
		default:
			ev = tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
		}
		f.mh.HandleKeyEvent(ev)
	}
}

func TestInsertAndEscape(t *testing.T) {
	f := newFixture(t, "")
	f.typeKeys("ihello\x1b")
	if got := f.editor.Rope().String(); got != "hello" {
		t.Errorf("doc = %q", got)
	}
	if f.editor.Mode() != mode.Normal {
		t.Errorf("mode = %v, want Normal", f.editor.Mode())
	}

	f.typeKeys("u")
	if got := f.editor.Rope().String(); got != "" {
		t.Errorf("undo left %q", got)
	}
}

func TestAppendAndOpenLine(t *testing.T) {
	f := newFixture(t, "ab")
	f.typeKeys("aX\x1b")
	if got := f.editor.Rope().String(); got != "aXb" {
		t.Errorf("after a: %q", got)
	}

	f = newFixture(t, "ab")
	f.typeKeys("AX\x1b")
	if got := f.editor.Rope().String(); got != "abX" {
		t.Errorf("after A: %q", got)
	}

	f = newFixture(t, "ab")
	f.typeKeys("oX\x1b")
	if got := f.editor.Rope().String(); got != "ab\nX" {
		t.Errorf("after o: %q", got)
	}

	f = newFixture(t, "ab")
	f.typeKeys("OX\x1b")
	if got := f.editor.Rope().String(); got != "X\nab" {
		t.Errorf("after O: %q", got)
	}
}

func TestNormalModeEdits(t *testing.T) {
	f := newFixture(t, "abc")
	f.typeKeys("x")
	if got := f.editor.Rope().String(); got != "bc" {
		t.Errorf("after x: %q", got)
	}
	f.typeKeys("u")
	if got := f.editor.Rope().String(); got != "abc" {
		t.Errorf("after undo: %q", got)
	}
}

func TestDeleteLineAndPut(t *testing.T) {
	f := newFixture(t, "aa\nbb")
	f.typeKeys("dd")
	if got := f.editor.Rope().String(); got != "bb" {
		t.Fatalf("after dd: %q", got)
	}
	f.typeKeys("p")
	if got := f.editor.Rope().String(); got != "bb\naa" {
		t.Errorf("after p: %q", got)
	}
	f.typeKeys("P")
	if got := f.editor.Rope().String(); got != "bb\naa\naa" {
		t.Errorf("after P: %q", got)
	}
}

func TestYankLine(t *testing.T) {
	f := newFixture(t, "aa\nbb")
	f.typeKeys("yyjp")
	if got := f.editor.Rope().String(); got != "aa\nbb\naa" {
		t.Errorf("after yy j p: %q", got)
	}
}

func TestDeleteWord(t *testing.T) {
	f := newFixture(t, "foo bar")
	f.typeKeys("dw")
	if got := f.editor.Rope().String(); got != " bar" {
		t.Errorf("after dw: %q", got)
	}
}

func TestDeleteQuoted(t *testing.T) {
	f := newFixture(t, "say 'hi' ok")
	f.typeKeys("lllll") // onto the h
	f.typeKeys("d'")
	if got := f.editor.Rope().String(); got != "say  ok" {
		t.Errorf("after d': %q", got)
	}
}

func TestWordMotionKeys(t *testing.T) {
	f := newFixture(t, "foo bar baz")
	f.typeKeys("w")
	if got := f.editor.Selection().Head.Col; got != 4 {
		t.Errorf("after w: col %d, want 4", got)
	}
	f.typeKeys("e")
	if got := f.editor.Selection().Head.Col; got != 6 {
		t.Errorf("after e: col %d, want 6", got)
	}
	f.typeKeys("b")
	if got := f.editor.Selection().Head.Col; got != 4 {
		t.Errorf("after b: col %d, want 4", got)
	}
	f.typeKeys("ge")
	if got := f.editor.Selection().Head.Col; got != 2 {
		t.Errorf("after ge: col %d, want 2", got)
	}
}

func TestSelectModeDeleteAndYank(t *testing.T) {
	f := newFixture(t, "abcd")
	f.typeKeys("vlld")
	if got := f.editor.Rope().String(); got != "d" {
		t.Errorf("after v l l d: %q", got)
	}
	if f.editor.Mode() != mode.Normal {
		t.Errorf("mode = %v after delete", f.editor.Mode())
	}

	f = newFixture(t, "abcd")
	f.typeKeys("vly") // yank "ab"
	f.typeKeys("p")
	if got := f.editor.Rope().String(); got != "aabbcd" {
		t.Errorf("after select yank put: %q", got)
	}
}

func TestReplaceMode(t *testing.T) {
	f := newFixture(t, "abc")
	f.typeKeys("RXY\x1b")
	if got := f.editor.Rope().String(); got != "XYc" {
		t.Errorf("after R XY: %q", got)
	}
	f.typeKeys("u")
	if got := f.editor.Rope().String(); got != "abc" {
		t.Errorf("replace gesture not one undo step: %q", got)
	}
}

func TestRedoKey(t *testing.T) {
	f := newFixture(t, "")
	f.typeKeys("iab\x1bu")
	if got := f.editor.Rope().String(); got != "" {
		t.Fatalf("after undo: %q", got)
	}
	f.mh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl))
	if got := f.editor.Rope().String(); got != "ab" {
		t.Errorf("after redo: %q", got)
	}
}

func TestCommandLineGotoLine(t *testing.T) {
	f := newFixture(t, "a\nb\nc\nd")
	f.typeKeys(":3\r")
	if got := f.editor.Selection().Head.Line; got != 2 {
		t.Errorf("after :3, line = %d, want 2", got)
	}
	if f.mh.InCommandLine() {
		t.Error("still in command line after Enter")
	}
}

func TestCommandRegistryAndEscape(t *testing.T) {
	f := newFixture(t, "")
	ran := false
	var gotArgs []string
	if err := f.mh.RegisterCommand("greet", func(args []string) error {
		ran = true
		gotArgs = args
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := f.mh.RegisterCommand("greet", func([]string) error { return nil }); err == nil {
		t.Error("duplicate registration allowed")
	}

	f.typeKeys(":greet you\r")
	if !ran {
		t.Error("command did not run")
	}
	if len(gotArgs) != 1 || gotArgs[0] != "you" {
		t.Errorf("args = %v", gotArgs)
	}

	// Escape cancels without executing.
	ran = false
	f.typeKeys(":greet\x1b")
	if ran {
		t.Error("command ran after Escape")
	}
	if f.mh.InCommandLine() {
		t.Error("still in command line after Escape")
	}
}

func TestPendingEscapeCancels(t *testing.T) {
	f := newFixture(t, "aa")
	f.typeKeys("d\x1bd") // Escape cancels the pending d; trailing d re-arms
	if got := f.editor.Rope().String(); got != "aa" {
		t.Errorf("doc changed: %q", got)
	}
	f.typeKeys("d") // completes dd
	if got := f.editor.Rope().String(); got != "" {
		t.Errorf("dd after cancel: %q", got)
	}
}

func TestModeName(t *testing.T) {
	f := newFixture(t, "")
	if got := f.mh.ModeName(); got != "NORMAL" {
		t.Errorf("ModeName() = %q", got)
	}
	f.typeKeys(":")
	if got := f.mh.ModeName(); got != "COMMAND" {
		t.Errorf("ModeName() in command line = %q", got)
	}
	f.typeKeys("\x1bi")
	if got := f.mh.ModeName(); got != "INSERT" {
		t.Errorf("ModeName() = %q", got)
	}
}
