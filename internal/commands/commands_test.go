package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/storage"
	"todo/internal/testutil"
)

const seed = `[{"id":30,"text":"Walk dog","isCompleted":false},` +
	`{"id":20,"text":"Buy milk","isCompleted":true},` +
	`{"id":10,"text":"Call mom","isCompleted":false}]`

// newSession opens a session over an in-memory slot holding data.
func newSession(t *testing.T, data string) (*service.Session, *testutil.MemSlot) {
	t.Helper()
	slot := testutil.NewMemSlot()
	if data != "" {
		slot.Set(storage.DefaultKey, []byte(data))
	}
	return service.Open(context.Background(), storage.NewAdapter(slot, "", nil), nil), slot
}

// runCommand is a helper to run a command against svc.
func runCommand(t *testing.T, cmd commands.Command, svc service.Service, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Quiet = quiet

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, svc, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func texts(s *service.Session) []string {
	var out []string
	for _, t := range s.List() {
		out = append(out, t.Text)
	}
	return out
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todo 0.1.0 (storage: file)\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	for _, want := range []string{"Usage:", "todo add <text...>", "alias: toggle", "--config"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output should contain %q", want)
		}
	}
}

// Tests for add command
func TestAddCommand(t *testing.T) {
	svc, slot := newSession(t, "")

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, svc, []string{"Buy", "milk"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	if got := texts(svc); len(got) != 1 || got[0] != "Buy milk" {
		t.Errorf("unexpected tasks %v", got)
	}
	if slot.Puts[storage.DefaultKey] != 1 {
		t.Errorf("expected one save, got %d", slot.Puts[storage.DefaultKey])
	}
}

func TestAddCommand_NoText(t *testing.T) {
	svc, _ := newSession(t, "")

	_, stderr, code := runCommand(t, &commands.AddCmd{}, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: text required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestAddCommand_BlankTextIsDropped(t *testing.T) {
	svc, _ := newSession(t, "")

	_, _, code := runCommand(t, &commands.AddCmd{}, svc, []string{"   "}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if svc.List().Len() != 0 {
		t.Errorf("expected empty list, got %v", texts(svc))
	}
}

func TestAddCommand_StorageError(t *testing.T) {
	svc, slot := newSession(t, "")
	slot.PutErr = errors.New("disk full")

	_, stderr, code := runCommand(t, &commands.AddCmd{}, svc, []string{"Buy milk"}, false)

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	if !strings.HasPrefix(stderr, "error: storage error:") || !strings.Contains(stderr, "disk full") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for list command
func TestListCommand_Empty(t *testing.T) {
	svc, _ := newSession(t, "")

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("expected %q, got %q", "no tasks found\n", stdout)
	}
}

func TestListCommand_EmptyQuiet(t *testing.T) {
	svc, _ := newSession(t, "")

	stdout, _, code := runCommand(t, &commands.ListCmd{}, svc, nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no output, got %q", stdout)
	}
}

func TestListCommand_WithTasks(t *testing.T) {
	svc, _ := newSession(t, seed)

	stdout, _, code := runCommand(t, &commands.ListCmd{}, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "   1  [ ]  Walk dog\n" +
		"   2  [x]  Buy milk\n" +
		"   3  [ ]  Call mom\n" +
		"2 items left, 1 completed (all)\n"
	if stdout != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, stdout)
	}
}

func TestListCommand_Filter(t *testing.T) {
	tests := []struct {
		filter   string
		expected string
	}{
		{"active", "   1  [ ]  Walk dog\n   2  [ ]  Call mom\n"},
		{"Completed", "   1  [x]  Buy milk\n"},
		{"all", "   1  [ ]  Walk dog\n   2  [x]  Buy milk\n   3  [ ]  Call mom\n"},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			svc, _ := newSession(t, seed)
			cmd := &commands.ListCmd{}
			cmd.SetFilter(tt.filter)

			stdout, _, code := runCommand(t, cmd, svc, nil, true)

			if code != exitcode.Success {
				t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
			}
			if stdout != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, stdout)
			}
		})
	}
}

func TestListCommand_InvalidFilter(t *testing.T) {
	svc, _ := newSession(t, seed)
	cmd := &commands.ListCmd{}
	cmd.SetFilter("done")

	_, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid filter: done\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestListCommand_UnexpectedArgument(t *testing.T) {
	svc, _ := newSession(t, seed)

	_, stderr, code := runCommand(t, &commands.ListCmd{}, svc, []string{"extra"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unexpected argument: extra\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestListCommand_Golden(t *testing.T) {
	svc, _ := newSession(t, seed)

	stdout, _, _ := runCommand(t, &commands.ListCmd{}, svc, nil, false)

	testutil.GoldenString(t, "list_all", stdout)
}

// Tests for done command
func TestDoneCommand_ByNumber(t *testing.T) {
	svc, slot := newSession(t, seed)

	stdout, stderr, code := runCommand(t, &commands.DoneCmd{}, svc, []string{"1"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	task, _ := svc.List().Find(30)
	if !task.Completed {
		t.Error("expected Walk dog to be completed")
	}
	raw, _ := slot.Raw(storage.DefaultKey)
	if !strings.Contains(raw, `{"id":30,"text":"Walk dog","isCompleted":true}`) {
		t.Errorf("toggle not saved: %s", raw)
	}
}

func TestDoneCommand_TwiceReopens(t *testing.T) {
	svc, _ := newSession(t, seed)

	runCommand(t, &commands.DoneCmd{}, svc, []string{"@20"}, true)
	runCommand(t, &commands.DoneCmd{}, svc, []string{"@20"}, true)

	task, _ := svc.List().Find(20)
	if !task.Completed {
		t.Error("expected Buy milk to be completed again")
	}
}

func TestDoneCommand_NumberUnderFilter(t *testing.T) {
	svc, _ := newSession(t, seed)
	cmd := &commands.DoneCmd{}
	cmd.SetFilter("active")

	_, _, code := runCommand(t, cmd, svc, []string{"2"}, true)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	task, _ := svc.List().Find(10)
	if !task.Completed {
		t.Error("expected row 2 of the active listing (Call mom) to be toggled")
	}
}

func TestDoneCommand_OutOfRange(t *testing.T) {
	svc, slot := newSession(t, seed)

	_, stderr, code := runCommand(t, &commands.DoneCmd{}, svc, []string{"4"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task number out of range: 4\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if slot.Puts[storage.DefaultKey] != 0 {
		t.Error("expected no save")
	}
}

func TestDoneCommand_UnknownIDIsNoOp(t *testing.T) {
	svc, _ := newSession(t, seed)
	before := texts(svc)

	_, stderr, code := runCommand(t, &commands.DoneCmd{}, svc, []string{"@999"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if _, completed := svc.List().Counts(); completed != 1 {
		t.Errorf("expected 1 completed task, got %d", completed)
	}
	if got := texts(svc); strings.Join(got, ",") != strings.Join(before, ",") {
		t.Errorf("list changed: %v", got)
	}
}

func TestDoneCommand_MissingRef(t *testing.T) {
	svc, _ := newSession(t, seed)

	_, stderr, code := runCommand(t, &commands.DoneCmd{}, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task reference required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for rm command
func TestRmCommand(t *testing.T) {
	svc, _ := newSession(t, seed)

	_, _, code := runCommand(t, &commands.RmCmd{}, svc, []string{"2"}, true)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if got := strings.Join(texts(svc), ","); got != "Walk dog,Call mom" {
		t.Errorf("unexpected tasks %s", got)
	}
}

func TestRmCommand_InvalidRef(t *testing.T) {
	svc, _ := newSession(t, seed)

	_, stderr, code := runCommand(t, &commands.RmCmd{}, svc, []string{"abc"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid task reference: abc\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for edit command
func TestEditCommand(t *testing.T) {
	svc, _ := newSession(t, seed)

	_, _, code := runCommand(t, &commands.EditCmd{}, svc, []string{"2", "  Buy", "oat", "milk  "}, true)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	task, _ := svc.List().Find(20)
	if task.Text != "Buy oat milk" {
		t.Errorf("expected trimmed text, got %q", task.Text)
	}
	if !task.Completed {
		t.Error("edit should keep the completed flag")
	}
	if v := svc.View(); v.Edit != nil {
		t.Errorf("expected idle edit session, got %+v", v.Edit)
	}
}

func TestEditCommand_EmptyTextDeletes(t *testing.T) {
	svc, _ := newSession(t, seed)

	_, _, code := runCommand(t, &commands.EditCmd{}, svc, []string{"@30", ""}, true)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if _, ok := svc.List().Find(30); ok {
		t.Error("expected task 30 to be deleted")
	}
}

func TestEditCommand_MissingArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"no ref", nil, "error: task reference required\n"},
		{"no text", []string{"1"}, "error: text required\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newSession(t, seed)

			_, stderr, code := runCommand(t, &commands.EditCmd{}, svc, tt.args, false)

			if code != exitcode.UserError {
				t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
			}
			if stderr != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, stderr)
			}
		})
	}
}

// Tests for reset command
func TestResetCommand_RequiresForce(t *testing.T) {
	svc, _ := newSession(t, seed)

	_, stderr, code := runCommand(t, &commands.ResetCmd{}, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: list has 3 tasks (use --force)\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if svc.List().Len() != 3 {
		t.Error("list should be untouched")
	}
}

func TestResetCommand_Force(t *testing.T) {
	svc, slot := newSession(t, seed)
	cmd := &commands.ResetCmd{}
	cmd.SetForce(true)

	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	if svc.List().Len() != 0 {
		t.Error("expected empty list")
	}
	if _, ok := slot.Raw(storage.DefaultKey); ok {
		t.Error("expected slot to be deleted")
	}
}

func TestResetCommand_EmptyListNeedsNoForce(t *testing.T) {
	svc, _ := newSession(t, "")

	_, _, code := runCommand(t, &commands.ResetCmd{}, svc, nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
}

// Tests for the registry
func TestRegistry_FindByAlias(t *testing.T) {
	for alias, name := range map[string]string{
		"ls": "list", "create": "add", "toggle": "done",
		"delete": "rm", "rename": "edit", "ui": "tui",
	} {
		cmd, ok := commands.DefaultRegistry.Find(alias)
		if !ok {
			t.Errorf("alias %q not registered", alias)
			continue
		}
		if cmd.Name() != name {
			t.Errorf("alias %q resolves to %q, want %q", alias, cmd.Name(), name)
		}
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.AddCmd{}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := r.Register(&commands.AddCmd{}); err == nil {
		t.Error("expected error registering a duplicate command")
	}
}
