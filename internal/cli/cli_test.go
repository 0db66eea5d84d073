package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"AOSocial/internal/domain"
	"AOSocial/internal/validate"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestScanJSON(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "scan", "-o", "json", `hi @bob #go https://go.dev <img src="x.png">`)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	var view scanView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(view.Annotations) != 3 {
		t.Fatalf("expected 3 annotations, got %+v", view.Annotations)
	}
	if view.Annotations[0].Text != "@bob" || view.Annotations[1].Text != "#go" || view.Annotations[2].Text != "https://go.dev" {
		t.Fatalf("unexpected annotations: %+v", view.Annotations)
	}
	if view.Media[domain.MediaImage] != 1 || view.Media[domain.MediaAudio] != 0 {
		t.Fatalf("unexpected media: %+v", view.Media)
	}
}

func TestAnnotateReadsStdin(t *testing.T) {
	t.Parallel()

	out, err := run(t, "ping @amy\n", "annotate")
	if err != nil {
		t.Fatalf("annotate failed: %v", err)
	}
	want := `ping <a class="activity-page-slug-link" href="/profile/amy">@amy</a>` + "\n"
	if out != want {
		t.Fatalf("unexpected output:\n%q\nwant\n%q", out, want)
	}
}

func TestValidateCommands(t *testing.T) {
	t.Parallel()

	if out, err := run(t, "", "validate", "nickname", "neo"); err != nil || out != "ok\n" {
		t.Fatalf("expected ok, got %q (%v)", out, err)
	}

	_, err := run(t, "", "validate", "nickname", "n")
	if err == nil || err.Error() != validate.ReasonNicknameTooShort {
		t.Fatalf("expected nickname rejection, got %v", err)
	}

	_, err = run(t, "", "validate", "post", "--chars", "1001", "text")
	if err == nil || err.Error() != validate.ReasonTooLong {
		t.Fatalf("expected length rejection, got %v", err)
	}

	if _, err := run(t, "", "validate", "number", "12a"); err == nil {
		t.Fatalf("expected number rejection")
	}
}

func TestComposeRejectsEmpty(t *testing.T) {
	t.Parallel()

	_, err := run(t, "", "compose", "<p></p>")
	if err == nil || err.Error() != validate.ReasonEmpty {
		t.Fatalf("expected empty rejection, got %v", err)
	}
}

func TestAgoFutureIsJustNow(t *testing.T) {
	t.Parallel()

	future := strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10)
	out, err := run(t, "", "ago", future)
	if err != nil || out != "just now\n" {
		t.Fatalf("unexpected output %q (%v)", out, err)
	}
}

func TestRejectsUnknownOutput(t *testing.T) {
	t.Parallel()

	if _, err := run(t, "", "annotate", "-o", "xml", "x"); err == nil {
		t.Fatalf("expected output format error")
	}
}

func TestProfileShowWithoutProfile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "wallet:\n  address: wallet-1\nstorage:\n  backend: sqlite\n  sqlitePath: " + filepath.Join(dir, "profiles.db") + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := run(t, "", "--config", cfgPath, "profile", "show")
	if err == nil || !strings.Contains(err.Error(), "wallet-1") {
		t.Fatalf("expected missing profile error, got %v", err)
	}
}

func TestMergeDraftKeepsUnsetFields(t *testing.T) {
	t.Parallel()

	cmd := newProfileCmd(&rootOptions{})
	setCmd, _, err := cmd.Find([]string{"set"})
	if err != nil {
		t.Fatalf("find set: %v", err)
	}
	if err := setCmd.Flags().Parse([]string{"--bio", "new bio"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	current := domain.Profile{Nickname: "neo", Bio: "old", Avatar: "/a.png", Time: 5}
	next := mergeDraft(setCmd, current, domain.Profile{Bio: "new bio"})
	if next.Nickname != "neo" || next.Bio != "new bio" || next.Avatar != "/a.png" || next.Time != 5 {
		t.Fatalf("unexpected merge: %+v", next)
	}
}
