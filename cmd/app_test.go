package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/portfoy/clipboard"
	"github.com/etnz/portfoy/config"
	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

const examplePortfolio = `{
  "totalValue": 125000,
  "riskLevel": 6,
  "chartData": [{"name": "Hisse", "percentage": 45.27}],
  "assetTargets": {"Hisse": {"target": 40}},
  "portfolioHistory": [
    {"date": "2024-01-01", "value": 120000},
    {"date": "2024-01-02", "value": 121000}
  ]
}`

const examplePrompt = `Sen deneyimli bir yatırım danışmanısın. Aşağıdaki veriler 2024-01-03 tarihi itibarıyla bana ait portföy bilgilerini temsil ediyor. Lütfen 3 maddelik sade yatırım önerisi üret:

Toplam Portföy Değeri: 125.000 ₺
Risk Seviyesi: 6 / 10

Varlık Dağılımı:
- Hisse: %45.3 (Hedef: %40)

Portföy Değeri Geçmişi (Son 5 gün):
- 2024-01-01: 120.000 ₺
- 2024-01-02: 121.000 ₺

Yorumların şunları kapsamalı:
- Hangi varlıklardan azaltılmalı/artırılmalı?
- Risk seviyesi uygun mu?
- Rebalance yapılmalı mı?`

// result is the outcome of a command run.
type result struct {
	status subcommands.ExitStatus
	stdout string
	stderr string
}

// run executes c with args, input as stdin, and an empty configuration file.
func run(t *testing.T, c subcommands.Command, input string, args ...string) result {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfg, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvConfigFile, cfg)
	for _, env := range []string{config.EnvCurrency, config.EnvWindow, config.EnvClipboard, config.EnvLogLevel} {
		t.Setenv(env, "")
	}

	var out, errOut bytes.Buffer
	oldIn, oldOut, oldErr := stdin, stdout, stderr
	stdin, stdout, stderr = strings.NewReader(input), &out, &errOut
	t.Cleanup(func() { stdin, stdout, stderr = oldIn, oldOut, oldErr })

	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid args %v: %v", args, err)
	}
	status := c.Execute(context.Background(), f)
	return result{status: status, stdout: out.String(), stderr: errOut.String()}
}

// withClipboard replaces the clipboard used by commands.
func withClipboard(t *testing.T, m *clipboard.Memory) {
	t.Helper()
	old := newClipboard
	newClipboard = func(*config.Config) (clipboard.Writer, error) { return m, nil }
	t.Cleanup(func() { newClipboard = old })
}

func TestPromptCmd(t *testing.T) {
	got := run(t, &promptCmd{}, examplePortfolio, "-i", "-", "-d", "2024-01-03")
	if got.status != subcommands.ExitSuccess {
		t.Fatalf("prompt status = %v, stderr:\n%s", got.status, got.stderr)
	}
	if diff := cmp.Diff(examplePrompt+"\n", got.stdout); diff != "" {
		t.Errorf("prompt mismatch (-want +got):\n%s", diff)
	}
}

func TestPromptCmdFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(path, []byte(examplePortfolio), 0o644); err != nil {
		t.Fatal(err)
	}
	got := run(t, &promptCmd{}, "", "-i", path, "-d", "2024-01-03")
	if got.status != subcommands.ExitSuccess {
		t.Fatalf("prompt status = %v, stderr:\n%s", got.status, got.stderr)
	}
	if got.stdout != examplePrompt+"\n" {
		t.Errorf("prompt = %q, want the example prompt", got.stdout)
	}
}

func TestPromptCmdCopy(t *testing.T) {
	m := new(clipboard.Memory)
	withClipboard(t, m)
	got := run(t, &promptCmd{}, examplePortfolio, "-i", "-", "-d", "2024-01-03", "-copy")
	if got.status != subcommands.ExitSuccess {
		t.Fatalf("prompt status = %v, stderr:\n%s", got.status, got.stderr)
	}
	if m.Text() != examplePrompt {
		t.Errorf("clipboard = %q, want the example prompt", m.Text())
	}
	if !strings.Contains(got.stderr, copiedMessage) {
		t.Errorf("stderr = %q, want %q", got.stderr, copiedMessage)
	}
}

func TestPromptCmdErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		want  subcommands.ExitStatus
	}{
		{"invalid date", examplePortfolio, []string{"-i", "-", "-d", "yesterday"}, subcommands.ExitUsageError},
		{"invalid json", "{", []string{"-i", "-", "-d", "2024-01-03"}, subcommands.ExitFailure},
		{"missing file", "", []string{"-i", filepath.Join(t.TempDir(), "missing.json"), "-d", "2024-01-03"}, subcommands.ExitFailure},
		{"not finite", `{"totalValue": "NaN"}`, []string{"-i", "-", "-d", "2024-01-03"}, subcommands.ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(t, &promptCmd{}, tt.input, tt.args...)
			if got.status != tt.want {
				t.Errorf("status = %v, want %v", got.status, tt.want)
			}
			if got.stdout != "" {
				t.Errorf("stdout = %q, want nothing", got.stdout)
			}
			if !strings.HasPrefix(got.stderr, "Error ") {
				t.Errorf("stderr = %q, want an error message", got.stderr)
			}
		})
	}
}

func TestCopyCmd(t *testing.T) {
	m := new(clipboard.Memory)
	withClipboard(t, m)
	got := run(t, &copyCmd{}, examplePortfolio, "-i", "-", "-d", "2024-01-03")
	if got.status != subcommands.ExitSuccess {
		t.Fatalf("copy status = %v, stderr:\n%s", got.status, got.stderr)
	}
	if got.stdout != "" {
		t.Errorf("stdout = %q, want nothing", got.stdout)
	}
	if m.Text() != examplePrompt {
		t.Errorf("clipboard = %q, want the example prompt", m.Text())
	}
	if got.stderr != copiedMessage+"\n" {
		t.Errorf("stderr = %q, want %q", got.stderr, copiedMessage)
	}
}

func TestCopyCmdFailure(t *testing.T) {
	m := &clipboard.Memory{Err: errors.New("no display")}
	withClipboard(t, m)
	got := run(t, &copyCmd{}, examplePortfolio, "-i", "-", "-d", "2024-01-03")
	if got.status != subcommands.ExitFailure {
		t.Errorf("copy status = %v, want %v", got.status, subcommands.ExitFailure)
	}
	if strings.Contains(got.stderr, copiedMessage) {
		t.Errorf("stderr = %q, want no success message", got.stderr)
	}
	if !strings.Contains(got.stderr, "no display") {
		t.Errorf("stderr = %q, want the clipboard error", got.stderr)
	}
}

func TestRiskCmd(t *testing.T) {
	input := `{"assets": [
	  {"name": "THYAO", "type": "Hisse", "amount": 10, "price": 300},
	  {"name": "Gram", "type": "Altın", "amount": 1, "price": 2000}
	]}`
	got := run(t, &riskCmd{}, input, "-i", "-")
	if got.status != subcommands.ExitSuccess {
		t.Fatalf("risk status = %v, stderr:\n%s", got.status, got.stderr)
	}
	for _, want := range []string{
		"- Toplam Değer: 5.000 ₺",
		"- Risk Seviyesi: 6.4 / 10",
		"| Hisse | %60.0 | %35 | %25.0 |",
		"| Altın | %40.0 | %10 | %30.0 |",
	} {
		if !strings.Contains(got.stdout, want) {
			t.Errorf("risk report misses %q, got:\n%s", want, got.stdout)
		}
	}
}

func TestRiskCmdFlags(t *testing.T) {
	f := flag.NewFlagSet("risk", flag.ContinueOnError)
	f.SetOutput(io.Discard)
	(&riskCmd{}).SetFlags(f)
	if f.Lookup("i") == nil {
		t.Errorf("risk has no -i flag")
	}
	if f.Lookup("d") != nil {
		t.Errorf("risk has a -d flag, want none")
	}
	if err := f.Parse([]string{"-d", "2024-01-03"}); err == nil {
		t.Errorf("risk -d parsed without error")
	}
}

func TestSnapshotFlagsOn(t *testing.T) {
	c := &snapshotFlags{date: "2024-1-3"}
	on, err := c.On()
	if err != nil {
		t.Fatalf("On() unexpected error: %v", err)
	}
	if got := on.String(); got != "2024-01-03" {
		t.Errorf("On() = %s, want 2024-01-03", got)
	}
}

func TestTopicCmd(t *testing.T) {
	got := run(t, &topicCmd{}, "", "config")
	if got.status != subcommands.ExitSuccess {
		t.Fatalf("topic status = %v, stderr:\n%s", got.status, got.stderr)
	}
	if !strings.HasPrefix(got.stdout, "# Configuration") {
		t.Errorf("topic config = %q, want the configuration topic", got.stdout)
	}
	if got := run(t, &topicCmd{}, "", "nope"); got.status != subcommands.ExitUsageError {
		t.Errorf("topic nope status = %v, want %v", got.status, subcommands.ExitUsageError)
	}
}
