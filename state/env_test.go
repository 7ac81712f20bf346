package state_test

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"fic/calc"
	"fic/common"
	"fic/config"
	"fic/state"
)

// newEnv returns context with environment set up the way program does it
// for a run with --debug: default configuration, report and logger.
func newEnv(t *testing.T, log *zap.Logger) (context.Context, *state.LocalEnv, string) {
	t.Helper()

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Reporting.Destination = filepath.Join(t.TempDir(), "fic-report.zip")

	env.Cfg = cfg
	if env.Rpt, err = cfg.Reporting.Prepare(); err != nil {
		t.Fatalf("Prepare() report error = %v", err)
	}
	env.Log = log
	return ctx, env, cfg.Reporting.Destination
}

func runCalc(t *testing.T, ctx context.Context, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	cmd := &cli.Command{
		Name:         "calc",
		Writer:       &buf,
		Action:       calc.Run,
		Flags:        calc.Flags(),
		StopOnNthArg: calc.StopFlagsAfterA(),
	}
	if err := cmd.Run(ctx, append([]string{"calc"}, args...)); err != nil {
		t.Fatalf("calc %q error = %v", args, err)
	}
	return buf.String()
}

func archiveContent(t *testing.T, name string) map[string]string {
	t.Helper()

	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer zr.Close()

	content := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		content[f.Name] = string(data)
	}
	return content
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	state.EnvFromContext(context.Background())
}

func TestContextWithEnv_Fresh(t *testing.T) {
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)

	if env.Cfg != nil || env.Rpt != nil || env.Log != nil {
		t.Error("fresh environment should wait for command line to be parsed")
	}
	if env != state.EnvFromContext(ctx) {
		t.Error("context should carry the same environment")
	}

	time.Sleep(5 * time.Millisecond)
	if env.Uptime() < 5*time.Millisecond {
		t.Errorf("Uptime() = %v, expected at least 5ms", env.Uptime())
	}
}

func TestCalculationStoredInReport(t *testing.T) {
	ctx, env, report := newEnv(t, zaptest.NewLogger(t))

	out := runCalc(t, ctx, "-p", "8", "1 3/8", "+", "2.25")
	if !strings.Contains(out, `Fraction: 3 5/8"`) {
		t.Fatalf("unexpected output %q", out)
	}

	if err := env.Rpt.Close(); err != nil {
		t.Fatalf("Close() report error = %v", err)
	}
	content := archiveContent(t, report)

	want := `  1: 1 3/8 + 2.25 = 3 5/8" (3.625) at 1/8` + "\n"
	if got := content[calc.JournalReportName]; got != want {
		t.Errorf("%s = %q, want %q", calc.JournalReportName, got, want)
	}
	if !strings.Contains(content["MANIFEST"], calc.JournalReportName+"\t<data") {
		t.Errorf("MANIFEST should list calculations as data:\n%s", content["MANIFEST"])
	}
}

func TestStoreCalculations_EmptyJournal(t *testing.T) {
	_, env, report := newEnv(t, zaptest.NewLogger(t))

	var journal calc.Journal
	env.StoreCalculations(calc.JournalReportName, &journal)

	if err := env.Rpt.Close(); err != nil {
		t.Fatalf("Close() report error = %v", err)
	}
	content := archiveContent(t, report)

	if _, ok := content[calc.JournalReportName]; ok {
		t.Error("empty journal should not be stored")
	}
	if strings.Contains(content["MANIFEST"], calc.JournalReportName) {
		t.Errorf("MANIFEST should not mention empty journal:\n%s", content["MANIFEST"])
	}
}

func TestStoreCalculations_NoReport(t *testing.T) {
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)

	var journal calc.Journal
	journal.Add(calc.Entry{A: "1", B: "2", Op: common.OperationAdd, Precision: 8})

	// no --debug, nothing to store and nothing to fail
	env.StoreCalculations(calc.JournalReportName, &journal)
}

func TestCalc_NamedLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx, env, _ := newEnv(t, zap.New(core))
	t.Cleanup(func() { _ = env.Rpt.Close() })

	runCalc(t, ctx, "2", "-", "-1/2")

	var calcEntries int
	for _, e := range logs.All() {
		if e.LoggerName == "calc" {
			calcEntries++
		}
	}
	if calcEntries == 0 {
		t.Errorf("no entries logged by \"calc\" logger, got %d entries in total", logs.Len())
	}

	stored := logs.FilterMessage("Calculations stored in report")
	if stored.Len() != 1 {
		t.Errorf("expected single report entry, got %d", stored.Len())
	}
}

func TestLocalEnv_RedirectStdLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	env := &state.LocalEnv{Log: zap.New(core)}

	env.RedirectStdLog()
	log.Print("printed by library")
	env.RestoreStdLog()
	log.SetOutput(io.Discard)
	log.Print("after restore")
	log.SetOutput(os.Stderr)

	if n := logs.FilterMessage("printed by library").Len(); n != 1 {
		t.Errorf("standard log should go to zap while redirected, got %d entries", n)
	}
	if logs.Len() != 1 {
		t.Errorf("standard log should not go to zap after restore, got %d entries", logs.Len())
	}

	// nil logger is tolerated both ways
	empty := &state.LocalEnv{}
	empty.RedirectStdLog()
	empty.RestoreStdLog()
}
