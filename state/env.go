// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fic/config"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place: loaded
// configuration, optional debug report and logger. It is created empty when
// program starts and filled in once command line is parsed.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	start         time.Time
	restoreStdLog func()
}

// Calculations is a log of calculations made during program run.
type Calculations interface {
	Len() int
	Bytes() []byte
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// StoreCalculations puts calculation log into debug report under name. Empty
// log is skipped, as is everything when no report was requested.
func (e *LocalEnv) StoreCalculations(name string, c Calculations) {
	if e.Rpt == nil || c.Len() == 0 {
		return
	}
	e.Rpt.StoreData(name, c.Bytes())
	if e.Log != nil {
		e.Log.Debug("Calculations stored in report", zap.String("name", name), zap.Int("count", c.Len()))
	}
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
