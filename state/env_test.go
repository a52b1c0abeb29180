package state

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"ia2amp/config"
)

func TestContextWithEnv(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("environment start time not set")
	}
	if env.Cfg != nil || env.Log != nil || env.Rpt != nil {
		t.Error("fresh environment must not carry configuration, log or report")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic when env is not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestEnvFromContext_Shared(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	EnvFromContext(ctx).Style = "bold"

	// derived contexts see the same environment
	child, cancel := context.WithCancel(ctx)
	defer cancel()
	if got := EnvFromContext(child).Style; got != "bold" {
		t.Errorf("Style = %q, want %q", got, "bold")
	}
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now()}
	for _, delay := range []time.Duration{5 * time.Millisecond, 10 * time.Millisecond} {
		time.Sleep(delay)
		if up := env.Uptime(); up < delay {
			t.Errorf("after %v uptime is %v", delay, up)
		}
	}
}

func TestLocalEnv_StdLog(t *testing.T) {
	tests := []struct {
		name     string
		log      *zap.Logger
		redirect bool
	}{
		{"logger and redirect", zaptest.NewLogger(t), true},
		{"logger without redirect", zaptest.NewLogger(t), false},
		{"no logger", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := &LocalEnv{Log: tt.log}
			if tt.redirect {
				env.RedirectStdLog()
				if (env.restoreStdLog != nil) != (tt.log != nil) {
					t.Errorf("restoreStdLog set = %v, want %v", env.restoreStdLog != nil, tt.log != nil)
				}
			}
			env.RestoreStdLog()
		})
	}
}

func TestLocalEnv_Integration(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	env.Cfg = &config.Config{Version: 1}
	env.Log = zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	env.Rpt = &config.Report{}
	env.NoDirs, env.Overwrite = true, true

	for range 3 {
		env.RedirectStdLog()
		env.RestoreStdLog()
	}
	if !env.NoDirs || !env.Overwrite {
		t.Error("convert flags lost")
	}
}
