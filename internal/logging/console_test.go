package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestConsoleHandlerFormatsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewConsoleHandler(&buf, nil))

	log.Info("Checked out commit", "commit", "0123abcd", "intent", "Isthmus: CrossL2Inbox Deployment")

	assert.Equal(t, "Checked out commit commit=0123abcd intent=\"Isthmus: CrossL2Inbox Deployment\"\n", buf.String())
}

func TestConsoleHandlerComponent(t *testing.T) {
	tests := []struct {
		name          string
		showComponent bool
		want          string
	}{
		{name: "hidden", showComponent: false, want: "building\n"},
		{name: "shown", showComponent: true, want: "building component=Builder\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(NewConsoleHandler(&buf, &ConsoleHandlerOptions{ShowComponent: tt.showComponent})).
				With("component", "Builder")
			log.Info("building")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConsoleHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewConsoleHandler(&buf, nil)).WithGroup("repo").With("ref", "develop")

	log.Info("restoring", "stashed", true)

	assert.Equal(t, "restoring repo.ref=develop repo.stashed=true\n", buf.String())
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		env       string
		wantDebug bool
		wantInfo  bool
	}{
		{name: "default", wantInfo: true},
		{name: "debug flag", debug: true, wantDebug: true, wantInfo: true},
		{name: "env overrides flag", debug: true, env: "warn"},
		{name: "env enables debug", env: "DEBUG", wantDebug: true, wantInfo: true},
		{name: "unknown env value", env: "verbose", wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PREDEPLOY_LOG_LEVEL", tt.env)

			var buf bytes.Buffer
			log := NewLogger(&config.RuntimeConfig{Debug: tt.debug}, &buf)

			assert.Equal(t, tt.wantDebug, log.Enabled(context.Background(), slog.LevelDebug))
			assert.Equal(t, tt.wantInfo, log.Enabled(context.Background(), slog.LevelInfo))
			assert.True(t, log.Enabled(context.Background(), slog.LevelWarn))
		})
	}
}

func TestSuccessLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&config.RuntimeConfig{}, &buf)

	Success(context.Background(), log, "Copied contract bytecode", "path", "out.txt")

	assert.Equal(t, "Copied contract bytecode path=out.txt\n", buf.String())
	assert.Equal(t, successStyle, styleFor(LevelSuccess))
	assert.Equal(t, warnStyle, styleFor(slog.LevelWarn))
	assert.Equal(t, debugStyle, styleFor(slog.LevelDebug))
}
