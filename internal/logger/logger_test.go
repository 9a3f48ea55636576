package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"kalaa-saarathi-api/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LogConfig
		wantLevel logrus.Level
		wantJSON  bool
		wantErr   bool
	}{
		{"json info", config.LogConfig{Level: "info", Format: "json"}, logrus.InfoLevel, true, false},
		{"text debug", config.LogConfig{Level: "debug", Format: "text"}, logrus.DebugLevel, false, false},
		{"warning alias", config.LogConfig{Level: "warning", Format: "json"}, logrus.WarnLevel, true, false},
		{"bad level", config.LogConfig{Level: "chatty", Format: "json"}, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(tt.cfg, &buf)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}

			logger.WithField("route", "health").Warn("probe")

			var record map[string]interface{}
			isJSON := json.Unmarshal(buf.Bytes(), &record) == nil
			if isJSON != tt.wantJSON {
				t.Errorf("json output = %v, want %v: %s", isJSON, tt.wantJSON, buf.String())
			}
			if !strings.Contains(buf.String(), "health") {
				t.Errorf("output missing field: %s", buf.String())
			}
		})
	}
}

func TestSetup_MirrorsStandardLogger(t *testing.T) {
	prevLevel := logrus.GetLevel()
	prevFormatter := logrus.StandardLogger().Formatter
	prevOut := logrus.StandardLogger().Out
	defer func() {
		logrus.SetLevel(prevLevel)
		logrus.SetFormatter(prevFormatter)
		logrus.SetOutput(prevOut)
	}()

	cfg := config.Default()
	cfg.Log.Level = "error"

	logger, err := Setup(cfg)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if logger.GetLevel() != logrus.ErrorLevel {
		t.Errorf("level = %v", logger.GetLevel())
	}
	if logrus.GetLevel() != logrus.ErrorLevel {
		t.Errorf("standard logger level = %v, want error", logrus.GetLevel())
	}
	if _, ok := logrus.StandardLogger().Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("standard logger formatter = %T, want JSON", logrus.StandardLogger().Formatter)
	}
}
