package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/iitg/jobassessment/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then defaults are returned", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":8080")
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.RefreshQueueSize, ShouldEqual, 10_000)
			So(cfg.DefaultMCQCount, ShouldEqual, 5)
			So(cfg.DefaultDescriptiveCount, ShouldEqual, 3)
			So(cfg.DefaultDSACount, ShouldEqual, 2)
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	Convey("Given environment overrides", t, func() {
		t.Setenv("ASSESS_ADDR", ":9999")
		t.Setenv("ASSESS_QUEUE_SIZE", "128")
		t.Setenv("ASSESS_LOG_LEVEL", "debug")

		cfg, err := config.Load(context.Background())

		Convey("Then env values win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9999")
			So(cfg.RefreshQueueSize, ShouldEqual, 128)
			So(cfg.LogLevel, ShouldEqual, "debug")
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		yaml := "addr: \":7070\"\nworker_count: 3\nallowed_origins:\n  - https://jobs.example.com\n"
		So(os.WriteFile(path, []byte(yaml), 0o600), ShouldBeNil)
		t.Setenv("ASSESS_CONFIG", path)

		cfg, err := config.Load(context.Background())

		Convey("Then file values layer over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.WorkerCount, ShouldEqual, 3)
			So(cfg.AllowedOrigins, ShouldResemble, []string{"https://jobs.example.com"})
		})

		Convey("And env still wins over the file", func() {
			t.Setenv("ASSESS_ADDR", ":6060")
			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":6060")
		})
	})
}

func TestLoadValidation(t *testing.T) {
	Convey("Given invalid overrides", t, func() {
		t.Setenv("ASSESS_QUEUE_SIZE", "0")

		_, err := config.Load(context.Background())

		Convey("Then loading fails with the invalid-config kind", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})
}
