package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mergington/activities/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

// Each scenario gets its own test function: t.Setenv cleanup runs at
// function end, so env overrides set in one scenario must not share a
// function with scenarios that expect them absent.

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ACTIVITIES_CONFIG", "")

	Convey("Given no file and no env overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then defaults are returned", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":8000")
			So(cfg.LogLevel, ShouldEqual, "info")
		})
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ACTIVITIES_CONFIG", "")
	t.Setenv("ACTIVITIES_ADDR", ":9999")
	t.Setenv("ACTIVITIES_LOG_LEVEL", "debug")
	t.Setenv("ACTIVITIES_SEED_FILE", "/tmp/seed.yaml")

	Convey("Given env overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then env wins over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9999")
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.SeedFile, ShouldEqual, "/tmp/seed.yaml")
		})
	})
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":7070\"\nlog_level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ACTIVITIES_CONFIG", path)

	Convey("Given a YAML config file and no env overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then the file wins over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.LogLevel, ShouldEqual, "warn")
		})
	})
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":7070\"\nlog_level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ACTIVITIES_CONFIG", path)
	t.Setenv("ACTIVITIES_ADDR", ":6060")

	Convey("Given a YAML config file plus an env override", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then env wins over the file", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":6060")
			So(cfg.LogLevel, ShouldEqual, "warn")
		})
	})
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("ACTIVITIES_CONFIG", "/nonexistent/config.yaml")

	Convey("Given a missing config file", t, func() {
		_, err := config.Load(context.Background())

		Convey("Then loading fails with the load sentinel", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "load config failed")
		})
	})
}
