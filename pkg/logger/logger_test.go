package logger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mergington/activities/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)
		ctx := context.Background()

		Convey("Then Get returns a usable logger", func() {
			l := logger.Get()
			So(l, ShouldNotBeNil)
			So(func() {
				l.Debug(ctx, "debug message")
				l.Info(ctx, "info message", logger.String("k", "v"))
				l.Warn(ctx, "warn message", logger.Int("n", 3))
				l.Error(ctx, "error message", logger.Err(errors.New("boom")))
			}, ShouldNotPanic)
		})

		Convey("And Named returns a grouped logger", func() {
			l := logger.Named("registry")
			So(l, ShouldNotBeNil)
			So(func() { l.Info(ctx, "named message") }, ShouldNotPanic)
		})

		Convey("And Sync never fails", func() {
			So(logger.Sync(), ShouldBeNil)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given the level setter", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then known levels are accepted", func() {
			for _, lvl := range []string{"debug", "info", "warn", "warning", "error", " INFO "} {
				So(logger.SetLevelString(lvl), ShouldBeNil)
			}
		})

		Convey("And unknown levels are rejected", func() {
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
			So(logger.SetLevelString(""), ShouldNotBeNil)
		})
	})
}

func TestFields(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		Convey("Then they carry key and value", func() {
			So(logger.String("a", "b").Key, ShouldEqual, "a")
			So(logger.Int("n", 7).Value, ShouldEqual, 7)
			So(logger.Any("x", 1.5).Key, ShouldEqual, "x")

			err := errors.New("boom")
			f := logger.Err(err)
			So(f.Key, ShouldEqual, "error")
			So(f.Value, ShouldEqual, err)
		})
	})
}
