package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zenndi/zenndi-ops/internal/config"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given the Logger package", t, func() {
		Convey("New function", func() {
			Convey("When creating a logger with console output only", func() {
				logger, err := New(&config.AppConfig{Name: "Zenndi Ops", LogLevel: "info"})

				Convey("It should create a logger successfully", func() {
					So(err, ShouldBeNil)
					So(logger, ShouldNotBeNil)
					So(func() { logger.Infof("Test %s", "log") }, ShouldNotPanic)
				})
			})

			Convey("When creating a logger with a log file", func() {
				tempDir, err := os.MkdirTemp("", "logger_test")
				So(err, ShouldBeNil)
				defer os.RemoveAll(tempDir)

				logFile := filepath.Join(tempDir, "logs", "ops.log")
				logger, err := New(&config.AppConfig{Name: "Zenndi Ops", LogLevel: "debug", LogFile: logFile})
				So(err, ShouldBeNil)

				logger.Debugf("Backup directory: %s", tempDir)
				logger.Close()

				Convey("It should write JSON lines tagged with the app name", func() {
					content, err := os.ReadFile(logFile)
					So(err, ShouldBeNil)
					So(string(content), ShouldContainSubstring, `"app":"Zenndi Ops"`)
					So(string(content), ShouldContainSubstring, "Backup directory")
				})
			})

			Convey("When the level filters a message", func() {
				tempDir, err := os.MkdirTemp("", "logger_test")
				So(err, ShouldBeNil)
				defer os.RemoveAll(tempDir)

				logFile := filepath.Join(tempDir, "ops.log")
				logger, err := New(&config.AppConfig{LogLevel: "warn", LogFile: logFile})
				So(err, ShouldBeNil)

				logger.Infof("hidden")
				logger.Warnf("shown")
				logger.Close()

				Convey("Only messages at or above the level should be written", func() {
					content, err := os.ReadFile(logFile)
					So(err, ShouldBeNil)
					So(strings.Contains(string(content), "hidden"), ShouldBeFalse)
					So(string(content), ShouldContainSubstring, "shown")
				})
			})

			Convey("When creating a logger with an invalid log level", func() {
				logger, err := New(&config.AppConfig{LogLevel: "invalid"})

				Convey("It should default to Info level", func() {
					So(err, ShouldBeNil)
					So(logger, ShouldNotBeNil)
					So(logger.Desugar().Core().Enabled(-1), ShouldBeFalse)
				})
			})

			Convey("When the log directory cannot be created", func() {
				tempDir, err := os.MkdirTemp("", "logger_test")
				So(err, ShouldBeNil)
				defer os.RemoveAll(tempDir)

				blocker := filepath.Join(tempDir, "blocker")
				So(os.WriteFile(blocker, []byte("x"), 0644), ShouldBeNil)

				logger, err := New(&config.AppConfig{LogLevel: "info", LogFile: filepath.Join(blocker, "ops.log")})

				Convey("It should return an error", func() {
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldContainSubstring, "failed to create log directory")
					So(logger, ShouldBeNil)
				})
			})
		})

		Convey("Nop function", func() {
			Convey("It should accept messages silently", func() {
				So(func() { Nop().Errorf("ignored") }, ShouldNotPanic)
			})
		})
	})
}
