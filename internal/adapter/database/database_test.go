package database

import (
	"testing"

	"github.com/zenndi/zenndi-ops/internal/config"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDatabases(t *testing.T) {
	Convey("Given a database config", t, func() {
		cfg := &config.DatabaseConfig{Container: "zenndi-postgres", User: "dev"}

		Convey("PostgreSQL", func() {
			db := NewPostgreSQL(cfg)

			Convey("It should dump all databases as the configured user", func() {
				So(db.DumpCommand(), ShouldResemble, []string{"pg_dumpall", "-U", "dev"})
				So(db.Extension(), ShouldEqual, ".sql.gz")
				So(db.GetName(), ShouldEqual, "zenndi-postgres")
				So(db.GetType(), ShouldEqual, "postgresql")
			})
		})

		Convey("MySQL", func() {
			Convey("When no password is configured", func() {
				cmd := NewMySQL(cfg).DumpCommand()

				Convey("It should not pass a password flag", func() {
					So(cmd[0], ShouldEqual, "mysqldump")
					So(cmd, ShouldContain, "--all-databases")
					So(cmd, ShouldNotContain, "--password=")
				})
			})

			Convey("When a password is configured", func() {
				cfg.Password = "s3cret"
				cmd := NewMySQL(cfg).DumpCommand()

				Convey("It should pass it inline", func() {
					So(cmd, ShouldContain, "--password=s3cret")
				})
			})
		})

		Convey("MongoDB", func() {
			Convey("When no password is configured", func() {
				db := NewMongoDB(cfg)

				Convey("It should stream an archive without credentials", func() {
					So(db.DumpCommand(), ShouldResemble, []string{"mongodump", "--archive"})
					So(db.Extension(), ShouldEqual, ".archive.gz")
				})
			})

			Convey("When a password is configured", func() {
				cfg.Password = "s3cret"
				cmd := NewMongoDB(cfg).DumpCommand()

				Convey("It should authenticate against admin", func() {
					So(cmd, ShouldContain, "--authenticationDatabase")
					So(cmd, ShouldContain, "dev")
				})
			})
		})

		Convey("New", func() {
			Convey("When the engine is empty", func() {
				db, err := New(cfg)

				Convey("It should default to PostgreSQL", func() {
					So(err, ShouldBeNil)
					So(db.GetType(), ShouldEqual, "postgresql")
				})
			})

			Convey("When the engine is mysql", func() {
				cfg.Engine = "mysql"
				db, err := New(cfg)

				Convey("It should return the MySQL builder", func() {
					So(err, ShouldBeNil)
					So(db.GetType(), ShouldEqual, "mysql")
				})
			})

			Convey("When the engine is unknown", func() {
				cfg.Engine = "oracle"
				_, err := New(cfg)

				Convey("It should return an error", func() {
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldContainSubstring, "unsupported database engine")
				})
			})
		})
	})
}
