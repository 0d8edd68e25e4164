package persistence_test

import (
	"os"
	"testing"

	"caseflow/persistence"

	. "github.com/onsi/gomega"
)

func TestParseDatabaseConfigFromEnv(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should fail when DATABASE_URL is not set", func(t *testing.T) {
		os.Unsetenv("DATABASE_DRIVER")
		os.Unsetenv("DATABASE_URL")

		config, err := persistence.ParseDatabaseConfigFromEnv()
		Expect(config).To(BeNil())
		Expect(err.Error()).To(Equal("environment variable DATABASE_URL is not set"))
	})

	t.Run("driver type should default to mysql", func(t *testing.T) {
		os.Unsetenv("DATABASE_DRIVER")
		os.Setenv("DATABASE_URL", "root:root@(127.0.0.1:3306)/caseflow?charset=utf8mb4&parseTime=True&loc=Local")
		defer os.Unsetenv("DATABASE_URL")

		config, err := persistence.ParseDatabaseConfigFromEnv()
		Expect(err).To(BeNil())
		Expect(config.DriverType).To(Equal("mysql"))
		Expect(config.DriverArgs).To(Equal("root:root@(127.0.0.1:3306)/caseflow?charset=utf8mb4&parseTime=True&loc=Local"))
	})

	t.Run("should honor an explicit driver type", func(t *testing.T) {
		os.Setenv("DATABASE_DRIVER", "postgres")
		os.Setenv("DATABASE_URL", "postgres://root@127.0.0.1/caseflow")
		defer os.Unsetenv("DATABASE_DRIVER")
		defer os.Unsetenv("DATABASE_URL")

		config, err := persistence.ParseDatabaseConfigFromEnv()
		Expect(err).To(BeNil())
		Expect(config.DriverType).To(Equal("postgres"))
	})
}
