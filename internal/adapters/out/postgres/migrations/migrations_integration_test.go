package migrations_test

import (
	"context"
	"testing"

	"shipment/internal/adapters/out/postgres/migrations"
	"shipment/internal/adapters/out/postgres/pgtest"

	"github.com/stretchr/testify/suite"
)

type MigrationsIntegrationTestSuite struct {
	suite.Suite
	db *pgtest.Database
}

func (s *MigrationsIntegrationTestSuite) SetupSuite() {
	db, err := pgtest.Start(context.Background())
	s.Require().NoError(err)
	s.db = db
}

func (s *MigrationsIntegrationTestSuite) TearDownSuite() {
	s.Require().NoError(s.db.Stop(context.Background()))
}

func (s *MigrationsIntegrationTestSuite) TestUp_IsIdempotent() {
	s.Require().NoError(migrations.Up(s.db.DSN))

	version, dirty, err := migrations.Version(s.db.DSN)
	s.Require().NoError(err)
	s.Equal(uint(3), version)
	s.False(dirty)
}

func (s *MigrationsIntegrationTestSuite) TestUp_CreatesTables() {
	for _, table := range []string{"orders", "order_status_history", "refund_requests", "api_logs"} {
		s.True(s.db.DB.Migrator().HasTable(table), table)
	}
	s.True(s.db.DB.Migrator().HasIndex("refund_requests", "refund_requests_one_pending_per_order"))
}

func (s *MigrationsIntegrationTestSuite) TestDown_ThenUp() {
	s.Require().NoError(migrations.Down(s.db.DSN))
	s.False(s.db.DB.Migrator().HasTable("orders"))

	s.Require().NoError(migrations.Up(s.db.DSN))
	s.True(s.db.DB.Migrator().HasTable("orders"))
}

func TestMigrationsIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MigrationsIntegrationTestSuite))
}
