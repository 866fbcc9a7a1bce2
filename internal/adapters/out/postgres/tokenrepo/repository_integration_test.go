package tokenrepo_test

import (
	"context"
	"testing"
	"time"

	"foodtasker/internal/adapters/out/postgres/tokenrepo"
	"foodtasker/internal/core/domain/model/auth"
	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AccessTokenRepositoryIntegrationTestSuite verifies token persistence,
// lookup, and expiry purging against a real PostgreSQL instance.
type AccessTokenRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *pgcontainer.PostgresContainer
	db         *gorm.DB
	repository *tokenrepo.GormAccessTokenRepository
}

func (suite *AccessTokenRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&tokenrepo.AccessTokenDTO{}))
}

func (suite *AccessTokenRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE access_tokens").Error)
	suite.repository = tokenrepo.NewGormAccessTokenRepository(suite.db)
}

func (suite *AccessTokenRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AccessTokenRepositoryIntegrationTestSuite) addToken(token string, role auth.Role, expiresAt time.Time) *auth.AccessToken {
	accessToken, err := auth.NewAccessToken(token, role, kernel.NewUUID(), expiresAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), accessToken))

	return accessToken
}

func (suite *AccessTokenRepositoryIntegrationTestSuite) TestGetByToken_RoundTrip() {
	expiresAt := time.Now().UTC().Add(time.Hour).Truncate(time.Microsecond)
	stored := suite.addToken("tok_abc", auth.RoleDriver, expiresAt)

	loaded, err := suite.repository.GetByToken(context.Background(), "tok_abc")
	suite.Require().NoError(err)

	suite.Equal(stored.Token(), loaded.Token())
	suite.Equal(stored.Role(), loaded.Role())
	suite.True(stored.PrincipalID().IsEqual(loaded.PrincipalID()))
	suite.True(stored.ExpiresAt().Equal(loaded.ExpiresAt()))
}

func (suite *AccessTokenRepositoryIntegrationTestSuite) TestGetByToken_Unknown() {
	_, err := suite.repository.GetByToken(context.Background(), "tok_ghost")

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AccessTokenRepositoryIntegrationTestSuite) TestDeleteExpired_RemovesOnlyExpired() {
	now := time.Now().UTC().Truncate(time.Microsecond)

	suite.addToken("tok_dead", auth.RoleCustomer, now.Add(-time.Hour))
	suite.addToken("tok_edge", auth.RoleDriver, now)
	suite.addToken("tok_live", auth.RoleRestaurant, now.Add(time.Hour))

	purged, err := suite.repository.DeleteExpired(context.Background(), now)
	suite.Require().NoError(err)
	suite.Equal(int64(2), purged)

	_, err = suite.repository.GetByToken(context.Background(), "tok_dead")
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByToken(context.Background(), "tok_live")
	suite.NoError(err)
}

func TestAccessTokenRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(AccessTokenRepositoryIntegrationTestSuite))
}
