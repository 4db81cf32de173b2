package repository

import (
	"testing"
	"time"

	"house-rental-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OwnerRepositoryTestSuite tests the OwnerRepository
type OwnerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OwnerRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OwnerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOwnerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OwnerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OwnerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OwnerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new owner
func (suite *OwnerRepositoryTestSuite) TestCreate() {
	owner := suite.factories.Owner.Create()
	owner.ID = uuid.Nil

	err := suite.repo.Create(owner)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, owner.ID)
	suite.NotZero(owner.CreatedAt)
}

// TestCreateDuplicateUsername tests the unique index on username
func (suite *OwnerRepositoryTestSuite) TestCreateDuplicateUsername() {
	err := suite.repo.Create(suite.factories.Owner.WithUsername("alice"))
	suite.NoError(err)

	err = suite.repo.Create(suite.factories.Owner.WithUsername("alice"))
	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestCreateDuplicateEmail tests the unique index on email
func (suite *OwnerRepositoryTestSuite) TestCreateDuplicateEmail() {
	err := suite.repo.Create(suite.factories.Owner.WithEmail("same@test.com"))
	suite.NoError(err)

	err = suite.repo.Create(suite.factories.Owner.WithEmail("same@test.com"))
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByID tests retrieving an owner by ID
func (suite *OwnerRepositoryTestSuite) TestGetByID() {
	owner := suite.factories.Owner.Create()
	suite.NoError(suite.repo.Create(owner))

	retrieved, err := suite.repo.GetByID(owner.ID)

	suite.NoError(err)
	suite.Equal(owner.Username, retrieved.Username)
	suite.Equal(owner.PasswordHash, retrieved.PasswordHash)
}

// TestGetByIDNotFound tests retrieving a non-existent owner
func (suite *OwnerRepositoryTestSuite) TestGetByIDNotFound() {
	owner, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(owner)
}

// TestGetByUsernameAndEmail tests the single-column lookups
func (suite *OwnerRepositoryTestSuite) TestGetByUsernameAndEmail() {
	owner := suite.factories.Owner.Create()
	suite.NoError(suite.repo.Create(owner))

	byUsername, err := suite.repo.GetByUsername(owner.Username)
	suite.NoError(err)
	suite.Equal(owner.ID, byUsername.ID)

	byEmail, err := suite.repo.GetByEmail(owner.Email)
	suite.NoError(err)
	suite.Equal(owner.ID, byEmail.ID)

	_, err = suite.repo.GetByUsername("nobody")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetByUsernameOrEmail tests that either column matches
func (suite *OwnerRepositoryTestSuite) TestGetByUsernameOrEmail() {
	owner := suite.factories.Owner.Create()
	suite.NoError(suite.repo.Create(owner))

	found, err := suite.repo.GetByUsernameOrEmail(owner.Username, "other@test.com")
	suite.NoError(err)
	suite.Equal(owner.ID, found.ID)

	found, err = suite.repo.GetByUsernameOrEmail("other", owner.Email)
	suite.NoError(err)
	suite.Equal(owner.ID, found.ID)

	_, err = suite.repo.GetByUsernameOrEmail("other", "other@test.com")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetByResetToken tests that only unexpired tokens match
func (suite *OwnerRepositoryTestSuite) TestGetByResetToken() {
	now := time.Now()
	valid := suite.factories.Owner.WithResetToken("valid-token", now.Add(time.Hour))
	expired := suite.factories.Owner.WithResetToken("expired-token", now.Add(-time.Minute))
	suite.NoError(suite.repo.Create(valid))
	suite.NoError(suite.repo.Create(expired))

	found, err := suite.repo.GetByResetToken("valid-token", now)
	suite.NoError(err)
	suite.Equal(valid.ID, found.ID)

	_, err = suite.repo.GetByResetToken("expired-token", now)
	suite.Equal(gorm.ErrRecordNotFound, err)

	_, err = suite.repo.GetByResetToken("unknown", now)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestUpdateClearsResetToken tests that Save writes nil columns
func (suite *OwnerRepositoryTestSuite) TestUpdateClearsResetToken() {
	owner := suite.factories.Owner.WithResetToken("token", time.Now().Add(time.Hour))
	suite.NoError(suite.repo.Create(owner))

	owner.ClearResetToken()
	owner.PasswordHash = "new-hash"
	suite.NoError(suite.repo.Update(owner))

	retrieved, err := suite.repo.GetByID(owner.ID)
	suite.NoError(err)
	suite.Nil(retrieved.ResetToken)
	suite.Nil(retrieved.ResetTokenExpiry)
	suite.Equal("new-hash", retrieved.PasswordHash)
}

// TestOwnerRepositoryTestSuite runs the test suite
func TestOwnerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OwnerRepositoryTestSuite))
}
