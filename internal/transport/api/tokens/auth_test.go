package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type TokensTestSuite struct {
	suite.Suite
	key []byte
}

func TestTokensSuite(t *testing.T) {
	suite.Run(t, new(TokensTestSuite))
}

func (s *TokensTestSuite) SetupTest() {
	s.key = []byte("test secret")
}

func (s *TokensTestSuite) TestRoundTrip() {
	token, err := GenerateUserJWT(42, time.Hour, s.key)
	s.Require().NoError(err)

	claims, err := ValidateUserJWT(token, s.key)
	s.Require().NoError(err)
	s.Equal(int64(42), claims.ID)
}

func (s *TokensTestSuite) TestExpired() {
	token, err := GenerateUserJWT(42, -time.Minute, s.key)
	s.Require().NoError(err)

	_, err = ValidateUserJWT(token, s.key)
	s.Require().ErrorIs(err, ErrTokenExpired)
}

func (s *TokensTestSuite) TestWrongKey() {
	token, err := GenerateUserJWT(42, time.Hour, s.key)
	s.Require().NoError(err)

	_, err = ValidateUserJWT(token, []byte("another secret"))
	s.Require().Error(err)
	s.NotErrorIs(err, ErrTokenExpired)
}

func (s *TokensTestSuite) TestEmptySubject() {
	token, err := GenerateUserJWT(0, time.Hour, s.key)
	s.Require().NoError(err)

	_, err = ValidateUserJWT(token, s.key)
	s.Require().ErrorIs(err, ErrInvalidClaims)
}
