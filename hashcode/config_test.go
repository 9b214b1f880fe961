package hashcode

import (
	"errors"
	"github.com/source-c/go-commons"
	testing2 "github.com/source-c/go-commons/internal/testing"
	"github.com/stretchr/testify/suite"
	"testing"
)

type ConfigTestSuite struct {
	testing2.EnvTestSuite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TearDownTest() {
	SetDebug(false)
	suite.EnvTestSuite.TearDownTest()
}

func (suite *ConfigTestSuite) TestDefaults() {
	cfg, err := LoadConfig()
	suite.Require().NoError(err)
	suite.Require().Equal(Config{Debug: false, Initial: DefaultInitial, Multiplier: DefaultMultiplier}, cfg)
}

func (suite *ConfigTestSuite) TestFromEnv() {
	suite.SetEnv("HASHCODE_DEBUG", "true")
	suite.SetEnv("HASHCODE_INITIAL", "1")
	suite.SetEnv("HASHCODE_MULTIPLIER", "31")

	cfg, err := LoadConfig()
	suite.Require().NoError(err)
	suite.Require().Equal(Config{Debug: true, Initial: 1, Multiplier: 31}, cfg)

	cfg.Apply()
	suite.Require().True(IsDebug())

	b, err := cfg.NewBuilder()
	suite.Require().NoError(err)
	suite.Require().Equal(int32(1), b.ToHashCode())

	hash, err := ReflectionHashCode(struct{ A int }{5}, cfg.ReflectionOptions()...)
	suite.Require().NoError(err)
	suite.Require().Equal(fold(1, 31, 5), hash)
}

func (suite *ConfigTestSuite) TestEvenSeed() {
	suite.SetEnv("HASHCODE_INITIAL", "2")
	_, err := LoadConfig()
	suite.Require().True(errors.Is(err, commons.ErrInvalidArgument))
}

func (suite *ConfigTestSuite) TestMalformed() {
	suite.SetEnv("HASHCODE_MULTIPLIER", "abc")
	_, err := LoadConfig()
	suite.Require().Error(err)
	suite.Require().False(errors.Is(err, commons.ErrInvalidArgument))
}
