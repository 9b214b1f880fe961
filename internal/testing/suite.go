package testing

import (
	"github.com/stretchr/testify/suite"
	"os"
)

// EnvTestSuite sets environment variables for a single test and restores them afterwards.
type EnvTestSuite struct {
	suite.Suite
	saved map[string]*string
}

func (suite *EnvTestSuite) SetEnv(key, value string) {
	if suite.saved == nil {
		suite.saved = make(map[string]*string)
	}
	if _, ok := suite.saved[key]; !ok {
		if old, ok := os.LookupEnv(key); ok {
			suite.saved[key] = &old
		} else {
			suite.saved[key] = nil
		}
	}
	suite.Require().NoError(os.Setenv(key, value))
}

func (suite *EnvTestSuite) TearDownTest() {
	for key, old := range suite.saved {
		if old == nil {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, *old)
		}
	}
	suite.saved = nil
}
