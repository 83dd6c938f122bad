package testing

import (
	"os"

	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-curator/src/shared/config/envvar"
)

func SetTestEnv() {
	err := os.Setenv(envvar.ENVIRONMENT, "test")
	Expect(err).NotTo(HaveOccurred())
}

// DynamoTestHost is the local DynamoDB endpoint tests may use, or "" when
// none is configured.
func DynamoTestHost() string {
	return envvar.GetOrDefault(envvar.DYNAMO_TEST_HOST, "")
}
