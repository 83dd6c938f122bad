package env

import "github.com/veedubyou/stem-curator/src/shared/config/envvar"

type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
	Test        Environment = "test"
)

// Get reads ENVIRONMENT, defaulting to development for local runs.
func Get() Environment {
	environment := envvar.GetOrDefault(envvar.ENVIRONMENT, string(Development))

	switch environment {
	case "production":
		return Production
	case "development":
		return Development
	case "test":
		return Test
	default:
		panic("Invalid environment is set")
	}
}
