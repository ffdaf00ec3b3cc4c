package config

type (
	InternalConfig struct {
		App  App
		FHIR FHIR
	}

	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		Logger  Logger
	}

	App struct {
		Env             string
		Port            string
		Version         string
		Timezone        string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
		DefaultPageSize int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	FHIR struct {
		BaseUrl             string
		SendTimeoutInSecond int
		PingTimeoutInSecond int
		StatusCacheInSecond int
	}
)
