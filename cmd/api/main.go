package main

import (
	"os"

	_ "devis_batiment/docs"
	"devis_batiment/internal/adapter/http/routes"
	"devis_batiment/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Devis Batiment API
// @version         1.0
// @description     Construction cost estimation from reference projects, backed by DynamoDB.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("[main] failed to load configuration")
	}
	config.SetupLogger(cfg)

	if err := routes.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("[main] failed to startup the application")
	}
}
