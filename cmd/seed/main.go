// Comando seed: siembra hospitales y la cuenta administradora inicial sobre
// una base vacía. Con -hospitales puede además cargar un listado adicional de
// nombres (un hospital por línea, UTF-8 o ISO-8859-1).
//
// Uso:
//
//	ADMIN_PASS=... go run ./cmd/seed
//	go run ./cmd/seed -hospitales listado.txt
package main

import (
	"context"
	"flag"

	"github.com/tu-usuario/emergencias-api/internal/application/bootstrap"
	"github.com/tu-usuario/emergencias-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/emergencias-api/pkg/config"
	"github.com/tu-usuario/emergencias-api/pkg/logger"
)

func main() {
	hospitalesFile := flag.String("hospitales", "", "archivo con un nombre de hospital por línea")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: "seed",
	})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	hospitalRepo := postgres.NewHospitalRepository(pool)
	b := bootstrap.New(userRepo, hospitalRepo, log)

	seeded, err := b.Run(cfg.Bootstrap)
	if err != nil {
		log.Fatal().Err(err).Msg("siembra inicial")
	}
	if seeded {
		log.Info().Msg("Siembra inicial completada")
	}

	if *hospitalesFile != "" {
		nombres, err := bootstrap.ReadHospitalFile(*hospitalesFile)
		if err != nil {
			log.Fatal().Err(err).Str("archivo", *hospitalesFile).Msg("leer listado de hospitales")
		}
		inserted, err := b.SeedHospitals(nombres)
		if err != nil {
			log.Fatal().Err(err).Msg("sembrar listado de hospitales")
		}
		log.Info().Int("insertados", inserted).Int("leidos", len(nombres)).Msg("Listado de hospitales procesado")
	}
}
