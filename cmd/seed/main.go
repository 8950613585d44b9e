package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"carehome/internal/config"
	"carehome/internal/db"
	apperr "carehome/internal/errors"
	"carehome/internal/repository"
	"carehome/internal/service"
)

// seed registers an initial staff account so the login page is usable on a
// fresh database. Running it twice is harmless.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	in := service.EmployeeRegistration{}
	flag.StringVar(&in.Name, "nombre", "Admin", "first name")
	flag.StringVar(&in.Surname, "apellido", "Sistema", "surname")
	flag.StringVar(&in.DocumentType, "tipo-doc", "CC", "document type")
	flag.StringVar(&in.DocumentNumber, "num-doc", "0000000000", "document number")
	flag.StringVar(&in.Address, "direccion", "Sede principal", "address")
	flag.StringVar(&in.Phone, "telefono", "0000000", "phone")
	flag.StringVar(&in.Email, "correo", "admin@hogar.local", "email")
	flag.StringVar(&in.JobTitle, "cargo", "Administrador", "job title")
	flag.StringVar(&in.Username, "usuario", "admin", "username")
	flag.StringVar(&in.Password, "contrasena", "", "password (min 6 characters)")
	flag.Parse()

	if in.Password == "" {
		log.Fatal().Msg("-contrasena is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	accounts := service.NewAccountService(repository.NewUserRepository(gormDB))
	identity, err := accounts.RegisterEmployee(context.Background(), in)
	switch {
	case apperr.Is(err, apperr.KindConflict):
		log.Info().Str("usuario", in.Username).Msg("account already exists, nothing to do")
	case err != nil:
		log.Fatal().Err(err).Msg(apperr.Message(err, "seed employee"))
	default:
		log.Info().Uint("id", identity.ID).Str("usuario", identity.Username).Msg("employee account created")
	}
}
