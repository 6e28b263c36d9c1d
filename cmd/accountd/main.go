package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/tendant/chi-demo/app"
	dbutils "github.com/tendant/db-utils/db"

	"github.com/accountd/accountd/pkg/account"
	"github.com/accountd/accountd/pkg/config"
	"github.com/accountd/accountd/pkg/hashing"
	"github.com/accountd/accountd/pkg/login"
	"github.com/accountd/accountd/pkg/notification"
	"github.com/accountd/accountd/pkg/signup"
	"github.com/accountd/accountd/pkg/user/api"
	"github.com/accountd/accountd/pkg/verification"
)

type ServerConfig struct {
	// BaseURL is the externally reachable origin used to build the
	// verification links embedded in emails.
	BaseURL string `env:"ACCOUNTD_BASE_URL" env-default:"http://localhost:5000"`
}

type Config struct {
	DbConfig     config.DatabaseConfig
	EmailConfig  config.EmailConfig
	ServerConfig ServerConfig
	AppConfig    app.AppConfig
}

func main() {

	cfg := Config{}
	cleanenv.ReadEnv(&cfg)

	server := app.DefaultApp()

	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)

	dbConfig := cfg.DbConfig.ToDbConfig()
	pool, err := dbutils.NewDbPool(context.Background(), dbConfig)
	if err != nil {
		slog.Error("Failed creating dbpool", "db", dbConfig.Database, "host", dbConfig.Host, "port", dbConfig.Port, "user", dbConfig.User)
		os.Exit(-1)
	}

	notificationManager, err := notification.NewNotificationManagerWithOptions(
		notification.WithSMTP(cfg.EmailConfig.ToSMTPConfig()),
		notification.WithEmailVerificationTemplate(),
	)
	if err != nil {
		slog.Error("Failed creating notification manager", "err", err)
		os.Exit(-1)
	}

	accountRepository := account.NewPostgresAccountRepository(pool)
	verificationRepository := verification.NewPostgresVerificationRepository(pool)
	hasher := hashing.NewBcryptHasher()

	verificationService := verification.NewVerificationService(
		verificationRepository,
		accountRepository,
		hasher,
		cfg.ServerConfig.BaseURL,
		verification.WithNotificationManager(notificationManager),
	)
	signupService := signup.NewSignupService(accountRepository, hasher, verificationService)
	loginService := login.NewLoginService(accountRepository, hasher)

	handler := api.NewHandler(signupService, loginService, verificationService)

	server.R.Mount("/user", api.Routes(handler))

	server.Run()
}
