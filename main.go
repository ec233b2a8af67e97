package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-firestore-inventory/internal/auth"
	"go-firestore-inventory/internal/config"
	"go-firestore-inventory/internal/database"
	"go-firestore-inventory/internal/inventory"
	"go-firestore-inventory/internal/model"
	productRepository "go-firestore-inventory/internal/repository/product"
	"go-firestore-inventory/internal/screen"
	"go-firestore-inventory/internal/widget"

	Firestore "firebase.google.com/go/v4"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

func main() {

	cnf := config.LoadConfigOrPanic()
	configureLoggingOrPanic(cnf.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	defer close(sigs)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	app := createFirestoreAppOrPanic(ctx, cnf.Firebase)
	firestoreClient := createFirestoreClientOrPanic(ctx, app)
	defer firestoreClient.Close()

	authenticator, err := auth.New(ctx, cnf.Firebase.WebApiKey)
	if err != nil {
		panic(err)
	}

	productRepo := productRepository.New(&firestoreClient)
	service := inventory.New(authenticator, productRepo)

	login := screen.NewLogin(authenticator)
	login.OnLoginState = func(s screen.State) {
		if s.Phase == screen.PhaseError {
			log.Error().Msg(s.Message)
		}
	}
	login.Login(ctx, cnf.Account.Email, cnf.Account.Password)
	if !login.IsLoggedIn() {
		log.Fatal().Msg("could not sign in with the configured account")
	}

	prefs, err := widget.NewPrefs(cnf.Widget.PrefsFile)
	if err != nil {
		panic(err)
	}
	inventoryWidget := widget.New(service, prefs, cnf.Widget.RefreshInterval, func(text string) {
		log.Info().Str("total", text).Msg("widget")
	})

	home := screen.NewHome(service, authenticator)
	home.OnProducts = func(products []model.Product) {
		log.Info().Int("count", len(products)).Msg("product list updated")
	}
	home.OnTotal = func(total float64) {
		log.Info().Float64("total", total).Msg("inventory total")
	}
	home.OnError = func(msg string) {
		log.Error().Msg(msg)
	}

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		home.LoadProducts(gctx)
		<-gctx.Done()
		home.Close()
		return gctx.Err()
	})
	group.Go(func() error {
		return inventoryWidget.Run(gctx)
	})

	// SIGUSR1 stands in for the widget's toggle action
	toggleSigs := make(chan os.Signal, 1)
	signal.Notify(toggleSigs, syscall.SIGUSR1)
	group.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-toggleSigs:
				if err := inventoryWidget.Toggle(gctx); err != nil {
					log.Error().Err(err).Msg("widget toggle failed")
				}
			}
		}
	})

	select {
	case <-sigs:
		// Received a termination signal, continue to shutdown
	case <-gctx.Done():
		// errgroup encountered an error, continue to shutdown
	}

	cancel() // cancel the root context to signal all the consumers

	select {
	case <-time.After(time.Second * 5):
		// Give enough time to close all the pending resources
	case <-sigs:
		// Forcefully terminate the app with a signal
	}

	os.Exit(1)
}

func configureLoggingOrPanic(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		panic(err)
	}
	zerolog.SetGlobalLevel(lvl)
}

func createFirestoreAppOrPanic(ctx context.Context, cnf config.Firebase) *Firestore.App {
	FirestoreCreds, err := json.Marshal(cnf)
	if err != nil {
		panic(err)
	}

	sa := option.WithCredentialsJSON(FirestoreCreds)
	app, err := Firestore.NewApp(ctx, nil, sa)
	if err != nil {
		panic(err)
	}
	return app
}

func createFirestoreClientOrPanic(ctx context.Context, app *Firestore.App) database.FirestoreClient {
	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		panic(err)
	}
	return database.New(firestoreClient)
}
