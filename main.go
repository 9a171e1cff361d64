package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sharecare/share-care-api/api"
	"github.com/sharecare/share-care-api/external/identity"
	"github.com/sharecare/share-care-api/store"
)

var (
	server     *api.Server
	mongoStore store.MongoStore
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetDefault("server.port", 3000)
	if port := os.Getenv("PORT"); port != "" {
		viper.SetDefault("server.port", port)
	}
	viper.SetDefault("mongo.database", "share_and_care")
	viper.SetDefault("mongo.pool", 100)
	viper.SetDefault("mongo.timeout", 5*time.Second)
	viper.SetDefault("firebase.cert_url", identity.GoogleCertURL)
	viper.SetDefault("auth.timeout", 5*time.Second)
	viper.SetDefault("auth.protect_mutations", true)

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("sharecare")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// newVerifier builds the Firebase token verifier. The project id is taken
// from `firebase.project_id`, or else from the encoded service key.
func newVerifier() (identity.Verifier, error) {
	projectID := viper.GetString("firebase.project_id")
	if projectID == "" && viper.GetString("firebase.service_key") != "" {
		id, err := identity.ProjectIDFromServiceKey(viper.GetString("firebase.service_key"))
		if err != nil {
			return nil, err
		}
		projectID = id
	}

	keys := identity.NewCertSource(viper.GetString("firebase.cert_url"), &http.Client{
		Timeout: viper.GetDuration("auth.timeout"),
	})

	return identity.NewFirebase(projectID, keys)
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if mongoStore != nil {
			log.Info("Shutting down db store")
			mongoStore.Close()
		}

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Release:          viper.GetString("server.version"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	verifier, err := newVerifier()
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Initialized identity verifier")

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mongoStore = store.NewMongoStore(mongoClient, viper.GetString("mongo.database"), viper.GetDuration("mongo.timeout"))

	// an unreachable database is reported but does not stop the server
	if err := mongoStore.Ping(initialCtx); err != nil {
		log.WithField("prefix", "init").WithError(err).Error("mongo database is not reachable")
	} else {
		log.WithField("prefix", "init").Info("Connected to mongo database")
	}

	// Init http server
	server = api.NewServer(store.NewShareCareStore(mongoStore), verifier)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
