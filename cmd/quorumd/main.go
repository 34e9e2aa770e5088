package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/cmd/quorumd/handlers"
	"github.com/iov-one/quorum/store"
	"github.com/iov-one/quorum/x/authority"
	"github.com/iov-one/quorum/x/gate"
	"github.com/tendermint/tendermint/libs/log"
)

type configuration struct {
	HTTP         string
	DBDir        string
	Genesis      string
	DirectoryURL string
	LogLevel     string
}

func main() {
	conf := configuration{
		HTTP:         env("HTTP", ":8000"),
		DBDir:        env("DB_DIR", ""),
		Genesis:      env("GENESIS", ""),
		DirectoryURL: env("DIRECTORY_URL", ""),
		LogLevel:     env("LOG_LEVEL", "info"),
	}

	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).With("module", "quorumd")
	if err := run(conf, logger); err != nil {
		logger.Error("exit", "err", err.Error())
		os.Exit(1)
	}
}

func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

func run(conf configuration, logger log.Logger) error {
	level, err := log.AllowLevel(conf.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %s", err)
	}
	logger = log.NewFilter(logger, level)

	var db *store.DBStore
	if conf.DBDir == "" {
		logger.Info("no DB_DIR set, using in-memory database")
		db = store.MemDBStore()
	} else {
		db, err = store.OpenLevelDB("quorum", conf.DBDir)
		if err != nil {
			return fmt.Errorf("database: %s", err)
		}
	}
	defer db.Close()

	if conf.Genesis != "" {
		opts, err := quorum.LoadOptions(conf.Genesis)
		if err != nil {
			return fmt.Errorf("genesis: %s", err)
		}
		applied, err := applyGenesis(db, opts)
		if err != nil {
			return fmt.Errorf("genesis: %s", err)
		}
		logger.Info("genesis", "path", conf.Genesis, "applied", applied)
	}

	engine := gate.NewEngine(db, directory(conf, db),
		gate.WithLogger(logger.With("module", "gate")),
		gate.WithListener(eventLogger(logger)),
	)

	logger.Info("listening", "addr", conf.HTTP, "version", quorum.Version())
	if err := http.ListenAndServe(conf.HTTP, router(engine, logger)); err != nil {
		return fmt.Errorf("http server: %s", err)
	}
	return nil
}

// directory returns the authority directory to consult. A remote directory
// takes precedence over the genesis list.
func directory(conf configuration, db quorum.ReadOnlyKVStore) authority.Directory {
	if conf.DirectoryURL != "" {
		return authority.NewHTTPDirectory(conf.DirectoryURL)
	}
	return authority.NewStoreDirectory(db)
}

func router(g handlers.Gate, logger log.Logger) http.Handler {
	rt := http.NewServeMux()
	rt.Handle("/info", &handlers.InfoHandler{})
	rt.Handle("/nonce", &handlers.NonceHandler{Gate: g})
	rt.Handle("/ophash", &handlers.OpHashHandler{Gate: g})
	rt.Handle("/submit", &handlers.SubmitHandler{Gate: g})
	rt.Handle("/decompose", &handlers.DecomposeHandler{})
	rt.Handle("/events", &handlers.EventsHandler{Gate: g})
	rt.Handle("/", &handlers.DefaultHandler{})
	return handlers.WithLogger(rt, logger)
}

// eventLogger returns a listener that writes every authorized command to
// the log, so that it can be picked up by log based executors.
func eventLogger(logger log.Logger) gate.Listener {
	return gate.ListenerFunc(func(e gate.Event) {
		keyvals := []interface{}{}
		for _, t := range e.Tags() {
			keyvals = append(keyvals, string(t.Key), string(t.Value))
		}
		logger.Info("authorized", keyvals...)
	})
}

