package badger

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"waiter/config"
	"waiter/internal/errors"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/fx"
)

// Options selects where the store lives.
type Options struct {
	// Path is the directory for BadgerDB files. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in memory. Tests and ephemeral shells use it.
	InMemory bool

	// Logger receives BadgerDB's internal warnings and errors. Nil disables them.
	Logger *slog.Logger
}

type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...), slog.String("component", "badger"))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...), slog.String("component", "badger"))
}

// Infof is dropped; badger logs compaction chatter at info level.
func (l *badgerLogger) Infof(string, ...any) {}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...), slog.String("component", "badger"))
}

// Open opens the session database.
func Open(opts Options) (*badger.DB, error) {
	if !opts.InMemory && opts.Path == "" {
		return nil, errors.New("path is required for persistent session store")
	}

	var badgerOpts badger.Options
	if opts.InMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(opts.Path, 0o700); err != nil {
			return nil, errors.Wrapf(err, "create session directory %s", opts.Path)
		}
		// Every write is a login or logout; make each one durable.
		badgerOpts = badger.DefaultOptions(opts.Path).WithSyncWrites(true)
	}

	badgerOpts = badgerOpts.WithNumVersionsToKeep(1)
	if opts.Logger != nil {
		badgerOpts = badgerOpts.WithLogger(&badgerLogger{logger: opts.Logger})
	} else {
		badgerOpts = badgerOpts.WithLogger(nil)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, errors.Wrap(err, "open session store")
	}

	return db, nil
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the session database from config and closes it on shutdown.
func New(params Params) (*badger.DB, error) {
	db, err := Open(Options{
		Path:     params.Config.Session.Path,
		InMemory: params.Config.Session.InMemory,
		Logger:   params.Logger,
	})
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}
