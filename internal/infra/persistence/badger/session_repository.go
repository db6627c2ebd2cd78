package badger

import (
	"context"

	"waiter/internal/domain/entity"
	"waiter/internal/domain/repository"
	"waiter/internal/errors"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys of the session fields.
const (
	keyToken       = "authToken"
	keyRole        = "authRole"
	keyDisplayName = "waiterName"
)

type sessionRepository struct {
	db *badger.DB
}

// NewSessionRepository creates a session store backed by db.
func NewSessionRepository(db *badger.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Load(ctx context.Context) (entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return entity.Session{}, errors.WithStack(err)
	}

	var session entity.Session
	err := r.db.View(func(txn *badger.Txn) error {
		token, err := getString(txn, keyToken)
		if err != nil {
			return err
		}
		role, err := getString(txn, keyRole)
		if err != nil {
			return err
		}
		name, err := getString(txn, keyDisplayName)
		if err != nil {
			return err
		}

		session = entity.Session{
			Token:       token,
			Role:        entity.Role(role),
			DisplayName: name,
		}

		return nil
	})
	if err != nil {
		return entity.Session{}, errors.Wrap(err, "load session")
	}

	return session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session entity.Session) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	err := r.db.Update(func(txn *badger.Txn) error {
		fields := []struct{ key, value string }{
			{keyToken, session.Token},
			{keyRole, session.Role.String()},
			{keyDisplayName, session.DisplayName},
		}
		// Save replaces the whole session; an empty field removes its key.
		for _, f := range fields {
			if f.value == "" {
				if err := txn.Delete([]byte(f.key)); err != nil {
					return err
				}

				continue
			}
			if err := txn.Set([]byte(f.key), []byte(f.value)); err != nil {
				return err
			}
		}

		return nil
	})

	return errors.Wrap(err, "save session")
}

func (r *sessionRepository) SaveDisplayName(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if name == "" {
		return nil
	}

	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyDisplayName), []byte(name))
	})

	return errors.Wrap(err, "save display name")
}

// Clear removes all three fields in one transaction so no reader ever sees
// a token without its role.
func (r *sessionRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	err := r.db.Update(func(txn *badger.Txn) error {
		for _, key := range []string{keyToken, keyRole, keyDisplayName} {
			if err := txn.Delete([]byte(key)); err != nil {
				return err
			}
		}

		return nil
	})

	return errors.Wrap(err, "clear session")
}

func getString(txn *badger.Txn, key string) (string, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	value, err := item.ValueCopy(nil)
	if err != nil {
		return "", err
	}

	return string(value), nil
}
