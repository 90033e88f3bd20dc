package storage

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"line-relay/contract"
	"line-relay/domain"
	"line-relay/errors"

	"github.com/dgraph-io/badger/v4"
)

var _ contract.IPairingRegistry = (*PairingRepository)(nil)

// PairingRepository keeps the ordered occupant list of every line in BadgerDB.
// Each mutation is a single optimistic transaction, so two joiners racing on the
// same line cannot both observe "one occupant".
type PairingRepository struct {
	db        *badger.DB
	log       *slog.Logger
	retention time.Duration
}

// NewPairingRepository builds the repository. A zero retention disables expiry.
func NewPairingRepository(db *badger.DB, log *slog.Logger, retention time.Duration) *PairingRepository {
	return &PairingRepository{db: db, log: log, retention: retention}
}

// Join adds token to the line if there is room for it.
// Every successful join, including a rejoin, resets the line expiry.
func (r *PairingRepository) Join(line domain.LineID, token domain.Token) (domain.Occupancy, error) {
	key := lineKey(line)
	var occupancy domain.Occupancy

	err := update(r.db, func(txn *badger.Txn) error {
		occupants, _, err := readLine(txn, key)
		if err != nil {
			return err
		}

		switch {
		case slices.Contains(occupants, token):
			occupancy = domain.Occupancy{Outcome: domain.AlreadyPresent, Occupants: occupants}
		case len(occupants) == 0:
			occupants = []domain.Token{token}
			occupancy = domain.Occupancy{Outcome: domain.FirstOccupant, Occupants: occupants}
		case len(occupants) < domain.LineCapacity:
			occupants = append(occupants, token)
			occupancy = domain.Occupancy{Outcome: domain.SecondOccupant, Occupants: occupants}
		default:
			occupancy = domain.Occupancy{Outcome: domain.LineFull, Occupants: occupants}
			return nil
		}

		data, err := encodeLine(occupants)
		if err != nil {
			return err
		}
		return txn.SetEntry(newEntry(key, data, r.retention))
	})
	if err != nil {
		return domain.Occupancy{}, storeError(err)
	}

	r.log.Debug("Line join",
		"line", line,
		"token", token.Fingerprint(),
		"outcome", occupancy.Outcome.String(),
		"occupants", len(occupancy.Occupants))
	return occupancy, nil
}

// Occupants returns the occupants of a line in join order. A missing or
// expired line has no occupants.
func (r *PairingRepository) Occupants(line domain.LineID) ([]domain.Token, error) {
	var occupants []domain.Token
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		occupants, _, err = readLine(txn, lineKey(line))
		return err
	})
	if err != nil {
		return nil, storeError(err)
	}
	return occupants, nil
}

// Leave removes token from the line. The remaining expiry is preserved and the
// record disappears with its last occupant. Leaving a line the token is not
// listed in is reported as ErrNotPresent.
func (r *PairingRepository) Leave(line domain.LineID, token domain.Token) error {
	key := lineKey(line)
	err := update(r.db, func(txn *badger.Txn) error {
		occupants, expiresAt, err := readLine(txn, key)
		if err != nil {
			return err
		}
		index := slices.Index(occupants, token)
		if index < 0 {
			return fmt.Errorf("line %d: %w", line, errors.ErrNotPresent)
		}
		occupants = slices.Delete(occupants, index, index+1)
		if len(occupants) == 0 {
			return txn.Delete(key)
		}
		data, err := encodeLine(occupants)
		if err != nil {
			return err
		}
		return txn.SetEntry(newEntry(key, data, remainingTTL(expiresAt)))
	})
	return storeError(err)
}

func readLine(txn *badger.Txn, key []byte) ([]domain.Token, uint64, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	var occupants []domain.Token
	err = item.Value(func(val []byte) error {
		occupants, err = decodeLine(val)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return occupants, item.ExpiresAt(), nil
}
