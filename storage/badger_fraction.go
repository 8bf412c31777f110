package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/dgraph-io/badger/v3"
)

const (
	prefixFraction = "fraction:"
)

var ErrInvalidName = errors.New("invalid fraction name")

func (s *BadgerStore) WriteFraction(name string, value common.Fraction) (*Record, error) {
	key, err := fractionKey(name)
	if err != nil {
		return nil, err
	}
	r := &Record{
		Name:      name,
		Value:     value,
		UpdatedAt: uint64(time.Now().UnixNano()),
	}
	val := common.CompressMsgpackMarshalPanic(r)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
	if err != nil {
		return nil, err
	}
	s.cache.Del(key)
	logger.Debugf("WriteFraction %s %s\n", name, value)
	return r, nil
}

func (s *BadgerStore) ReadFraction(name string) (*Record, error) {
	key, err := fractionKey(name)
	if err != nil {
		return nil, err
	}
	if val, found := s.cache.HasGet(nil, key); found {
		return decodeRecord(val)
	}

	// cache fills and write invalidations must not interleave
	s.mutex.Lock()
	defer s.mutex.Unlock()

	txn := s.db.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, val)
	return decodeRecord(val)
}

func (s *BadgerStore) RemoveFraction(name string) error {
	key, err := fractionKey(name)
	if err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	s.cache.Del(key)
	return err
}

func (s *BadgerStore) ListFractions(prefix string) ([]*Record, error) {
	txn := s.db.NewTransaction(false)
	defer txn.Discard()

	seek := []byte(prefixFraction + prefix)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = seek
	it := txn.NewIterator(opts)
	defer it.Close()

	var records []*Record
	for it.Seek(seek); it.Valid(); it.Next() {
		val, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		r, err := decodeRecord(val)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func decodeRecord(val []byte) (*Record, error) {
	var r Record
	err := common.DecompressMsgpackUnmarshal(val, &r)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func fractionKey(name string) ([]byte, error) {
	if name == "" || strings.TrimSpace(name) != name {
		return nil, fmt.Errorf("%w %q", ErrInvalidName, name)
	}
	return []byte(prefixFraction + name), nil
}
