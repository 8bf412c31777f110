package storage

import (
	"sync"
	"time"

	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/VictoriaMetrics/fastcache"
	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
)

type BadgerStore struct {
	custom  *config.Custom
	db      *badger.DB
	cache   *fastcache.Cache
	mutex   sync.Mutex
	closing chan struct{}
}

func NewBadgerStore(custom *config.Custom, dir string) (*BadgerStore, error) {
	db, err := openDB(dir, true, custom)
	if err != nil {
		return nil, err
	}
	store := &BadgerStore{
		custom:  custom,
		db:      db,
		cache:   fastcache.New(custom.Node.CacheSize * 1024 * 1024),
		closing: make(chan struct{}),
	}
	if custom.Storage.ValueLogGC && !custom.Storage.InMemory {
		go store.loopValueLogGC()
	}
	return store, nil
}

func (s *BadgerStore) Close() error {
	select {
	case <-s.closing:
		return nil
	default:
		close(s.closing)
	}
	s.cache.Reset()
	return s.db.Close()
}

func (s *BadgerStore) loopValueLogGC() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.closing:
			return
		case <-ticker.C:
		}
		lsm, vlog := s.db.Size()
		logger.Verbosef("Badger LSM %d VLOG %d\n", lsm, vlog)
		if lsm > 1024*1024*8 || vlog > 1024*1024*32 {
			err := s.db.RunValueLogGC(0.5)
			logger.Verbosef("Badger RunValueLogGC %v\n", err)
		}
	}
}

func openDB(dir string, sync bool, custom *config.Custom) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir)
	if custom.Storage.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithSyncWrites(sync && !custom.Storage.InMemory)
	opts = opts.WithCompression(options.None)
	opts = opts.WithBlockCacheSize(0)
	opts = opts.WithIndexCacheSize(0)
	opts = opts.WithLoggingLevel(badger.WARNING)
	opts = opts.WithBaseLevelSize(16 << 20)
	return badger.Open(opts)
}
