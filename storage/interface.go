package storage

import (
	"github.com/MixinNetwork/fraction/common"
)

type Record struct {
	Name      string          `json:"name" msgpack:"N"`
	Value     common.Fraction `json:"value" msgpack:"V"`
	UpdatedAt uint64          `json:"updated_at" msgpack:"T"`
}

type Store interface {
	Close() error

	WriteFraction(name string, value common.Fraction) (*Record, error)
	ReadFraction(name string) (*Record, error)
	RemoveFraction(name string) error
	ListFractions(prefix string) ([]*Record, error)
}
