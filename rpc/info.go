package rpc

import (
	"time"

	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/storage"
)

func getInfo(store storage.Store, start time.Time) (map[string]interface{}, error) {
	records, err := store.ListFractions("")
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"version":   config.BuildVersion,
		"uptime":    time.Since(start).String(),
		"fractions": len(records),
		"float": map[string]interface{}{
			"scale":     common.FloatScale,
			"precision": common.FloatPrecision,
			"tolerance": common.EqualityTolerance,
		},
	}, nil
}
