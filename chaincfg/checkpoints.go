// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/exp/slices"
)

// LatestCheckpoint returns the most recent checkpoint of the network, or nil
// when the network has none.
func (p *Params) LatestCheckpoint() *Checkpoint {
	if len(p.Checkpoints) == 0 {
		return nil
	}
	return &p.Checkpoints[len(p.Checkpoints)-1]
}

// CheckpointHash returns the checkpointed hash at height.  The boolean is false
// when height is not a checkpoint.
func (p *Params) CheckpointHash(height int32) (*chainhash.Hash, bool) {
	i, found := slices.BinarySearchFunc(p.Checkpoints, Checkpoint{Height: height},
		func(a, b Checkpoint) int {
			switch {
			case a.Height < b.Height:
				return -1
			case a.Height > b.Height:
				return 1
			}
			return 0
		})
	if !found {
		return nil, false
	}
	return p.Checkpoints[i].Hash, true
}

// CheckCheckpoint returns whether a block with the given hash is acceptable at
// height.  Heights that are not checkpoints accept any block.
func (p *Params) CheckCheckpoint(height int32, hash *chainhash.Hash) bool {
	want, ok := p.CheckpointHash(height)
	if !ok {
		return true
	}
	return hash != nil && want.IsEqual(hash)
}

// EstimateTxCount estimates the total number of transactions in the chain at
// the passed time, extrapolating from the checkpoint data.  It is only used to
// report sync progress.
func (p *Params) EstimateTxCount(now time.Time) float64 {
	data := &p.CheckpointData
	estimate := float64(data.TotalTxs)
	if elapsed := now.Sub(data.Time); elapsed > 0 {
		estimate += elapsed.Hours() / 24 * data.TxsPerDay
	}
	return estimate
}

// validateCheckpoints ensures the checkpoints begin at the genesis block and
// are strictly ascending.
func (p *Params) validateCheckpoints() error {
	if p.GenesisHash == nil {
		return paramsError(ErrInvalidParams, "missing genesis hash")
	}
	if len(p.Checkpoints) == 0 {
		return nil
	}

	first := p.Checkpoints[0]
	if first.Height != 0 || first.Hash == nil || !first.Hash.IsEqual(p.GenesisHash) {
		str := fmt.Sprintf("first checkpoint %d:%v is not the genesis "+
			"block %v", first.Height, first.Hash, p.GenesisHash)
		return paramsError(ErrInvalidParams, str)
	}

	// Treating equal heights as out of order rejects duplicates too.
	ascending := slices.IsSortedFunc(p.Checkpoints, func(a, b Checkpoint) bool {
		return a.Height <= b.Height
	})
	if !ascending {
		return paramsError(ErrInvalidParams, "checkpoints are not in "+
			"strictly ascending height order")
	}
	for _, checkpoint := range p.Checkpoints[1:] {
		if checkpoint.Hash == nil {
			str := fmt.Sprintf("checkpoint at height %d has no hash",
				checkpoint.Height)
			return paramsError(ErrInvalidParams, str)
		}
	}
	return nil
}
