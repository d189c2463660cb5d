// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

func TestCheckpointLookup(t *testing.T) {
	t.Parallel()

	params := TestNetParams()
	checkpoint := newHashFromStr("001e9a2d2e2892b88e9998cf7b079b41d59dd085423a921fe8386cecc42287b8")

	latest := params.LatestCheckpoint()
	require.NotNil(t, latest)
	require.Equal(t, int32(38000), latest.Height)

	hash, ok := params.CheckpointHash(38000)
	require.True(t, ok)
	require.Equal(t, checkpoint, hash)

	hash, ok = params.CheckpointHash(0)
	require.True(t, ok)
	require.Equal(t, params.GenesisHash, hash)

	_, ok = params.CheckpointHash(37999)
	require.False(t, ok)

	require.True(t, params.CheckCheckpoint(38000, checkpoint))
	require.False(t, params.CheckCheckpoint(38000, params.GenesisHash))
	require.False(t, params.CheckCheckpoint(38000, nil))
	require.True(t, params.CheckCheckpoint(38001, &chainhash.Hash{}))
}

func TestNoCheckpoints(t *testing.T) {
	t.Parallel()

	params := RegNetParams()
	params.Checkpoints = nil
	require.NoError(t, params.Validate())
	require.Nil(t, params.LatestCheckpoint())
	require.True(t, params.CheckCheckpoint(0, &chainhash.Hash{}))
}

func TestEstimateTxCount(t *testing.T) {
	t.Parallel()

	params := TestNetParams()
	data := params.CheckpointData
	require.InDelta(t, 48593, params.EstimateTxCount(data.Time.Add(48*time.Hour)), 1e-6)
	require.InDelta(t, 47163, params.EstimateTxCount(data.Time), 1e-6)
	require.InDelta(t, 47163, params.EstimateTxCount(data.Time.Add(-time.Hour)), 1e-6)
}
