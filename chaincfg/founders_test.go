// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/require"
)

// encodeScriptAddress encodes scriptHash as a P2SH address of the network.
// The first prefix byte travels as the base58check version byte.
func encodeScriptAddress(p *Params, scriptHash []byte) string {
	prefix := p.Base58Prefixes[ScriptAddress]
	input := make([]byte, 0, len(prefix)-1+len(scriptHash))
	input = append(input, prefix[1:]...)
	input = append(input, scriptHash...)
	return base58.CheckEncode(input, prefix[0])
}

// testScriptHash returns a distinct script hash per index.
func testScriptHash(i int) []byte {
	return btcutil.Hash160([]byte{byte(i), 0x51})
}

// foundersTestParams returns regtest parameters paying a founders reward
// through n addresses up to maxHeight.
func foundersTestParams(t *testing.T, maxHeight int32, n int) *Params {
	t.Helper()

	p := RegNetParams()
	p.SubsidySlowStartInterval = 0
	p.PreBlossomHalvingInterval = maxHeight + 1
	p.PostBlossomHalvingInterval = 2 * (maxHeight + 1)
	p.FoundersRewardDisabled = false
	p.FoundersRewardAddresses = make([]string, 0, n)
	for i := 0; i < n; i++ {
		p.FoundersRewardAddresses = append(p.FoundersRewardAddresses,
			encodeScriptAddress(p, testScriptHash(i)))
	}
	require.NoError(t, p.Validate())
	require.Equal(t, maxHeight, p.FoundersRewardMaxHeight())
	return p
}

func TestFoundersRewardRotation(t *testing.T) {
	t.Parallel()

	// Four addresses over 100 blocks rotate every 26 blocks.
	p := foundersTestParams(t, 100, 4)
	tests := []struct {
		height int32
		index  int
	}{
		{1, 0},
		{25, 0},
		{26, 1},
		{51, 1},
		{52, 2},
		{77, 2},
		{78, 3},
		{100, 3},
	}
	for _, test := range tests {
		addr, err := p.FoundersRewardAddressAtHeight(test.height)
		require.NoError(t, err, "height %d", test.height)
		require.Equal(t, p.FoundersRewardAddresses[test.index], addr,
			"height %d", test.height)

		want, err := p.FoundersRewardAddressAtIndex(test.index)
		require.NoError(t, err)
		require.Equal(t, want, addr)
	}
}

func TestFoundersRewardOutOfRange(t *testing.T) {
	t.Parallel()

	p := foundersTestParams(t, 100, 4)
	for _, height := range []int32{-1, 0, 101, 1 << 30} {
		addr, err := p.FoundersRewardAddressAtHeight(height)
		require.True(t, errors.Is(err, ErrHeightOutOfRange), "height %d", height)
		require.Empty(t, addr)

		script, err := p.FoundersRewardScriptAtHeight(height)
		require.True(t, errors.Is(err, ErrHeightOutOfRange), "height %d", height)
		require.Nil(t, script)
	}

	_, err := p.FoundersRewardAddressAtIndex(4)
	require.True(t, errors.Is(err, ErrHeightOutOfRange))
	_, err = p.FoundersRewardAddressAtIndex(-1)
	require.True(t, errors.Is(err, ErrHeightOutOfRange))
}

func TestFoundersRewardBlossomFromGenesis(t *testing.T) {
	t.Parallel()

	p := foundersTestParams(t, 100, 4)
	overrides := &RegtestOverrides{params: p}
	require.NoError(t, overrides.SetUpgradeActivationHeight(UpgradeBlossom, AlwaysActive))
	require.Equal(t, int32(201), p.FoundersRewardMaxHeight())

	tests := []struct {
		height  int32
		want    int
		wantErr bool
	}{
		// Height 1 adjusts to 0, which precedes the reward period.
		{height: 1, wantErr: true},
		{height: 2, want: 0},
		{height: 101, want: 0},
		{height: 102, want: 1},
		{height: 402, want: 3},
		{height: 404, wantErr: true},
	}
	for _, test := range tests {
		addr, err := p.FoundersRewardAddressAtHeight(test.height)
		if test.wantErr {
			require.True(t, errors.Is(err, ErrHeightOutOfRange), "height %d", test.height)
			require.Empty(t, addr)
			continue
		}
		require.NoError(t, err, "height %d", test.height)
		require.Equal(t, p.FoundersRewardAddresses[test.want], addr, "height %d", test.height)
	}

	script, err := p.FoundersRewardScriptAtHeight(1)
	require.True(t, errors.Is(err, ErrHeightOutOfRange))
	require.Nil(t, script)
}

func TestFoundersRewardDisabledNetworks(t *testing.T) {
	t.Parallel()

	for _, p := range []*Params{MainNetParams(), TestNetParams(), RegNetParams()} {
		require.Zero(t, p.FoundersRewardMaxHeight(), p.Name)

		_, err := p.FoundersRewardAddressAtHeight(1)
		require.True(t, errors.Is(err, ErrHeightOutOfRange), p.Name)
		_, err = p.FoundersRewardScriptAtHeight(1)
		require.True(t, errors.Is(err, ErrHeightOutOfRange), p.Name)
	}
}

func TestFoundersRewardScript(t *testing.T) {
	t.Parallel()

	p := foundersTestParams(t, 100, 4)
	script, err := p.FoundersRewardScriptAtHeight(26)
	require.NoError(t, err)

	// OP_HASH160 <20 byte hash> OP_EQUAL
	want := append([]byte{0xa9, 0x14}, testScriptHash(1)...)
	want = append(want, 0x87)
	require.Equal(t, want, script)
}

func TestFoundersRewardAcrossBlossom(t *testing.T) {
	t.Parallel()

	p := foundersTestParams(t, 100, 4)
	p.Upgrades[UpgradeBlossom].ActivationHeight = 50
	require.NoError(t, p.Validate())

	// The period ends at 50 + 202 - 50*2 - 1 = 151 once Blossom is active.
	require.Equal(t, int32(151), p.LastFoundersRewardBlockHeight(151))
	require.Equal(t, int32(100), p.LastFoundersRewardBlockHeight(49))

	tests := []struct {
		height int32
		index  int
	}{
		{49, 1},
		{50, 1},
		{54, 2},  // adjusted 52
		{105, 2}, // adjusted 77
		{106, 3}, // adjusted 78
		{151, 3}, // adjusted 100
	}
	for _, test := range tests {
		addr, err := p.FoundersRewardAddressAtHeight(test.height)
		require.NoError(t, err, "height %d", test.height)
		require.Equal(t, p.FoundersRewardAddresses[test.index], addr,
			"height %d", test.height)

		_, err = p.FoundersRewardScriptAtHeight(test.height)
		require.NoError(t, err, "height %d", test.height)
	}

	_, err := p.FoundersRewardAddressAtHeight(152)
	require.True(t, errors.Is(err, ErrHeightOutOfRange))
	_, err = p.FoundersRewardScriptAtHeight(152)
	require.True(t, errors.Is(err, ErrHeightOutOfRange))
}

func TestFoundersRewardPartition(t *testing.T) {
	t.Parallel()

	// Every address receives a non-empty contiguous range as long as the
	// period holds at least n*(n-1) blocks.
	tests := []struct {
		maxHeight int32
		n         int
	}{
		{1, 1},
		{100, 1},
		{5, 2},
		{7, 3},
		{12, 4},
		{100, 4},
		{1000, 7},
		{849999, 48},
	}
	for _, test := range tests {
		counts := make([]int, test.n)
		prev := 0
		for height := int32(1); height <= test.maxHeight; height++ {
			idx := foundersRewardIndex(height, test.maxHeight, test.n)
			require.True(t, idx == prev || idx == prev+1,
				"max %d n %d height %d index %d", test.maxHeight,
				test.n, height, idx)
			counts[idx]++
			prev = idx
		}
		for idx, count := range counts {
			require.NotZero(t, count, "max %d n %d index %d",
				test.maxHeight, test.n, idx)
		}
	}

	// Shorter periods can leave the last address unused.
	require.Equal(t, 2, foundersRewardIndex(5, 5, 4))
}

func TestFoundersRewardValidation(t *testing.T) {
	t.Parallel()

	foreign := encodeScriptAddress(MainNetParams(), testScriptHash(0))
	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{
			name: "addresses while disabled",
			mutate: func(p *Params) {
				p.FoundersRewardDisabled = true
			},
		},
		{
			name: "no addresses while enabled",
			mutate: func(p *Params) {
				p.FoundersRewardAddresses = nil
			},
		},
		{
			name: "more addresses than blocks",
			mutate: func(p *Params) {
				p.PreBlossomHalvingInterval = 2
			},
		},
		{
			name: "address of another network",
			mutate: func(p *Params) {
				p.FoundersRewardAddresses[2] = foreign
			},
		},
		{
			name: "malformed address",
			mutate: func(p *Params) {
				p.FoundersRewardAddresses[0] = "notanaddress"
			},
		},
	}
	for _, test := range tests {
		p := foundersTestParams(t, 100, 4)
		test.mutate(p)
		err := p.Validate()
		require.True(t, errors.Is(err, ErrInvalidParams), "%s: %v",
			test.name, err)
	}
}

func TestDecodeScriptAddress(t *testing.T) {
	t.Parallel()

	p := RegNetParams()
	hash := testScriptHash(7)
	decoded, err := p.decodeScriptAddress(encodeScriptAddress(p, hash))
	require.NoError(t, err)
	require.Equal(t, hash, decoded)

	// A pay-to-pubkey-hash address is not a valid destination.
	pubKeyParams := RegNetParams()
	pubKeyParams.Base58Prefixes[ScriptAddress] = pubKeyParams.Base58Prefixes[PubKeyAddress]
	_, err = p.decodeScriptAddress(encodeScriptAddress(pubKeyParams, hash))
	require.True(t, errors.Is(err, ErrInvalidDestination))

	// Truncated hashes are rejected.
	_, err = p.decodeScriptAddress(encodeScriptAddress(p, hash[:19]))
	require.True(t, errors.Is(err, ErrInvalidDestination))
}
