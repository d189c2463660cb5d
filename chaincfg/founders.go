// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/txscript"
)

// scriptHashSize is the size of the script hash carried by a P2SH address.
const scriptHashSize = 20

// foundersRewardIndex returns the position in a rotation of n addresses that
// covers adjustedHeight.  Each address covers (maxHeight+n)/n heights; the
// rounding leaves any remainder with the last address.
func foundersRewardIndex(adjustedHeight, maxHeight int32, n int) int {
	interval := (int64(maxHeight) + int64(n)) / int64(n)
	return int(int64(adjustedHeight) / interval)
}

// FoundersRewardAddressAtHeight returns the founders reward address that
// must be paid by the block at height.  Heights are adjusted for Blossom so
// the rotation keeps its wall-clock schedule.
//
// The height must lie within the founders reward period.  An
// ErrHeightOutOfRange error signals a caller that did not respect the chain
// bounds and the block being evaluated must be rejected.
func (p *Params) FoundersRewardAddressAtHeight(height int32) (string, error) {
	maxHeight := p.FoundersRewardMaxHeight()
	n := len(p.FoundersRewardAddresses)
	if n == 0 || maxHeight < 1 {
		str := fmt.Sprintf("%s has no founders reward period", p.Name)
		return "", paramsError(ErrHeightOutOfRange, str)
	}

	if height < 1 {
		str := fmt.Sprintf("height %d is before the founders reward "+
			"period", height)
		return "", paramsError(ErrHeightOutOfRange, str)
	}
	adjusted := p.FoundersRewardAdjustedHeight(height)
	if adjusted < 1 || adjusted > maxHeight {
		str := fmt.Sprintf("height %d (adjusted %d) is outside the "+
			"founders reward period [1, %d]", height, adjusted, maxHeight)
		return "", paramsError(ErrHeightOutOfRange, str)
	}

	return p.FoundersRewardAddresses[foundersRewardIndex(adjusted, maxHeight, n)], nil
}

// FoundersRewardScriptAtHeight returns the output script that must receive
// the founders reward of the block at height.  Founders reward addresses are
// expected to be multisig P2SH addresses.
func (p *Params) FoundersRewardScriptAtHeight(height int32) ([]byte, error) {
	lastHeight := p.LastFoundersRewardBlockHeight(height)
	if p.FoundersRewardDisabled {
		lastHeight = 0
	}
	if height < 1 || height > lastHeight {
		str := fmt.Sprintf("height %d is outside the founders reward "+
			"period [1, %d]", height, lastHeight)
		return nil, paramsError(ErrHeightOutOfRange, str)
	}

	addr, err := p.FoundersRewardAddressAtHeight(height)
	if err != nil {
		return nil, err
	}
	scriptHash, err := p.decodeScriptAddress(addr)
	if err != nil {
		return nil, err
	}
	return payToScriptHashScript(scriptHash)
}

// FoundersRewardAddressAtIndex returns the i-th address of the founders
// reward rotation.
func (p *Params) FoundersRewardAddressAtIndex(i int) (string, error) {
	if i < 0 || i >= len(p.FoundersRewardAddresses) {
		str := fmt.Sprintf("founders reward index %d out of range [0, %d)",
			i, len(p.FoundersRewardAddresses))
		return "", paramsError(ErrHeightOutOfRange, str)
	}
	return p.FoundersRewardAddresses[i], nil
}

// decodeScriptAddress decodes a base58check P2SH address of the network and
// returns its script hash.  Script address prefixes may span more than one
// byte, so the version byte reported by the decoder is only the first byte of
// the prefix.
func (p *Params) decodeScriptAddress(addr string) ([]byte, error) {
	payload, version, err := base58.CheckDecode(addr)
	if err != nil {
		str := fmt.Sprintf("founders reward address %q is not valid "+
			"base58check: %v", addr, err)
		return nil, paramsError(ErrInvalidDestination, str)
	}

	prefix := p.Base58Prefixes[ScriptAddress]
	decoded := append([]byte{version}, payload...)
	if len(prefix) == 0 || len(decoded) != len(prefix)+scriptHashSize ||
		!bytes.HasPrefix(decoded, prefix) {

		str := fmt.Sprintf("founders reward address %q is not a %s "+
			"script hash address", addr, p.Name)
		return nil, paramsError(ErrInvalidDestination, str)
	}
	return decoded[len(prefix):], nil
}

// payToScriptHashScript creates a new script to pay a transaction output to
// a script hash.
func payToScriptHashScript(scriptHash []byte) ([]byte, error) {
	return txscript.NewScriptBuilder().AddOp(txscript.OP_HASH160).
		AddData(scriptHash).AddOp(txscript.OP_EQUAL).Script()
}

// FoundersRewardMaxHeight returns the last height of the founders reward
// address rotation in pre-Blossom units.  It is zero for networks that pay no
// founders reward.
func (p *Params) FoundersRewardMaxHeight() int32 {
	if p.FoundersRewardDisabled {
		return 0
	}
	return p.LastFoundersRewardBlockHeight(0)
}

// validateFoundersReward checks that the rotation covers the founders reward
// period and that every address is a P2SH address of the network.
func (p *Params) validateFoundersReward() error {
	n := len(p.FoundersRewardAddresses)
	maxHeight := p.FoundersRewardMaxHeight()
	switch {
	case p.FoundersRewardDisabled && n != 0:
		str := fmt.Sprintf("%d founders reward addresses configured "+
			"with the founders reward disabled", n)
		return paramsError(ErrInvalidParams, str)

	case !p.FoundersRewardDisabled && n == 0 && maxHeight > 0:
		str := fmt.Sprintf("no founders reward addresses for a "+
			"founders reward period of %d blocks", maxHeight)
		return paramsError(ErrInvalidParams, str)

	case int64(n) > int64(maxHeight) && n > 0:
		str := fmt.Sprintf("%d founders reward addresses exceed the "+
			"founders reward period of %d blocks", n, maxHeight)
		return paramsError(ErrInvalidParams, str)
	}

	for _, addr := range p.FoundersRewardAddresses {
		if _, err := p.decodeScriptAddress(addr); err != nil {
			return paramsError(ErrInvalidParams, err.Error())
		}
	}
	return nil
}
