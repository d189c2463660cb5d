// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// maxUint256 is 2^256 - 1, the largest possible target.
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)
)

const (
	// preBlossomHalvingInterval is the number of pre-Blossom blocks between
	// subsidy halvings on the public networks.
	preBlossomHalvingInterval = 840000

	// preBlossomRegtestHalvingInterval is the pre-Blossom halving interval
	// of the regression test network.
	preBlossomRegtestHalvingInterval = 150

	// blossomPowTargetSpacingRatio is the factor by which Blossom shortens
	// the target block spacing.
	blossomPowTargetSpacingRatio = 2

	// postBlossomHalvingInterval and postBlossomRegtestHalvingInterval
	// keep the halving schedule at the same wall-clock length after
	// Blossom.
	postBlossomHalvingInterval        = preBlossomHalvingInterval * blossomPowTargetSpacingRatio
	postBlossomRegtestHalvingInterval = preBlossomRegtestHalvingInterval * blossomPowTargetSpacingRatio

	// preBlossomPowTargetSpacing is the target block spacing before
	// Blossom.
	preBlossomPowTargetSpacing = time.Second * 150
)

// Base58Type identifies the kind of a base58check encoded key or address.
type Base58Type int

// Base58 prefix kinds.
const (
	PubKeyAddress Base58Type = iota
	ScriptAddress
	SecretKey
	ExtPublicKey
	ExtSecretKey
	ZCPaymentAddress
	ZCViewingKey
	ZCSpendingKey

	NumBase58Types
)

// Bech32Type identifies the kind of a bech32 encoded shielded key or address.
type Bech32Type int

// Bech32 human-readable part kinds.
const (
	SaplingPaymentAddress Bech32Type = iota
	SaplingFullViewingKey
	SaplingIncomingViewingKey
	SaplingExtendedSpendKey

	NumBech32Types
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointData describes the most recent checkpoint of a network.  It is
// only used to estimate sync progress.
type CheckpointData struct {
	// Time is the timestamp of the last checkpoint block.
	Time time.Time

	// TotalTxs is the total number of transactions between genesis and
	// the last checkpoint.
	TotalTxs uint64

	// TxsPerDay is the estimated number of transactions per day after the
	// last checkpoint.
	TxsPerDay float64
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is a human-readable label for the seed operator.
	Name string

	// Host defines the hostname of the seed.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Params defines an arnak network by its parameters.  These parameters are
// used to differentiate networks as well as addresses and keys for one
// network from those intended for use on another network.
//
// A Params value must be treated as read-only once it has been handed out by
// a Registry.  The only sanctioned mutation path is RegtestOverrides.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net is the network the parameters belong to.
	Net NetworkID

	// Magic defines the message start bytes used to identify the network
	// on the wire.
	Magic wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// CurrencyUnits is the ticker used when displaying amounts.
	CurrencyUnits string

	// AlertPubKey is the key that signs network alerts.
	AlertPubKey []byte

	// PruneAfterHeight is the height below which block files are never
	// pruned.
	PruneAfterHeight uint32

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// GenesisMerkleRoot is the merkle root of the genesis block.
	GenesisMerkleRoot *chainhash.Hash

	// GenesisTimestamp and GenesisBits are the header time and compact
	// target of the genesis block.
	GenesisTimestamp time.Time
	GenesisBits      uint32

	// Upgrades defines the activation schedule of every network upgrade.
	Upgrades UpgradeTable

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowAveragingWindow is the number of blocks whose targets are
	// averaged by the difficulty adjustment.
	PowAveragingWindow int64

	// PowMaxAdjustDown and PowMaxAdjustUp bound, in percent, how far the
	// difficulty may move in a single adjustment.
	PowMaxAdjustDown int64
	PowMaxAdjustUp   int64

	// PreBlossomTargetTimePerBlock is the desired amount of time to
	// generate each block before Blossom activates.
	PreBlossomTargetTimePerBlock time.Duration

	// BlossomPowTargetSpacingRatio is the factor by which Blossom divides
	// the target block spacing.
	BlossomPowTargetSpacingRatio int32

	// AllowMinDifficultyBlocks defines whether blocks at the minimum
	// difficulty are accepted after MinDifficultyBlocksAfterHeight when
	// no block has been found for a while.  Only test networks set it.
	AllowMinDifficultyBlocks       bool
	MinDifficultyBlocksAfterHeight int32

	// EquihashN and EquihashK are the Equihash proof of work parameters.
	EquihashN uint32
	EquihashK uint32

	// CoinbaseMustBeProtected requires coinbase outputs to be spent to a
	// shielded address.
	CoinbaseMustBeProtected bool

	// SubsidySlowStartInterval is the number of blocks over which the
	// block subsidy ramps up from zero.
	SubsidySlowStartInterval int32

	// PreBlossomHalvingInterval and PostBlossomHalvingInterval are the
	// number of blocks between subsidy halvings before and after Blossom.
	PreBlossomHalvingInterval  int32
	PostBlossomHalvingInterval int32

	// These fields define the legacy block version majority rules.
	//
	// MajorityEnforceBlockUpgrade is the number of blocks in
	// MajorityWindow that must carry a new version before the new rules
	// are enforced for new-version blocks.
	//
	// MajorityRejectBlockOutdated is the number of blocks in
	// MajorityWindow after which old-version blocks are rejected.
	MajorityEnforceBlockUpgrade int
	MajorityRejectBlockOutdated int
	MajorityWindow              int

	// MinimumChainWork is the amount of cumulative work a candidate best
	// chain must exceed.
	MinimumChainWork *big.Int

	// Checkpoints ordered from oldest to newest.
	Checkpoints    []Checkpoint
	CheckpointData CheckpointData

	// These fields describe the hard-coded Sprout value pool balance used
	// by nodes that have not reindexed since pool monitoring was added.
	SproutValuePoolCheckpointHeight  int32
	SproutValuePoolCheckpointBalance int64
	SproutValuePoolCheckpointHash    *chainhash.Hash

	// ZIP209Enabled enables the shielded value pool turnstile check.
	ZIP209Enabled bool

	// FoundersRewardAddresses is the rotation of 2-of-3 multisig P2SH
	// addresses receiving the founders reward.
	FoundersRewardAddresses []string

	// FoundersRewardDisabled marks a network without a founders reward.
	// Its founders reward period is empty and FoundersRewardAddresses
	// must be empty too.
	FoundersRewardDisabled bool

	// Address encoding magics.
	Base58Prefixes [NumBase58Types][]byte
	Bech32HRPs     [NumBech32Types]string

	// HDCoinType is the BIP44 coin type used in the hierarchical
	// deterministic path for address generation.
	HDCoinType uint32

	// Policy flags.
	MiningRequiresPeers           bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	TestnetToBeDeprecatedFieldRPC bool
}

// MessageStart returns the four message start bytes of the network.
func (p *Params) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(p.Magic))
	return start
}

// PostBlossomTargetTimePerBlock returns the target block spacing once
// Blossom is active.
func (p *Params) PostBlossomTargetTimePerBlock() time.Duration {
	return p.PreBlossomTargetTimePerBlock / time.Duration(p.BlossomPowTargetSpacingRatio)
}

// TargetTimePerBlock returns the target block spacing at the given height.
func (p *Params) TargetTimePerBlock(height int32) time.Duration {
	if p.Upgrades.IsActive(height, UpgradeBlossom) {
		return p.PostBlossomTargetTimePerBlock()
	}
	return p.PreBlossomTargetTimePerBlock
}

// NetworkUpgradeActive returns whether the given upgrade is active at height.
func (p *Params) NetworkUpgradeActive(height int32, idx UpgradeIndex) bool {
	return p.Upgrades.IsActive(height, idx)
}

// CurrentEpoch returns the most recent upgrade active at height.
func (p *Params) CurrentEpoch(height int32) UpgradeIndex {
	return p.Upgrades.CurrentEpoch(height)
}

// CurrentBranchID returns the consensus branch id in effect at height.
func (p *Params) CurrentBranchID(height int32) uint32 {
	return p.CurrentEpoch(height).BranchID()
}

// Base58Prefix returns the version bytes for the given kind of base58 data.
func (p *Params) Base58Prefix(t Base58Type) []byte {
	return p.Base58Prefixes[t]
}

// Bech32HRP returns the human-readable part for the given kind of bech32
// data.
func (p *Params) Bech32HRP(t Bech32Type) string {
	return p.Bech32HRPs[t]
}

// EquihashSolutionSize returns the size in bytes of an Equihash solution for
// the network's parameters.
func (p *Params) EquihashSolutionSize() int {
	collisionBits := p.EquihashN/(p.EquihashK+1) + 1
	return int((uint32(1) << p.EquihashK) * collisionBits / 8)
}

// equihashParamsAcceptable reports whether n and k describe a usable
// Equihash instance.
func equihashParamsAcceptable(n, k uint32) bool {
	return k >= 1 && k < n && n%8 == 0 && n/(k+1)+1 < 32
}

// CheckActivationHash verifies the block observed at height against the
// pinned activation block of any upgrade activating there.  A mismatch means
// the local chain diverges from the canonical upgrade path and the caller must
// stop extending it.
func (p *Params) CheckActivationHash(height int32, hash *chainhash.Hash) error {
	for idx := UpgradeBaseSprout + 1; idx < DefinedUpgrades; idx++ {
		upgrade := &p.Upgrades[idx]
		if upgrade.ActivationHash == nil ||
			!p.Upgrades.IsActivationHeight(height, idx) {
			continue
		}
		if hash != nil && upgrade.ActivationHash.IsEqual(hash) {
			continue
		}

		str := fmt.Sprintf("%s: block %v at height %d does not match "+
			"the %v activation block %v -- the local chain did "+
			"not follow the %v upgrade and must not be extended",
			p.Name, hash, height, idx, upgrade.ActivationHash, idx)
		log.Errorf("%s", str)
		return paramsError(ErrActivationHashMismatch, str)
	}
	return nil
}

// Validate checks every construction invariant of the parameters.  Invalid
// parameters must never be used.
func (p *Params) Validate() error {
	if err := p.Upgrades.validate(); err != nil {
		return err
	}

	if p.PowLimit == nil || p.PowLimit.Sign() <= 0 {
		return paramsError(ErrInvalidParams, "proof of work limit must be positive")
	}
	if p.PowLimit.Cmp(maxUint256) > 0 {
		return paramsError(ErrInvalidParams, "proof of work limit exceeds 256 bits")
	}
	if p.PowAveragingWindow <= 0 {
		return paramsError(ErrInvalidParams, "proof of work averaging window must be positive")
	}
	// The averaging sums PowAveragingWindow targets and must not overflow.
	quotient := new(big.Int).Div(maxUint256, p.PowLimit)
	if quotient.Cmp(big.NewInt(p.PowAveragingWindow)) < 0 {
		str := fmt.Sprintf("proof of work limit %064x too large for an "+
			"averaging window of %d", p.PowLimit, p.PowAveragingWindow)
		return paramsError(ErrInvalidParams, str)
	}
	if p.PowMaxAdjustDown < 0 || p.PowMaxAdjustDown >= 100 ||
		p.PowMaxAdjustUp < 0 || p.PowMaxAdjustUp >= 100 {

		str := fmt.Sprintf("proof of work adjustment bounds %d%%/%d%% "+
			"out of range", p.PowMaxAdjustDown, p.PowMaxAdjustUp)
		return paramsError(ErrInvalidParams, str)
	}
	if !equihashParamsAcceptable(p.EquihashN, p.EquihashK) {
		str := fmt.Sprintf("unacceptable Equihash parameters n=%d k=%d",
			p.EquihashN, p.EquihashK)
		return paramsError(ErrInvalidParams, str)
	}

	if p.BlossomPowTargetSpacingRatio < 1 {
		str := fmt.Sprintf("Blossom target spacing ratio %d must be at "+
			"least 1", p.BlossomPowTargetSpacingRatio)
		return paramsError(ErrInvalidParams, str)
	}
	if p.PreBlossomTargetTimePerBlock <= 0 ||
		p.PreBlossomTargetTimePerBlock%time.Duration(p.BlossomPowTargetSpacingRatio) != 0 {

		str := fmt.Sprintf("target spacing %v is not divisible by the "+
			"Blossom ratio %d", p.PreBlossomTargetTimePerBlock,
			p.BlossomPowTargetSpacingRatio)
		return paramsError(ErrInvalidParams, str)
	}

	if p.SubsidySlowStartInterval < 0 || p.PreBlossomHalvingInterval <= 0 ||
		p.PostBlossomHalvingInterval <= 0 {

		return paramsError(ErrInvalidParams, "invalid subsidy schedule")
	}

	if p.MajorityEnforceBlockUpgrade <= 0 ||
		p.MajorityEnforceBlockUpgrade > p.MajorityRejectBlockOutdated ||
		p.MajorityRejectBlockOutdated > p.MajorityWindow {

		str := fmt.Sprintf("invalid majority thresholds %d/%d of %d",
			p.MajorityEnforceBlockUpgrade,
			p.MajorityRejectBlockOutdated, p.MajorityWindow)
		return paramsError(ErrInvalidParams, str)
	}

	if p.MinimumChainWork == nil || p.MinimumChainWork.Sign() < 0 {
		return paramsError(ErrInvalidParams, "minimum chain work must not be negative")
	}

	if err := p.validateCheckpoints(); err != nil {
		return err
	}
	return p.validateFoundersReward()
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes.  Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

// newBigIntFromHex parses a hard-coded big-endian hex string.  Like
// newHashFromStr it panics on malformed input.
func newBigIntFromHex(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("invalid hex in source file: " + hexStr)
	}
	return n
}

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded constants so errors in
// the source code can be detected.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}
