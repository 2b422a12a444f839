package genesis

import "math/big"

// State is the light client genesis state: the initial finalized HotShot
// state together with the stake table commitments it was derived from. The
// field layout matches the LightClientState struct of the LightClient
// contract's initializer.
type State struct {
	ViewNum                  uint64   `json:"view_num"`
	BlockHeight              uint64   `json:"block_height"`
	BlockCommRoot            *big.Int `json:"block_comm_root"`
	FeeLedgerComm            *big.Int `json:"fee_ledger_comm"`
	StakeTableBlsKeyComm     *big.Int `json:"stake_table_bls_key_comm"`
	StakeTableSchnorrKeyComm *big.Int `json:"stake_table_schnorr_key_comm"`
	StakeTableAmountComm     *big.Int `json:"stake_table_amount_comm"`
	Threshold                *big.Int `json:"threshold"`
}
