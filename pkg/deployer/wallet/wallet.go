// Package wallet derives deployment keys from a BIP-39 mnemonic, using the
// standard Ethereum derivation path.
package wallet

import (
	"crypto/ecdsa"
	"fmt"

	hdwallet "github.com/ethereum-optimism/go-ethereum-hdwallet"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// TestMnemonic is the widely used development mnemonic. Anything deployed
// from it is unprotected; it is only a sensible default on local devnets.
const TestMnemonic = "test test test test test test test test test test test junk"

// Derive returns the private key and address of the accountIndex-th account
// of the wallet generated by mnemonic.
func Derive(mnemonic string, accountIndex uint32) (*ecdsa.PrivateKey, common.Address, error) {
	w, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("invalid mnemonic: %w", err)
	}
	path, err := hdwallet.ParseDerivationPath(fmt.Sprintf("m/44'/60'/0'/0/%d", accountIndex))
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("building derivation path for account %d: %w", accountIndex, err)
	}
	account, err := w.Derive(path, false)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("deriving account %d: %w", accountIndex, err)
	}
	key, err := w.PrivateKey(account)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("deriving key of account %d: %w", accountIndex, err)
	}
	return key, crypto.PubkeyToAddress(key.PublicKey), nil
}
