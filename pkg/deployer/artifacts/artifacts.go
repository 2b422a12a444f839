package artifacts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Contract artifact names, matching the embedded forge output.
const (
	HotShot                  = "HotShot"
	PlonkVerifier            = "PlonkVerifier"
	LightClientStateUpdateVK = "LightClientStateUpdateVK"
	LightClient              = "LightClient"
	ERC1967Proxy             = "ERC1967Proxy"
)

// Fully-qualified names of the libraries LightClient links against.
const (
	PlonkVerifierLib            = "src/libraries/PlonkVerifier.sol:PlonkVerifier"
	LightClientStateUpdateVKLib = "src/libraries/LightClientStateUpdateVK.sol:LightClientStateUpdateVK"
)

// linkPlaceholderPrefix starts every library placeholder solc leaves in
// unlinked bytecode (__$<hash>$__).
const linkPlaceholderPrefix = "__$"

// Artifact is the subset of a forge build artifact needed for deployment.
type Artifact struct {
	ABI              ABI      `json:"abi"`
	Bytecode         Bytecode `json:"bytecode"`
	DeployedBytecode Bytecode `json:"deployedBytecode"`
}

// ABI keeps both the parsed and the raw form of a contract ABI.
type ABI struct {
	Parsed abi.ABI
	Raw    json.RawMessage
}

func (a *ABI) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &a.Raw); err != nil {
		return err
	}
	return json.Unmarshal(data, &a.Parsed)
}

// Bytecode is a solc bytecode object. Object is a hex string that may
// contain library placeholders at the positions named by LinkReferences.
type Bytecode struct {
	Object         string         `json:"object"`
	SourceMap      string         `json:"sourceMap"`
	LinkReferences LinkReferences `json:"linkReferences"`
}

// LinkReferences maps source file -> library name -> placeholder sites.
type LinkReferences map[string]LinkReference

type LinkReference map[string][]LinkReferenceOffset

// LinkReferenceOffset locates one placeholder within the bytecode, in bytes.
type LinkReferenceOffset struct {
	Length uint `json:"length"`
	Start  uint `json:"start"`
}

// IsLinked reports whether the bytecode contains no library placeholders.
func (b Bytecode) IsLinked() bool {
	return !strings.Contains(b.Object, linkPlaceholderPrefix)
}

// Bytes decodes the bytecode object. It fails if any library placeholder is
// still present, since a placeholder is not valid hex and must never reach
// the chain.
func (b Bytecode) Bytes() ([]byte, error) {
	if !b.IsLinked() {
		return nil, fmt.Errorf("bytecode contains unlinked library placeholders")
	}
	code, err := hexutil.Decode(b.Object)
	if err != nil {
		return nil, fmt.Errorf("decoding bytecode: %w", err)
	}
	return code, nil
}
