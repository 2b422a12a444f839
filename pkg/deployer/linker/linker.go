// Package linker substitutes library placeholders in unlinked contract
// bytecode with deployed library addresses, using the artifact's solc link
// references.
package linker

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hashicorp/go-multierror"

	"github.com/espressosystems/l1-deployer/pkg/deployer/artifacts"
)

const addressLength = 20

// Link resolves every link reference in bc against libs, keyed by fully
// qualified library name ("src/Lib.sol:Lib"), and returns the deployable
// bytecode. All references of all libraries must resolve; a library without
// a supplied address fails the link, naming the library. Link is a pure
// function of its inputs.
func Link(bc artifacts.Bytecode, libs map[string]common.Address) ([]byte, error) {
	object := []byte(strings.TrimPrefix(bc.Object, "0x"))

	var merr *multierror.Error
	for file, refs := range bc.LinkReferences {
		for lib, sites := range refs {
			qualified := file + ":" + lib
			addr, ok := libs[qualified]
			if !ok {
				merr = multierror.Append(merr, fmt.Errorf("no address for library %s", qualified))
				continue
			}
			addrHex := hexutil.Encode(addr.Bytes())[2:]
			for _, site := range sites {
				if site.Length != addressLength {
					merr = multierror.Append(merr, fmt.Errorf("library %s: link site of %d bytes, want %d", qualified, site.Length, addressLength))
					continue
				}
				start := 2 * site.Start
				end := start + 2*site.Length
				if end > uint(len(object)) {
					merr = multierror.Append(merr, fmt.Errorf("library %s: link site at byte %d out of range", qualified, site.Start))
					continue
				}
				copy(object[start:end], addrHex)
			}
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	linked := artifacts.Bytecode{Object: "0x" + string(object)}
	if !linked.IsLinked() {
		return nil, fmt.Errorf("bytecode still contains an unlinked placeholder after substitution")
	}
	return linked.Bytes()
}
