package artifacts

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/require"
)

func TestLoadAllEmbedded(t *testing.T) {
	for _, name := range []string{HotShot, PlonkVerifier, LightClientStateUpdateVK, LightClient, ERC1967Proxy} {
		t.Run(name, func(t *testing.T) {
			art, err := Load(name)
			require.NoError(t, err)
			require.NotEmpty(t, art.Bytecode.Object)
			require.NotEmpty(t, art.ABI.Raw)
		})
	}
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load("NoSuchContract")
	require.Error(t, err)
	require.ErrorContains(t, err, "NoSuchContract")
}

func TestLightClientLinkReferences(t *testing.T) {
	art, err := Load(LightClient)
	require.NoError(t, err)

	require.False(t, art.Bytecode.IsLinked())

	var qualified []string
	for file, refs := range art.Bytecode.LinkReferences {
		for lib, sites := range refs {
			require.NotEmpty(t, sites)
			qualified = append(qualified, file+":"+lib)
		}
	}
	require.ElementsMatch(t, []string{PlonkVerifierLib, LightClientStateUpdateVKLib}, qualified)

	// unlinked bytecode must never decode
	_, err = art.Bytecode.Bytes()
	require.Error(t, err)
}

func TestLinkedBytecodeDecodes(t *testing.T) {
	art, err := Load(HotShot)
	require.NoError(t, err)

	require.True(t, art.Bytecode.IsLinked())
	code, err := art.Bytecode.Bytes()
	require.NoError(t, err)
	require.NotEmpty(t, code)
}

func TestLightClientABIHasInitializer(t *testing.T) {
	art, err := Load(LightClient)
	require.NoError(t, err)

	initialize, ok := art.ABI.Parsed.Methods["initialize"]
	require.True(t, ok)
	require.Len(t, initialize.Inputs, 2)
	require.Equal(t, abi.TupleTy, initialize.Inputs[0].Type.T)
	require.Len(t, initialize.Inputs[0].Type.TupleElems, 8)
	require.Equal(t, "uint32", initialize.Inputs[1].Type.String())
}

func TestProxyABIConstructor(t *testing.T) {
	art, err := Load(ERC1967Proxy)
	require.NoError(t, err)

	inputs := art.ABI.Parsed.Constructor.Inputs
	require.Len(t, inputs, 2)
	require.Equal(t, "address", inputs[0].Type.String())
	require.Equal(t, "bytes", inputs[1].Type.String())
}
