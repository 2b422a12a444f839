package pipeline

import (
	"bytes"
	"context"
	"errors"
	"math"
	"math/big"
	"reflect"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"

	"github.com/espressosystems/l1-deployer/pkg/deployer/artifacts"
	"github.com/espressosystems/l1-deployer/pkg/deployer/genesis"
	"github.com/espressosystems/l1-deployer/pkg/deployer/registry"
)

type deployment struct {
	abi      abi.ABI
	bytecode []byte
	args     []interface{}
	address  common.Address
}

// fakeBroadcaster assigns deterministic addresses and records every
// broadcast. failAt fails the n-th (1-based) deployment.
type fakeBroadcaster struct {
	deployments []deployment
	failAt      int
}

func (f *fakeBroadcaster) Deploy(ctx context.Context, contractABI abi.ABI, bytecode []byte, args ...interface{}) (common.Address, error) {
	if f.failAt == len(f.deployments)+1 {
		return common.Address{}, errors.New("transaction rejected")
	}
	addr := common.BytesToAddress([]byte{0xde, 0xad, byte(len(f.deployments) + 1)})
	f.deployments = append(f.deployments, deployment{
		abi:      contractABI,
		bytecode: bytecode,
		args:     args,
		address:  addr,
	})
	return addr, nil
}

type fakeGenesis struct {
	state *genesis.State
	err   error
	calls int
}

func (f *fakeGenesis) Fetch(ctx context.Context) (*genesis.State, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.state, nil
}

func testGenesisState() *genesis.State {
	return &genesis.State{
		ViewNum:                  0,
		BlockHeight:              0,
		BlockCommRoot:            big.NewInt(101),
		FeeLedgerComm:            big.NewInt(102),
		StakeTableBlsKeyComm:     big.NewInt(103),
		StakeTableSchnorrKeyComm: big.NewInt(104),
		StakeTableAmountComm:     big.NewInt(105),
		Threshold:                big.NewInt(667),
	}
}

func testEnv(t *testing.T, predeployed map[registry.Contract]common.Address) (*Env, *fakeBroadcaster, *fakeGenesis) {
	t.Helper()
	lgr := log.NewLogger(log.DiscardHandler())
	bcaster := new(fakeBroadcaster)
	gen := &fakeGenesis{state: testGenesisState()}
	env := &Env{
		Logger:      lgr,
		Registry:    registry.New(lgr, predeployed),
		Broadcaster: bcaster,
		Genesis:     gen,
	}
	return env, bcaster, gen
}

func runAll(ctx context.Context, env *Env) error {
	if _, err := DeployHotShot(ctx, env); err != nil {
		return err
	}
	_, err := DeployLightClientProxy(ctx, env)
	return err
}

func TestFullDeployment(t *testing.T) {
	env, bcaster, gen := testEnv(t, nil)
	require.NoError(t, runAll(context.Background(), env))

	// HotShot, PlonkVerifier, StateUpdateVK, LightClient, proxy - in that order
	require.Len(t, bcaster.deployments, 5)
	require.Equal(t, 1, gen.calls)

	for _, name := range registry.All {
		_, ok := env.Registry.Address(name)
		require.True(t, ok, "%s must be recorded", name)
	}

	verifier, _ := env.Registry.Address(registry.PlonkVerifier)
	vk, _ := env.Registry.Address(registry.StateUpdateVK)
	lightClient, _ := env.Registry.Address(registry.LightClient)

	require.Equal(t, verifier, bcaster.deployments[1].address)
	require.Equal(t, vk, bcaster.deployments[2].address)

	// the light client deployment carries linked bytecode and no constructor args
	lc := bcaster.deployments[3]
	require.Empty(t, lc.args)
	require.True(t, bytes.Contains(lc.bytecode, verifier.Bytes()))
	require.True(t, bytes.Contains(lc.bytecode, vk.Bytes()))

	// the proxy points at the light client and initializes it with the genesis state
	proxy := bcaster.deployments[4]
	require.Len(t, proxy.args, 2)
	require.Equal(t, lightClient, proxy.args[0])

	calldata, ok := proxy.args[1].([]byte)
	require.True(t, ok)
	lcArt, err := artifacts.Load(artifacts.LightClient)
	require.NoError(t, err)
	initialize := lcArt.ABI.Parsed.Methods["initialize"]
	require.Equal(t, initialize.ID, calldata[:4])

	decoded, err := initialize.Inputs.Unpack(calldata[4:])
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	require.Equal(t, uint32(math.MaxUint32), decoded[1])

	genesisArg := reflect.ValueOf(decoded[0])
	require.Equal(t, big.NewInt(101), genesisArg.FieldByName("BlockCommRoot").Interface())
	require.Equal(t, big.NewInt(667), genesisArg.FieldByName("Threshold").Interface())
}

func TestPredeployedHotShot(t *testing.T) {
	hotshot := common.HexToAddress("0x9999999999999999999999999999999999999999")
	env, bcaster, _ := testEnv(t, map[registry.Contract]common.Address{
		registry.HotShot: hotshot,
	})
	require.NoError(t, runAll(context.Background(), env))

	require.Len(t, bcaster.deployments, 4)

	got, ok := env.Registry.Address(registry.HotShot)
	require.True(t, ok)
	require.Equal(t, hotshot, got)

	var out strings.Builder
	require.NoError(t, env.Registry.WriteEnv(&out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "HOTSHOT_ADDRESS=0x9999999999999999999999999999999999999999", lines[0])
}

func TestAllPredeployedSkipsEverything(t *testing.T) {
	predeployed := map[registry.Contract]common.Address{}
	for i, name := range registry.All {
		predeployed[name] = common.BytesToAddress([]byte{0x42, byte(i)})
	}
	env, bcaster, gen := testEnv(t, predeployed)
	require.NoError(t, runAll(context.Background(), env))

	require.Empty(t, bcaster.deployments)
	require.Equal(t, 0, gen.calls, "genesis must not be fetched when the proxy is predeployed")

	for name, addr := range predeployed {
		got, ok := env.Registry.Address(name)
		require.True(t, ok)
		require.Equal(t, addr, got)
	}
}

func TestVKFailureStopsDependents(t *testing.T) {
	env, bcaster, gen := testEnv(t, nil)
	// 1: HotShot, 2: PlonkVerifier, 3: StateUpdateVK
	bcaster.failAt = 3

	err := runAll(context.Background(), env)
	require.Error(t, err)
	require.ErrorContains(t, err, "LightClientStateUpdateVK")

	require.Len(t, bcaster.deployments, 2, "no LightClient or proxy transaction may be broadcast")
	require.Equal(t, 0, gen.calls)

	for _, name := range []registry.Contract{registry.StateUpdateVK, registry.LightClient, registry.LightClientProxy} {
		_, ok := env.Registry.Address(name)
		require.False(t, ok, "%s must not be recorded", name)
	}
}

func TestGenesisFailureStopsProxy(t *testing.T) {
	env, bcaster, gen := testEnv(t, nil)
	gen.err = errors.New("stake table not ready")

	err := runAll(context.Background(), env)
	require.Error(t, err)
	require.ErrorContains(t, err, "stake table not ready")

	// the light client and its libraries are already on chain at this point
	require.Len(t, bcaster.deployments, 4)
	_, ok := env.Registry.Address(registry.LightClient)
	require.True(t, ok)
	_, ok = env.Registry.Address(registry.LightClientProxy)
	require.False(t, ok)
}

func TestRerunAfterFailureDeploysOnlyMissing(t *testing.T) {
	env, bcaster, _ := testEnv(t, nil)
	bcaster.failAt = 3
	require.Error(t, runAll(context.Background(), env))

	// carry the surviving addresses into a fresh run, as a retry would
	predeployed := map[registry.Contract]common.Address{}
	for _, name := range registry.All {
		if addr, ok := env.Registry.Address(name); ok {
			predeployed[name] = addr
		}
	}
	env2, bcaster2, _ := testEnv(t, predeployed)
	require.NoError(t, runAll(context.Background(), env2))
	require.Len(t, bcaster2.deployments, 3)
}
