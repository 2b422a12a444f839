package registry

// Contract identifies one of the contracts participating in a deployment.
type Contract int

const (
	HotShot Contract = iota
	PlonkVerifier
	StateUpdateVK
	LightClient
	LightClientProxy
)

// All lists every contract in output order.
var All = []Contract{
	HotShot,
	PlonkVerifier,
	StateUpdateVK,
	LightClient,
	LightClientProxy,
}

func (c Contract) String() string {
	switch c {
	case HotShot:
		return "HotShot"
	case PlonkVerifier:
		return "PlonkVerifier"
	case StateUpdateVK:
		return "LightClientStateUpdateVK"
	case LightClient:
		return "LightClient"
	case LightClientProxy:
		return "LightClientProxy"
	default:
		return "unknown"
	}
}

// EnvVar returns the environment variable name under which the contract's
// address is read in and written out.
func (c Contract) EnvVar() string {
	switch c {
	case HotShot:
		return "HOTSHOT_ADDRESS"
	case PlonkVerifier:
		return "PLONK_VERIFIER_ADDRESS"
	case StateUpdateVK:
		return "LIGHT_CLIENT_STATE_UPDATE_VK_ADDRESS"
	case LightClient:
		return "LIGHT_CLIENT_ADDRESS"
	case LightClientProxy:
		return "LIGHT_CLIENT_PROXY_ADDRESS"
	default:
		return ""
	}
}
