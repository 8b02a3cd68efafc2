package networks

type Network interface {
	GetName() string
	GetChainID() uint64
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string

	GetNodeVariableName() string
	GetDefaultNodes() map[string]string

	MarshalJSON() ([]byte, error)
}
