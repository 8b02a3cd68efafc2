package safe

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Candidate is one known deployment of a role's contract.
type Candidate struct {
	Address common.Address
	Version string
	// Note tells apart deployments of the same version, eg. "eip155" or
	// "zksync". Empty for the canonical deployment.
	Note string
}

func (c Candidate) Label() string {
	if c.Note == "" {
		return "v" + c.Version
	}
	return fmt.Sprintf("v%s %s", c.Version, c.Note)
}

// CandidateList is ordered by preference, newest compatible version first.
type CandidateList []Candidate

func (l CandidateList) Addresses() []common.Address {
	res := make([]common.Address, 0, len(l))
	for _, c := range l {
		res = append(res, c.Address)
	}
	return res
}

const (
	v141 = "1.4.1"
	v130 = "1.3.0"

	noteEIP155 = "eip155"
	noteZkSync = "zksync"
)

// Safe v1.4.1 is tried first, v1.3.0 deployments are the fallback as both
// versions are compatible.
// https://github.com/safe-global/safe-deployments/tree/main/src/assets/v1.4.1
// https://github.com/safe-global/safe-deployments/tree/main/src/assets/v1.3.0
var candidateTables = map[Role]CandidateList{
	Wallet: mustCandidates(
		Candidate{hexAddr("0x41675C099F32341bf84BFc5382aF534df5C7461a"), v141, ""},
		Candidate{hexAddr("0xd9Db270c1B5E3Bd161E8c8503c55cEABeE709552"), v130, ""},
		Candidate{hexAddr("0x69f4D1788e39c87893C980c06EdF4b7f686e2938"), v130, noteEIP155},
		Candidate{hexAddr("0xB00ce5CCcdEf57e539ddcEd01DF43a13855d9910"), v130, noteZkSync},
	),
	WalletL2: mustCandidates(
		Candidate{hexAddr("0x29fcB43b46531BcA003ddC8FCB67FFE91900C762"), v141, ""},
		Candidate{hexAddr("0x3E5c63644E683549055b9Be8653de26E0B4CD36E"), v130, ""},
		Candidate{hexAddr("0xfb1bffC9d739B8D520DaF37dF666da4C687191EA"), v130, noteEIP155},
		Candidate{hexAddr("0x1727c2c531cf966f902E5927b98490fDFb3b2b70"), v130, noteZkSync},
	),
	FallbackHandler: mustCandidates(
		Candidate{hexAddr("0xfd0732Dc9E303f09fCEf3a7388Ad10A83459Ec99"), v141, ""},
		Candidate{hexAddr("0xf48f2B2d2a534e402487b3ee7C18c33Aec0Fe5e4"), v130, ""},
		Candidate{hexAddr("0x017062a1dE2FE6b99BE3d9d37841FeD19F573804"), v130, noteEIP155},
		Candidate{hexAddr("0x2f870a80647BbC554F3a0EBD093f11B4d2a7492A"), v130, noteZkSync},
	),
	ProxyFactory: mustCandidates(
		Candidate{hexAddr("0x4e1DCf7AD4e460CfD30791CCC4F9c8a4f820ec67"), v141, ""},
		Candidate{hexAddr("0xa6B71E26C5e0845f74c812102Ca7114b6a896AB2"), v130, ""},
		Candidate{hexAddr("0xC22834581EbC8527d974F8a1c97E1bEA4EF910BC"), v130, noteEIP155},
		Candidate{hexAddr("0xDAec33641865E4651fB43181C6DB6f7232Ee91c2"), v130, noteZkSync},
	),
	MultiSend: mustCandidates(
		Candidate{hexAddr("0x38869bf66a61cF6bDB996A6aE40D5853Fd43B526"), v141, ""},
		Candidate{hexAddr("0xA238CBeb142c10Ef7Ad8442C6D1f9E89e07e7761"), v130, ""},
		Candidate{hexAddr("0x998739BFdAAdde7C933B942a68053933098f9EDa"), v130, noteEIP155},
		Candidate{hexAddr("0x0dFcccB95225ffB03c6FBB2559B530C2B7C8A912"), v130, noteZkSync},
	),
	MultiSendCallOnly: mustCandidates(
		Candidate{hexAddr("0x9641d764fc13c8B624c04430C7356C1C7C8102e2"), v141, ""},
		Candidate{hexAddr("0x40A2aCCbd92BCA938b02010E17A5b8929b49130D"), v130, ""},
		Candidate{hexAddr("0xA1dabEF33b3B82c7814B6D82A79e50F4AC44102B"), v130, noteEIP155},
		Candidate{hexAddr("0xf220D3b4DFb23C4ade8C88E526C1353AbAcbC38F"), v130, noteZkSync},
	),
}

// Candidates returns a copy of the role's candidate list. It returns nil for
// an unknown role.
func Candidates(role Role) CandidateList {
	table, found := candidateTables[role]
	if !found {
		return nil
	}
	res := make(CandidateList, len(table))
	copy(res, table)
	return res
}

func hexAddr(s string) common.Address {
	if !common.IsHexAddress(s) {
		panic(fmt.Errorf("malformed address in candidate table: %q", s))
	}
	return common.HexToAddress(s)
}

// mustCandidates rejects tables listing the same address twice.
func mustCandidates(cs ...Candidate) CandidateList {
	seen := map[common.Address]bool{}
	for _, c := range cs {
		if seen[c.Address] {
			panic(fmt.Errorf("address %s is listed twice in the same candidate table", c.Address.Hex()))
		}
		seen[c.Address] = true
	}
	return CandidateList(cs)
}
