package safe

import (
	"fmt"
	"strings"
)

// Role is the logical purpose of a Safe contract whose address gets resolved
// per network.
type Role int

const (
	Wallet Role = iota
	WalletL2
	FallbackHandler
	ProxyFactory
	MultiSend
	MultiSendCallOnly
)

var ErrUnknownRole = fmt.Errorf("unknown contract role")

var roleNames = map[Role]string{
	Wallet:            "safe",
	WalletL2:          "safe-l2",
	FallbackHandler:   "fallback-handler",
	ProxyFactory:      "proxy-factory",
	MultiSend:         "multisend",
	MultiSendCallOnly: "multisend-call-only",
}

func (r Role) String() string {
	if name, found := roleNames[r]; found {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Roles returns every role in declaration order.
func Roles() []Role {
	return []Role{
		Wallet,
		WalletL2,
		FallbackHandler,
		ProxyFactory,
		MultiSend,
		MultiSendCallOnly,
	}
}

func ParseRole(name string) (Role, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for r, n := range roleNames {
		if n == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("'%s': %w", name, ErrUnknownRole)
}
