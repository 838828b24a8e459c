// File: assert.go
// Title: Protocol Conformance
// Description: Compile-time checks that the shipped types satisfy the
//              capability protocols their mixins compose.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package quantities

import (
	"github.com/msto63/numerical/foundation/core/protocols"
	"github.com/msto63/numerical/foundation/core/quantity"
)

var (
	_ quantity.Quantity            = Real{}
	_ protocols.Real[Real]         = Real{}
	_ protocols.Value[Value]       = Value{}
	_ protocols.Comparable         = Value{}
	_ protocols.Complex[Value]     = Value{}
	_ protocols.Sequence[Sequence] = Sequence{}
	_ protocols.Complex[Sequence]  = Sequence{}
	_ protocols.Real[Decimal]      = Decimal{}
)
